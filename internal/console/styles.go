package console

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.Color("#4636F5")
	green   = lipgloss.Color("#0C9C59")
	red     = lipgloss.Color("#E5484D")
)

type render func(string) string

func plain(s string) string { return s }

// styles renders console text. With colour off every field is the identity
// so output stays byte-exact for pipes and tests.
type styles struct {
	header  render
	success render
	failure render
}

func newStyles(color bool) styles {
	if !color {
		return styles{header: plain, success: plain, failure: plain}
	}
	return styles{
		header:  lipgloss.NewStyle().Bold(true).Foreground(primary).Render,
		success: lipgloss.NewStyle().Foreground(green).Render,
		failure: lipgloss.NewStyle().Foreground(red).Render,
	}
}
