package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/sheikh-saqib/customer-ledger/internal/config"
	"github.com/sheikh-saqib/customer-ledger/internal/console"
	interfaces "github.com/sheikh-saqib/customer-ledger/internal/interfaces"
	"github.com/sheikh-saqib/customer-ledger/internal/ledger"
	"github.com/sheikh-saqib/customer-ledger/internal/logger"
	"github.com/sheikh-saqib/customer-ledger/internal/storage/memory"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp builds the root command running the menu over in and out.
func newApp(in io.Reader, out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "ledger",
		Usage: "In-memory customer ledger with an interactive banking menu",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to a YAML or JSON config file.",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "Optional .env file with LEDGER_* variables.",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set the log level.  One of: trace, debug, info, notice, warn, error, off.",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output logs as JSON.  Set to true if stderr is not a TTY.",
			},
			&cli.StringFlag{
				Name:  "currency",
				Usage: "Symbol printed in front of amounts.",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable coloured menu output.",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return action(ctx, cmd, in, out)
		},
	}
}

func action(ctx context.Context, cmd *cli.Command, in io.Reader, out io.Writer) error {
	cfg, err := config.Load(config.Options{
		ConfigPath: cmd.String("config"),
		DotEnvPath: cmd.String("env-file"),
	})
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)

	log := newLogger(cfg)
	ctx = logger.WithStdlib(ctx, log)

	color := isTerminal(out)
	if cfg.Color != nil {
		color = *cfg.Color
	}

	var store interfaces.CustomerStore = memory.NewMemoryCustomerStore()
	ledgerService := ledger.NewLedger(store)

	log.Debug("starting menu", "currency", cfg.Currency, "color", color)
	session := console.NewSession(ledgerService, in, out, console.Options{
		Currency: cfg.Currency,
		Color:    color,
	})
	return session.Run(ctx)
}

func newLogger(cfg config.Config) logger.Logger {
	if strings.EqualFold(cfg.LogLevel, "off") {
		return logger.VoidLogger()
	}

	handler := logger.Handler(cfg.LogHandler)
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		// Always use JSON when not in a terminal
		handler = logger.JSONHandler
	}
	return logger.New(
		logger.WithLoggerLevel(logger.StdlibLevel(cfg.LogLevel)),
		logger.WithHandler(handler),
	)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// applyFlags lets explicitly set flags win over file and environment.
func applyFlags(cmd *cli.Command, cfg *config.Config) {
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.Bool("json") {
		cfg.LogHandler = "json"
	}
	if cmd.IsSet("currency") {
		cfg.Currency = cmd.String("currency")
	}
	if cmd.Bool("no-color") {
		off := false
		cfg.Color = &off
	}
}
