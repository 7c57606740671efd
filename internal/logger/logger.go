package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

var stdlibCtxKey = stdlibKey{}

type stdlibKey struct{}

type handler int

const (
	JSONHandler handler = iota
	TextHandler
	DevHandler
)

const (
	DefaultStdlibLevel = slog.LevelWarn

	LevelTrace   = slog.Level(-8)
	LevelDebug   = slog.LevelDebug
	LevelInfo    = slog.LevelInfo
	LevelNotice  = slog.Level(2)
	LevelWarning = slog.LevelWarn
	LevelError   = slog.LevelError
)

// Logger is slog.Logger plus the trace level.
type Logger interface {
	Debug(msg string, args ...any)
	DebugContext(ctx context.Context, msg string, args ...any)
	Info(msg string, args ...any)
	InfoContext(ctx context.Context, msg string, args ...any)
	Warn(msg string, args ...any)
	WarnContext(ctx context.Context, msg string, args ...any)
	Error(msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
	Level() slog.Level
	With(args ...any) Logger

	Trace(msg string, args ...any)
}

type LoggerOpt func(o *loggerOpts)

type loggerOpts struct {
	writer  io.Writer
	level   slog.Level
	handler handler
}

func WithLoggerLevel(lvl slog.Level) LoggerOpt {
	return func(o *loggerOpts) {
		o.level = lvl
	}
}

func WithLoggerWriter(w io.Writer) LoggerOpt {
	return func(o *loggerOpts) {
		o.writer = w
	}
}

func WithHandler(h handler) LoggerOpt {
	return func(o *loggerOpts) {
		o.handler = h
	}
}

// New builds a logger writing to stderr with the dev handler at the default
// level unless overridden by opts.
func New(opts ...LoggerOpt) Logger {
	o := &loggerOpts{
		level:   DefaultStdlibLevel,
		writer:  os.Stderr,
		handler: DevHandler,
	}
	for _, apply := range opts {
		apply(o)
	}

	hopts := slog.HandlerOptions{
		Level: o.level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.LevelKey && len(groups) == 0 {
				if lvl, ok := attr.Value.Any().(slog.Level); ok {
					switch lvl {
					case LevelTrace:
						return slog.String(attr.Key, "TRACE")
					case LevelNotice:
						return slog.String(attr.Key, "NOTICE")
					}
				}
			}
			return attr
		},
	}

	switch o.handler {
	case DevHandler:
		return &logger{
			Logger: slog.New(tint.NewHandler(o.writer, &tint.Options{
				Level:      o.level,
				TimeFormat: "[15:04:05.000]",
				ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
					if a.Key == slog.LevelKey && len(groups) == 0 {
						if lvl, ok := a.Value.Any().(slog.Level); ok {
							switch lvl {
							case LevelTrace:
								return tint.Attr(13, slog.String(a.Key, "TRC"))
							case LevelDebug:
								return tint.Attr(3, slog.String(a.Key, "DBG"))
							case LevelInfo:
								return tint.Attr(14, slog.String(a.Key, "INF"))
							case LevelNotice:
								return tint.Attr(10, slog.String(a.Key, "NTC"))
							}
						}
					}
					return a
				},
			})),
			level: o.level,
		}

	case TextHandler:
		return &logger{
			Logger: slog.New(slog.NewTextHandler(o.writer, &hopts)),
			level:  o.level,
		}

	default:
		return &logger{
			Logger: slog.New(slog.NewJSONHandler(o.writer, &hopts)),
			level:  o.level,
		}
	}
}

// StdlibLogger returns the logger stored in ctx, or a new default logger.
func StdlibLogger(ctx context.Context) Logger {
	l, ok := ctx.Value(stdlibCtxKey).(Logger)
	if !ok {
		return New()
	}
	return l
}

// VoidLogger discards everything; used for log level "off".
func VoidLogger() Logger {
	return New(WithLoggerWriter(io.Discard))
}

func WithStdlib(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, stdlibCtxKey, l)
}

// StdlibLevel parses a level name; unknown names map to DefaultStdlibLevel.
func StdlibLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "trace":
		return LevelTrace
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "notice":
		return LevelNotice
	case "warn", "warning":
		return LevelWarning
	case "error":
		return LevelError
	default:
		return DefaultStdlibLevel
	}
}

// Handler parses a handler name ("json", "text"/"txt", "dev"); unknown names use dev.
func Handler(name string) handler {
	switch strings.ToLower(name) {
	case "json":
		return JSONHandler
	case "txt", "text":
		return TextHandler
	default:
		return DevHandler
	}
}

// logger is a wrapper over slog with additional levels
type logger struct {
	*slog.Logger
	level slog.Level
}

func (l *logger) Level() slog.Level {
	return l.level
}

func (l *logger) With(args ...any) Logger {
	if len(args) == 0 {
		return l
	}
	return &logger{
		Logger: l.Logger.With(args...),
		level:  l.level,
	}
}

func (l *logger) Trace(msg string, args ...any) {
	l.Logger.Log(context.Background(), LevelTrace, msg, args...)
}

