// Package logger provides the application logger built on slog with a
// tint console handler for development and a JSON handler for production.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// Config controls logger initialization. It mirrors the logger section of
// the application configuration without importing it, so the logger can be
// initialized before configuration-dependent subsystems.
type Config struct {
	Level      string
	Format     string
	OutputPath string
	DebugMode  bool
}

var (
	defaultLogger *slog.Logger
	atomicLevel   *slog.LevelVar
)

// Init configures the process-wide logger. Call once at startup.
func Init(cfg Config) error {
	atomicLevel = new(slog.LevelVar)
	atomicLevel.Set(parseLevel(cfg.Level))

	var writer io.Writer
	switch strings.ToLower(cfg.OutputPath) {
	case "stdout", "":
		writer = os.Stdout
	case "stderr":
		writer = os.Stderr
	default:
		file, err := os.OpenFile(cfg.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return err
		}
		writer = file
	}

	// Source location only on warn/error unless running in debug mode.
	showSourceLevels := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.DebugMode {
		showSourceLevels = []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}
	}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		base := slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level:     atomicLevel,
			AddSource: false,
		})
		handler = NewConditionalSourceHandler(base, showSourceLevels...)
	} else {
		base := tint.NewHandler(writer, &tint.Options{
			Level:      atomicLevel,
			TimeFormat: time.DateTime,
			AddSource:  false,
			NoColor:    !isTerminal(writer),
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == "error" && a.Value.Kind() == slog.KindAny {
					if err, ok := a.Value.Any().(error); ok {
						return tint.Err(err)
					}
				}
				return a
			},
		})
		handler = NewConditionalSourceHandler(base, showSourceLevels...)
	}

	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
	return nil
}

// SetLevel changes the minimum log level at runtime.
func SetLevel(level slog.Level) {
	if atomicLevel != nil {
		atomicLevel.Set(level)
	}
}

// Get returns the configured logger, lazily initializing a sane default
// when Init has not been called (tests, tooling).
func Get() *slog.Logger {
	if defaultLogger == nil {
		base := tint.NewHandler(os.Stdout, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.DateTime,
			NoColor:    !isTerminal(os.Stdout),
		})
		defaultLogger = slog.New(NewConditionalSourceHandler(base, slog.LevelWarn, slog.LevelError))
		slog.SetDefault(defaultLogger)
	}
	return defaultLogger
}

// Package-level helpers for code that logs before dependency wiring has
// produced an Interface (startup, shutdown paths).

func Debug(msg string, args ...any) { Get().Debug(msg, args...) }

func Info(msg string, args ...any) { Get().Info(msg, args...) }

func Warn(msg string, args ...any) { Get().Warn(msg, args...) }

func Error(msg string, args ...any) { Get().Error(msg, args...) }

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
