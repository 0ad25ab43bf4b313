package logger

import "log/slog"

// Interface is the logging abstraction injected into services and
// repositories, allowing tests to substitute a silent logger.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Interface
	Named(name string) Interface

	Debugw(msg string, keysAndValues ...any)
	Infow(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
	Errorw(msg string, keysAndValues ...any)
}

type slogLogger struct {
	logger *slog.Logger
}

// NewLogger returns an Interface backed by the process-wide slog logger.
func NewLogger() Interface {
	return &slogLogger{logger: Get()}
}

// NewLoggerWithSlog wraps an existing slog logger.
func NewLoggerWithSlog(l *slog.Logger) Interface {
	return &slogLogger{logger: l}
}

func (l *slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *slogLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *slogLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

func (l *slogLogger) With(args ...any) Interface {
	return &slogLogger{logger: l.logger.With(args...)}
}

func (l *slogLogger) Named(name string) Interface {
	return &slogLogger{logger: l.logger.With("logger", name)}
}

func (l *slogLogger) Debugw(msg string, keysAndValues ...any) { l.logger.Debug(msg, keysAndValues...) }
func (l *slogLogger) Infow(msg string, keysAndValues ...any)  { l.logger.Info(msg, keysAndValues...) }
func (l *slogLogger) Warnw(msg string, keysAndValues ...any)  { l.logger.Warn(msg, keysAndValues...) }
func (l *slogLogger) Errorw(msg string, keysAndValues ...any) { l.logger.Error(msg, keysAndValues...) }
