package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestConditionalSourceHandler(t *testing.T) {
	tests := []struct {
		name             string
		level            slog.Level
		showSourceLevels []slog.Level
		shouldHaveSource bool
	}{
		{
			name:             "info without source config",
			level:            slog.LevelInfo,
			showSourceLevels: []slog.Level{slog.LevelWarn, slog.LevelError},
			shouldHaveSource: false,
		},
		{
			name:             "warn with source config",
			level:            slog.LevelWarn,
			showSourceLevels: []slog.Level{slog.LevelWarn, slog.LevelError},
			shouldHaveSource: true,
		},
		{
			name:             "error with source config",
			level:            slog.LevelError,
			showSourceLevels: []slog.Level{slog.LevelWarn, slog.LevelError},
			shouldHaveSource: true,
		},
		{
			name:             "info with explicit source config",
			level:            slog.LevelInfo,
			showSourceLevels: []slog.Level{slog.LevelInfo, slog.LevelWarn, slog.LevelError},
			shouldHaveSource: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{AddSource: false})
			log := slog.New(NewConditionalSourceHandler(base, tt.showSourceLevels...))

			log.Log(context.Background(), tt.level, "test message")

			hasSource := strings.Contains(buf.String(), "source=")
			if hasSource != tt.shouldHaveSource {
				t.Errorf("expected source=%v, got %v. Output: %s", tt.shouldHaveSource, hasSource, buf.String())
			}
		})
	}
}

func TestConditionalSourceHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, &slog.HandlerOptions{AddSource: false})
	log := slog.New(NewConditionalSourceHandler(base, slog.LevelError)).With("user_id", "123")

	log.Info("test message")

	out := buf.String()
	if strings.Contains(out, "source=") {
		t.Errorf("expected no source for info level, output: %s", out)
	}
	if !strings.Contains(out, "user_id=123") {
		t.Errorf("expected user_id attribute, output: %s", out)
	}
}

func TestConditionalSourceHandlerEnabled(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	h := NewConditionalSourceHandler(base, slog.LevelError)

	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("expected info level to be enabled")
	}
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("expected debug level to be disabled")
	}
}
