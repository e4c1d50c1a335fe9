package sloghandler

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/philipp01105/sblog/core"
	"github.com/philipp01105/sblog/filter"
	"github.com/philipp01105/sblog/handler/consolehandler"
)

func TestSlogHandler_Enabled(t *testing.T) {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer: &bytes.Buffer{},
		Filter: filter.NewLevelFilter(core.Info),
	})

	sh := NewSlogHandler(h, "app")

	if sh.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Debug should not be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info should be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("Warn should be enabled when level is Info")
	}
	if !sh.Enabled(context.Background(), slog.LevelError) {
		t.Error("Error should be enabled when level is Info")
	}
}

func TestSlogHandler_EnabledWithoutLevelFilter(t *testing.T) {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: &bytes.Buffer{}})
	h.SetFilter(filter.Func(func(*core.Record) bool { return true }))

	if !NewSlogHandler(h, "app").Enabled(context.Background(), slog.LevelDebug) {
		t.Error("non-level filters should leave every level enabled")
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: &buf})

	logger := slog.New(NewSlogHandler(h, "app"))
	logger.Warn("test message", "key", "value", "count", 42)

	output := buf.String()
	if !strings.Contains(output, "WARNING - app(") {
		t.Errorf("Expected level and class in output, got: %s", output)
	}
	if !strings.Contains(output, ":TestSlogHandler_Handle - test message") {
		t.Errorf("Expected caller method and message in output, got: %s", output)
	}
	if !strings.Contains(output, ". Parameters: { key = value, count = 42 }") {
		t.Errorf("Expected parameters in output, got: %s", output)
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: &buf})

	logger := slog.New(NewSlogHandler(h, "app")).
		With("service", "api").
		WithGroup("req").
		With("id", 7)
	logger.Info("handled", slog.Group("user", "name", "alice"))

	output := buf.String()
	want := ". Parameters: { service = api, req.id = 7, req.user.name = alice }"
	if !strings.Contains(output, want) {
		t.Errorf("Expected %q in output, got: %s", want, output)
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want core.Level
	}{
		{slog.LevelDebug, core.Fine},
		{slog.LevelInfo, core.Info},
		{slog.LevelWarn, core.Warning},
		{slog.LevelError, core.Severe},
		{slog.LevelError + 4, core.Severe},
	}
	for _, tt := range tests {
		if got := SlogLevel(tt.in); got != tt.want {
			t.Errorf("SlogLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
