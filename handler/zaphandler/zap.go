package zaphandler

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/sblog/core"
	"github.com/philipp01105/sblog/filter"
	"github.com/philipp01105/sblog/formatter"
	"github.com/philipp01105/sblog/handler"
)

// Handler writes formatted records through a *zap.Logger
type Handler struct {
	handler.Base
	logger *zap.Logger
}

// Config holds configuration for the zap handler
type Config struct {
	// Logger receives the records (default: zap.NewNop())
	Logger *zap.Logger
	// Filter to use (default: LevelFilter at core.All)
	Filter filter.Filter
	// Formatter to use (default: DefaultFormatter)
	Formatter formatter.Formatter
}

// New creates a new zap handler
func New(cfg Config) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	h := &Handler{logger: cfg.Logger}
	handler.InitBase(&h.Base, cfg.Filter, cfg.Formatter)
	return h
}

// Logger returns the underlying zap logger
func (h *Handler) Logger() *zap.Logger {
	return h.logger
}

// Write renders the record with the handler's formatter and logs the
// line, without its trailing newline, at the matching zap level.
func (h *Handler) Write(record *core.Record) error {
	if !h.Accept(record) {
		return nil
	}
	msg := strings.TrimSuffix(h.Render(record), "\n")
	if ce := h.logger.Check(ZapLevel(record.Level), msg); ce != nil {
		ce.Write()
	}
	return h.Done(nil)
}

// Close flushes the zap logger
func (h *Handler) Close() error {
	if err := h.logger.Sync(); err != nil {
		return fmt.Errorf("sync zap logger: %w", err)
	}
	return nil
}

// ZapLevel maps a core.Level onto the closest zap level
func ZapLevel(level core.Level) zapcore.Level {
	switch {
	case level.AtLeast(core.Severe):
		return zapcore.ErrorLevel
	case level.AtLeast(core.Warning):
		return zapcore.WarnLevel
	case level.AtLeast(core.Config):
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// CoreLevel maps a zap level onto a core.Level
func CoreLevel(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.ErrorLevel:
		return core.Severe
	case level >= zapcore.WarnLevel:
		return core.Warning
	case level >= zapcore.InfoLevel:
		return core.Info
	default:
		return core.Fine
	}
}
