package consolehandler

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/philipp01105/sblog/core"
	"github.com/philipp01105/sblog/filter"
	"github.com/philipp01105/sblog/formatter"
	"github.com/philipp01105/sblog/handler"
)

// ConsoleHandler writes records to an io.Writer
type ConsoleHandler struct {
	handler.Base
	mu     sync.Mutex // serializes writes to writer
	writer io.Writer
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Filter to use (default: LevelFilter at core.All)
	Filter filter.Filter
	// Formatter to use (default: DefaultFormatter)
	Formatter formatter.Formatter
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	h := &ConsoleHandler{writer: cfg.Writer}
	handler.InitBase(&h.Base, cfg.Filter, cfg.Formatter)
	return h
}

// Write formats the record and writes it if the handler's filter accepts it
func (h *ConsoleHandler) Write(record *core.Record) error {
	if !h.Accept(record) {
		return nil
	}
	line := h.Render(record)

	h.mu.Lock()
	_, err := io.WriteString(h.writer, line)
	h.mu.Unlock()

	if err != nil {
		return h.Done(fmt.Errorf("write console: %w", err))
	}
	return h.Done(nil)
}

// Close syncs the writer when it is a file; stdout and stderr are left open
func (h *ConsoleHandler) Close() error {
	f, ok := h.writer.(*os.File)
	if !ok || f == os.Stdout || f == os.Stderr {
		return nil
	}
	return f.Sync()
}
