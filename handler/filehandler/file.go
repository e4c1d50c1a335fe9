package filehandler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"

	"github.com/philipp01105/sblog/core"
	"github.com/philipp01105/sblog/filter"
	"github.com/philipp01105/sblog/formatter"
	"github.com/philipp01105/sblog/handler"
)

// DefaultPath is the log file used when FileConfig.Path is empty
const DefaultPath = "StreamingAssets/Logs/Log.txt"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FileHandler appends records to a file. Every Write opens the file,
// appends one line and closes it again; no handle is kept between calls.
type FileHandler struct {
	handler.Base
	path string
}

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Path is the log file (default: DefaultPath)
	Path string
	// Filter to use (default: LevelFilter at core.All)
	Filter filter.Filter
	// Formatter to use (default: DefaultFormatter)
	Formatter formatter.Formatter
}

// applyFileDefaults fills in zero-value fields with defaults.
func applyFileDefaults(cfg *FileConfig) {
	if cfg.Path == "" {
		cfg.Path = DefaultPath
	}
	if cfg.Filter == nil {
		cfg.Filter = filter.NewDefaultLevelFilter()
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewDefaultFormatter()
	}
}

// NewFileHandler creates a new file handler. The path is not touched
// until the first Write, so an unusable path surfaces as a Write error.
func NewFileHandler(cfg FileConfig) *FileHandler {
	applyFileDefaults(&cfg)
	h := &FileHandler{path: cfg.Path}
	handler.InitBase(&h.Base, cfg.Filter, cfg.Formatter)
	return h
}

// Path returns the log file path
func (h *FileHandler) Path() string {
	return h.path
}

// Write ensures the file and its directory exist, then appends the
// formatted record if the handler's filter accepts it.
func (h *FileHandler) Write(record *core.Record) (err error) {
	if err := os.MkdirAll(filepath.Dir(h.path), dirPerm); err != nil {
		return h.Done(fmt.Errorf("create log directory for %s: %w", h.path, err))
	}

	file, err := os.OpenFile(h.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, filePerm)
	if err != nil {
		return h.Done(fmt.Errorf("open log file %s: %w", h.path, err))
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("close log file %s: %w", h.path, closeErr))
		}
	}()

	if !h.Accept(record) {
		return nil
	}

	if _, err := io.WriteString(file, h.Render(record)); err != nil {
		return h.Done(fmt.Errorf("write log file %s: %w", h.path, err))
	}
	return h.Done(nil)
}

// Close is a no-op; the file is closed after every Write
func (h *FileHandler) Close() error {
	return nil
}
