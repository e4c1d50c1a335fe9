package multihandler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/sblog/core"
	"github.com/philipp01105/sblog/filter"
	"github.com/philipp01105/sblog/handler"
)

// MultiHandler sends records to multiple handlers
type MultiHandler struct {
	handler.Base
	handlers []handler.Handler
}

// NewMultiHandler creates a new multi-handler. Its own filter accepts
// everything; each child still applies its own filter.
func NewMultiHandler(handlers ...handler.Handler) *MultiHandler {
	h := &MultiHandler{handlers: handlers}
	handler.InitBase(&h.Base, filter.NewDefaultLevelFilter(), nil)
	return h
}

// Handlers returns the child handlers
func (h *MultiHandler) Handlers() []handler.Handler {
	out := make([]handler.Handler, len(h.handlers))
	copy(out, h.handlers)
	return out
}

// Write forwards the record to every child. A failing child does not
// stop the others; all errors are returned together.
func (h *MultiHandler) Write(record *core.Record) error {
	if !h.Accept(record) {
		return nil
	}
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Write(record))
	}
	return h.Done(err)
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Close())
	}
	return err
}
