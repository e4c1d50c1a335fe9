package benchmark

import (
	"github.com/philipp01105/sblog/core"
	"github.com/philipp01105/sblog/handler"
)

var sinkString string

// noopHandler runs the filter and formatter but drops the output
type noopHandler struct {
	handler.Base
}

func newNoopHandler() handler.Handler {
	h := &noopHandler{}
	handler.InitBase(&h.Base, nil, nil)
	return h
}

func (h *noopHandler) Write(record *core.Record) error {
	if !h.Accept(record) {
		return nil
	}
	sinkString = h.Render(record)
	return h.Done(nil)
}

func (h *noopHandler) Close() error {
	return nil
}
