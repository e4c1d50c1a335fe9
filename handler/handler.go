package handler

import (
	"github.com/philipp01105/sblog/core"
	"github.com/philipp01105/sblog/filter"
	"github.com/philipp01105/sblog/formatter"
)

// Handler defines the interface for log handlers
type Handler interface {
	// Filter returns the handler's current filter
	Filter() filter.Filter
	// SetFilter replaces the handler's filter
	SetFilter(f filter.Filter)
	// Formatter returns the handler's current formatter
	Formatter() formatter.Formatter
	// SetFormatter replaces the handler's formatter
	SetFormatter(f formatter.Formatter)

	// Write checks the record against the handler's own filter and, if
	// accepted, formats and persists it
	Write(record *core.Record) error

	// Close releases any resources held by the handler
	Close() error
}

// StatsProvider is implemented by handlers that count their records
type StatsProvider interface {
	Stats() Snapshot
}
