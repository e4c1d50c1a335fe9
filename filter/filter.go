package filter

import (
	"github.com/philipp01105/sblog/core"
)

// Filter defines the interface for record filters
type Filter interface {
	// IsLoggable reports whether the record should be written
	IsLoggable(record *core.Record) bool
}

// Func adapts a function to Filter
type Func func(record *core.Record) bool

// IsLoggable calls f. A nil record is never loggable.
func (f Func) IsLoggable(record *core.Record) bool {
	if record == nil {
		return false
	}
	return f(record)
}
