package handler

import (
	"sync"

	"github.com/philipp01105/sblog/core"
	"github.com/philipp01105/sblog/filter"
	"github.com/philipp01105/sblog/formatter"
)

// Base holds the filter and formatter pair shared by all built-in
// handlers, along with their counters. Both may be replaced at any time.
type Base struct {
	mu        sync.RWMutex
	filter    filter.Filter
	formatter formatter.Formatter
	stats     Stats
}

// InitBase initializes a Base in place. A nil filter defaults to a
// LevelFilter at core.All, a nil formatter to the DefaultFormatter.
func InitBase(b *Base, f filter.Filter, fm formatter.Formatter) {
	b.SetFilter(f)
	b.SetFormatter(fm)
}

// Filter returns the current filter
func (b *Base) Filter() filter.Filter {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.filter
}

// SetFilter replaces the filter; nil restores the accept-all default
func (b *Base) SetFilter(f filter.Filter) {
	if f == nil {
		f = filter.NewDefaultLevelFilter()
	}
	b.mu.Lock()
	b.filter = f
	b.mu.Unlock()
}

// Formatter returns the current formatter
func (b *Base) Formatter() formatter.Formatter {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.formatter
}

// SetFormatter replaces the formatter; nil restores the DefaultFormatter
func (b *Base) SetFormatter(fm formatter.Formatter) {
	if fm == nil {
		fm = formatter.NewDefaultFormatter()
	}
	b.mu.Lock()
	b.formatter = fm
	b.mu.Unlock()
}

// Accept reports whether the handler's filter accepts the record and
// counts rejections
func (b *Base) Accept(record *core.Record) bool {
	f := b.Filter()
	if f == nil {
		f = filter.NewDefaultLevelFilter()
	}
	if !f.IsLoggable(record) {
		b.stats.IncrementFiltered()
		return false
	}
	return true
}

// Render formats the record with the current formatter
func (b *Base) Render(record *core.Record) string {
	fm := b.Formatter()
	if fm == nil {
		fm = formatter.NewDefaultFormatter()
	}
	return fm.Format(record)
}

// Done records the outcome of a write
func (b *Base) Done(err error) error {
	if err != nil {
		b.stats.IncrementFailed()
		return err
	}
	b.stats.IncrementWritten()
	return nil
}

// Stats returns a snapshot of the handler's counters
func (b *Base) Stats() Snapshot {
	return b.stats.GetSnapshot()
}

// ResetStats resets the handler's counters to zero
func (b *Base) ResetStats() {
	b.stats.Reset()
}
