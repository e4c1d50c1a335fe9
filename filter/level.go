package filter

import (
	"sync"

	"github.com/philipp01105/sblog/core"
)

// LevelFilter accepts records whose level is at or above a threshold
type LevelFilter struct {
	mu    sync.RWMutex
	level core.Level
}

// NewLevelFilter creates a filter with the given threshold
func NewLevelFilter(level core.Level) *LevelFilter {
	return &LevelFilter{level: level}
}

// NewDefaultLevelFilter creates a filter that accepts every level
func NewDefaultLevelFilter() *LevelFilter {
	return NewLevelFilter(core.All)
}

// Level returns the current threshold
func (f *LevelFilter) Level() core.Level {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if !f.level.IsDefined() {
		return core.All
	}
	return f.level
}

// SetLevel replaces the threshold
func (f *LevelFilter) SetLevel(level core.Level) {
	f.mu.Lock()
	f.level = level
	f.mu.Unlock()
}

// Allows reports whether a record at level would pass the threshold
func (f *LevelFilter) Allows(level core.Level) bool {
	return level.AtLeast(f.Level())
}

// IsLoggable reports whether the record passes the threshold.
// Records without a level are rejected.
func (f *LevelFilter) IsLoggable(record *core.Record) bool {
	if record == nil || !record.Level.IsDefined() {
		return false
	}
	return f.Allows(record.Level)
}
