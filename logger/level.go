package logger

import (
	"github.com/philipp01105/sblog/core"
)

// Level Re-export type and levels for convenience
type Level = core.Level

var (
	All     = core.All
	Fine    = core.Fine
	Config  = core.Config
	Info    = core.Info
	Warning = core.Warning
	Severe  = core.Severe
	Off     = core.Off
)

// NewLevel defines a custom level
func NewLevel(name string, value int) Level {
	return core.NewLevel(name, value)
}

// ParseLevel converts a level name to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
