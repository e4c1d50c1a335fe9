package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownLevel is returned by ParseLevel for names that match no predefined level
var ErrUnknownLevel = errors.New("unknown level")

// Level is an ordered, named severity. Levels compare by value, so a
// custom level with the same value as a predefined one filters identically.
type Level struct {
	name  string
	value int
}

// NewLevel defines a custom level
func NewLevel(name string, value int) Level {
	return Level{name: name, value: value}
}

var (
	// All enables every message
	All = NewLevel("ALL", math.MinInt)
	// Fine provides tracing information
	Fine = NewLevel("FINE", 500)
	// Config is for static configuration messages
	Config = NewLevel("CONFIG", 700)
	// Info is for informational messages
	Info = NewLevel("INFO", 800)
	// Warning indicates a potential problem
	Warning = NewLevel("WARNING", 900)
	// Severe indicates a serious failure
	Severe = NewLevel("SEVERE", 1000)
	// Off turns logging off
	Off = NewLevel("OFF", math.MaxInt)
)

// predefined lists the built-in levels in ascending order
var predefined = [...]Level{All, Fine, Config, Info, Warning, Severe, Off}

// Levels returns the predefined levels in ascending order
func Levels() []Level {
	out := make([]Level, len(predefined))
	copy(out, predefined[:])
	return out
}

// Name returns the level name, for example "INFO"
func (l Level) Name() string { return l.name }

// Value returns the numeric severity
func (l Level) Value() int { return l.value }

// String returns the level name
func (l Level) String() string { return l.name }

// IsDefined reports whether l was constructed, as opposed to the zero Level
func (l Level) IsDefined() bool { return l.name != "" }

// AtLeast reports whether l is at or above the threshold
func (l Level) AtLeast(threshold Level) bool {
	return threshold.value <= l.value
}

// ParseLevel converts a level name to one of the predefined levels
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, l := range predefined {
		if l.name == name {
			return l, nil
		}
	}
	// Accept the short forms other frameworks use
	switch name {
	case "WARN":
		return Warning, nil
	case "ERROR":
		return Severe, nil
	case "DEBUG":
		return Fine, nil
	}
	return Level{}, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}
