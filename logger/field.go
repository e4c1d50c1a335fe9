package logger

import (
	"time"

	"github.com/philipp01105/sblog/core"
)

// Param helper functions for convenience. Values are rendered when the
// Param is created.

// Param Re-export type for convenience
type Param = core.Param

// P creates a parameter from any value; nil renders as "null"
func P(name string, val any) Param {
	return core.NewParam(name, val)
}

// String creates a string parameter
func String(name, val string) Param {
	return core.String(name, val)
}

// Int creates an int parameter
func Int(name string, val int) Param {
	return core.Int(name, val)
}

// Int64 creates an int64 parameter
func Int64(name string, val int64) Param {
	return core.Int64(name, val)
}

// Float64 creates a float64 parameter
func Float64(name string, val float64) Param {
	return core.Float64(name, val)
}

// Bool creates a bool parameter
func Bool(name string, val bool) Param {
	return core.Bool(name, val)
}

// Time creates a time parameter
func Time(name string, val time.Time) Param {
	return core.Time(name, val)
}

// Duration creates a duration parameter
func Duration(name string, val time.Duration) Param {
	return core.Duration(name, val)
}

// Err creates an error parameter
func Err(err error) Param {
	return core.Err(err)
}

// Any creates a parameter with any value
func Any(name string, val interface{}) Param {
	return core.Any(name, val)
}
