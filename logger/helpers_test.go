package logger

import (
	"runtime"
)

// callerLine returns the line it was called from
func callerLine() int {
	_, _, line, _ := runtime.Caller(1)
	return line
}
