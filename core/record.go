package core

import (
	"time"
)

// Record describes a single logging event. The Logger builds one per call
// and hands it to its Handler; it is not retained after Write returns.
type Record struct {
	// ClassName is the name of the logger that issued the request
	ClassName string
	// MethodName is the function in which the request was issued
	MethodName string
	// LineNumber is the source line of the request
	LineNumber string
	// Message is the raw message
	Message string
	// Params are the optional message parameters; nil means none
	Params []Param
	// Time is the event time
	Time time.Time
	// Level is the message level
	Level Level

	exception    string
	hasException bool
}

// SetException attaches exception text to the record
func (r *Record) SetException(text string) {
	r.exception = text
	r.hasException = true
}

// ClearException removes any attached exception text
func (r *Record) ClearException() {
	r.exception = ""
	r.hasException = false
}

// Exception returns the exception text and whether one is attached
func (r *Record) Exception() (string, bool) {
	return r.exception, r.hasException
}

// HasParams reports whether the record carries at least one parameter
func (r *Record) HasParams() bool {
	return len(r.Params) > 0
}
