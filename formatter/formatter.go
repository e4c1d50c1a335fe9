package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/sblog/core"
)

// Formatter defines the interface for record formatters
type Formatter interface {
	// Format renders a record to a single line of text including the
	// trailing newline. It must not fail and must not depend on anything
	// other than the record.
	Format(record *core.Record) string
}

// Func adapts a function to Formatter
type Func func(record *core.Record) string

// Format calls f
func (f Func) Format(record *core.Record) string { return f(record) }

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
