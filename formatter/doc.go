// Package formatter defines how records are rendered to text.
//
// DefaultFormatter produces one line per record:
//
//	[dd-MM-yyyy HH:mm:ss] LEVEL - ClassName(LineNumber):MethodName - Message
//
// followed by an optional ". Parameters: { k = v, ... }" clause when the
// record has parameters and an optional ". Failed with ERROR: <text>"
// clause when it carries exception text, then a newline.
//
// Formatting is a pure function of the record: the timestamp comes from
// the record, never from the wall clock at format time. The formatter
// uses a pooled bytes.Buffer internally; buffers larger than 64 KiB are
// not returned to the pool.
package formatter
