// Package consolehandler provides a handler that writes formatted
// records to any io.Writer (default: os.Stdout).
//
// Writes are synchronous and serialized on the handler, so a shared
// bytes.Buffer or terminal never sees two lines interleaved.
package consolehandler
