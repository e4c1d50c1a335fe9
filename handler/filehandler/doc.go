// Package filehandler provides the file output handler.
//
// FileHandler performs one open, append, close cycle per record. Before
// opening it creates the parent directory if needed, and it opens the
// file with O_CREATE|O_APPEND so a missing file is created empty and an
// existing one is never truncated. The file is closed on every path,
// including errors; a close failure is reported alongside any write
// failure.
//
// There is no buffering, rotation or locking. Records written by one
// goroutine appear in call order. Concurrent writers to the same path
// rely on the operating system's append semantics and may interleave.
package filehandler
