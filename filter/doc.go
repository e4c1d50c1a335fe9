// Package filter decides which records are emitted.
//
// A Filter is consulted twice for every log call: once by the Logger
// before it builds any output, and once by the Handler before it writes.
// In the default wiring both stages share the same Filter instance.
//
// LevelFilter is the built-in implementation. It accepts a record when
// the record's level is at or above its threshold. The zero threshold
// is core.All, which accepts everything; core.Off accepts nothing.
package filter
