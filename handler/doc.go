// Package handler provides the Handler interface shared by all sinks.
//
// A Handler owns exactly one Filter and one Formatter, both replaceable
// after construction. Write re-checks the record against the handler's
// own filter, even though the Logger has already checked it, so that a
// handler whose filter has been swapped independently still behaves
// correctly.
//
// Built-in handlers live in sub-packages:
//
//   - filehandler appends each record to a file, opening and closing the
//     file on every call.
//   - consolehandler writes to any io.Writer (default: stdout).
//   - multihandler fans one record out to several child handlers.
//   - sloghandler adapts a Handler to log/slog.Handler.
//   - zaphandler writes through a *zap.Logger and adapts a Handler to
//     zapcore.Core.
//
// Every built-in handler embeds Base and counts written, filtered and
// failed records in Stats, which the metrics package exports.
//
// All handlers are synchronous. Nothing is queued or buffered; a Write
// returns only once the record has been handed to the sink.
package handler
