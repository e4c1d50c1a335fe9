// Package logger is the public API of sblog. Most users only need to
// import this package.
//
// A Logger is a named entry point bound to one Handler. GetLogger and
// GetLoggerWithPath create a Logger that appends to a file through a
// filehandler.FileHandler with a LevelFilter at All:
//
//	log := logger.GetLoggerWithPath("Checkout", "Logs/checkout.txt")
//	log.SetLevel(logger.Warning)
//	if err := log.Log(logger.Severe, "payment failed", logger.String("order", id)); err != nil {
//	    // the file could not be written
//	}
//
// Every call creates a fresh Logger; there is no registry, so two
// loggers with the same name never share state.
//
// Each log call captures the immediate caller's function name and line
// with runtime.Caller, stamps the time from the logger's Clock, and
// builds a core.Record. The record passes through the filter, then
// through the handler, which checks its own filter again before writing.
// The logger has no filter of its own: Filter and SetFilter act on the
// handler's filter, so both checks normally consult the same instance.
//
// Write failures are returned to the caller, wrapped with the logger
// name. Nothing is retried or dropped silently.
//
// For custom wiring, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithName("api").
//	    WithHandler(myHandler).
//	    WithLevel(logger.Info).
//	    Build()
package logger
