// Package sloghandler provides an adapter from handler.Handler to
// log/slog.Handler, allowing sblog to serve as a backend for the
// standard library's structured logging.
//
// slog levels map to Fine, Info, Warning and Severe. Attributes become
// record parameters, rendered when the record is built; groups are
// flattened into dotted names.
package sloghandler
