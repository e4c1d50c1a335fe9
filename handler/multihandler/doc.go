// Package multihandler provides a fan-out handler that dispatches each
// record to multiple child handlers. The MultiHandler's formatter is
// unused; every child renders with its own.
package multihandler
