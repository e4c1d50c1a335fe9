package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock supplies record timestamps
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock
type ClockFunc func() time.Time

// Now calls f
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads time.Now on every call
type SystemClock struct{}

// Now returns the current local time
func (SystemClock) Now() time.Time { return time.Now() }

var (
	coarseClockOnce sync.Once
	coarseNow       atomic.Pointer[time.Time]
)

// CoarseClock returns a cached time refreshed every 500µs by a single
// background goroutine. The record format has one-second resolution, so
// the cached value is never visibly stale.
type CoarseClock struct{}

// Now returns the most recently cached time, starting the ticker on first use
func (CoarseClock) Now() time.Time {
	StartCoarseClock()
	return *coarseNow.Load()
}

// StartCoarseClock starts the background goroutine that caches
// time.Now(). It is safe to call multiple times; the goroutine is
// started exactly once and runs for the lifetime of the process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		coarseNow.Store(&t)
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				coarseNow.Store(&t)
			}
		}()
	})
}
