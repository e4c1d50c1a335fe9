package handler

import (
	"sync/atomic"
)

// Stats tracks handler statistics
type Stats struct {
	// Written counts records that reached the sink
	Written atomic.Uint64
	// Filtered counts records the handler's own filter rejected
	Filtered atomic.Uint64
	// Failed counts records whose write returned an error
	Failed atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementWritten atomically increments the written counter
func (s *Stats) IncrementWritten() {
	s.Written.Add(1)
}

// IncrementFiltered atomically increments the filtered counter
func (s *Stats) IncrementFiltered() {
	s.Filtered.Add(1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	s.Failed.Add(1)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	s.Written.Store(0)
	s.Filtered.Store(0)
	s.Failed.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Written  uint64
	Filtered uint64
	Failed   uint64
}

// Total returns the number of records the handler has seen
func (s Snapshot) Total() uint64 {
	return s.Written + s.Filtered + s.Failed
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Written:  s.Written.Load(),
		Filtered: s.Filtered.Load(),
		Failed:   s.Failed.Load(),
	}
}
