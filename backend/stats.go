package backend

import (
	"sync/atomic"
)

// Stats tracks what a worker's consumer did with the messages it dequeued
type Stats struct {
	// ProcessedTotal counts statements handed to the writer successfully
	ProcessedTotal uint64
	// FilteredTotal counts statements discarded by the consumer's level check
	FilteredTotal uint64
	// FailedTotal counts statements whose write returned an error
	FailedTotal uint64
	// FlushTotal counts flush barriers acknowledged
	FlushTotal uint64
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// IncrementFiltered atomically increments the filtered counter
func (s *Stats) IncrementFiltered() {
	atomic.AddUint64(&s.FilteredTotal, 1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// IncrementFlushed atomically increments the flush counter
func (s *Stats) IncrementFlushed() {
	atomic.AddUint64(&s.FlushTotal, 1)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Processed uint64
	Filtered  uint64
	Failed    uint64
	Flushes   uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Processed: atomic.LoadUint64(&s.ProcessedTotal),
		Filtered:  atomic.LoadUint64(&s.FilteredTotal),
		Failed:    atomic.LoadUint64(&s.FailedTotal),
		Flushes:   atomic.LoadUint64(&s.FlushTotal),
	}
}
