package memory

import (
	"sync/atomic"
	"time"
)

// Tracker accumulates allocation and timing totals across benchmark runs.
type Tracker struct {
	// Allocation tracking
	totalAllocations int64
	totalAllocBytes  int64
	peakAllocBytes   int64

	// Phase tracking, in nanoseconds
	operationCount int64
	allocDuration  int64
	fillDuration   int64
	freeDuration   int64
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// TrackAllocation records a buffer allocation of the given size.
func (mt *Tracker) TrackAllocation(bytes int64) {
	atomic.AddInt64(&mt.totalAllocations, 1)
	atomic.AddInt64(&mt.totalAllocBytes, bytes)

	// Update peak allocation if necessary
	for {
		current := atomic.LoadInt64(&mt.peakAllocBytes)
		if bytes <= current {
			break
		}
		if atomic.CompareAndSwapInt64(&mt.peakAllocBytes, current, bytes) {
			break
		}
	}
}

// TrackPhases records the three phase durations of one run.
func (mt *Tracker) TrackPhases(alloc, fill, free time.Duration) {
	atomic.AddInt64(&mt.operationCount, 1)
	atomic.AddInt64(&mt.allocDuration, alloc.Nanoseconds())
	atomic.AddInt64(&mt.fillDuration, fill.Nanoseconds())
	atomic.AddInt64(&mt.freeDuration, free.Nanoseconds())
}

// GetMetrics returns the current totals.
func (mt *Tracker) GetMetrics() Metrics {
	return Metrics{
		TotalAllocations: atomic.LoadInt64(&mt.totalAllocations),
		TotalAllocBytes:  atomic.LoadInt64(&mt.totalAllocBytes),
		PeakAllocBytes:   atomic.LoadInt64(&mt.peakAllocBytes),
		OperationCount:   atomic.LoadInt64(&mt.operationCount),
		AllocDuration:    time.Duration(atomic.LoadInt64(&mt.allocDuration)),
		FillDuration:     time.Duration(atomic.LoadInt64(&mt.fillDuration)),
		FreeDuration:     time.Duration(atomic.LoadInt64(&mt.freeDuration)),
	}
}

// Metrics contains totals collected by a Tracker.
type Metrics struct {
	TotalAllocations int64
	TotalAllocBytes  int64
	PeakAllocBytes   int64
	OperationCount   int64
	AllocDuration    time.Duration
	FillDuration     time.Duration
	FreeDuration     time.Duration
}

// TotalDuration is the sum of all phases.
func (m Metrics) TotalDuration() time.Duration {
	return m.AllocDuration + m.FillDuration + m.FreeDuration
}

// AverageAllocationSize calculates the average allocation size
func (m Metrics) AverageAllocationSize() int64 {
	if m.TotalAllocations == 0 {
		return 0
	}
	return m.TotalAllocBytes / m.TotalAllocations
}

// FillThroughput returns filled bytes per second across all runs.
func (m Metrics) FillThroughput() float64 {
	if m.FillDuration <= 0 {
		return 0
	}
	return float64(m.TotalAllocBytes) / m.FillDuration.Seconds()
}
