// Package benchmarks times the allocation, fill and teardown of pixel
// buffers and reports the results as a fixed-width table.
package benchmarks

import (
	"runtime"
	"time"

	"github.com/containifyci/pixbench/pkg/pixbuf"
)

// Sample holds the five clock readings of one run. Readings carry Go's
// monotonic clock, so differences never go backwards.
type Sample struct {
	Start         time.Time
	FillStart     time.Time
	Built         time.Time
	TeardownStart time.Time
	TeardownEnd   time.Time
	Bytes         int
	Size          int
}

// Row is one line of the report.
type Row struct {
	Size        int
	Bytes       int
	AllocMillis int64
	FillMillis  int64
	DtorMillis  int64
}

// Phases returns the allocation, fill and teardown durations.
func (s Sample) Phases() (alloc, fill, free time.Duration) {
	return span(s.Start, s.FillStart), span(s.FillStart, s.Built), span(s.TeardownStart, s.TeardownEnd)
}

// Row truncates the phase durations to whole milliseconds.
func (s Sample) Row() Row {
	alloc, fill, free := s.Phases()
	return Row{
		Size:        s.Size,
		Bytes:       s.Bytes,
		AllocMillis: alloc.Milliseconds(),
		FillMillis:  fill.Milliseconds(),
		DtorMillis:  free.Milliseconds(),
	}
}

func span(from, to time.Time) time.Duration {
	if d := to.Sub(from); d > 0 {
		return d
	}
	return 0
}

// Measure builds a size x size buffer with newBuf, reads its view and
// releases it, recording a clock reading around each phase.
//
// When collected is true the storage belongs to the Go heap; a collection
// is forced before the last reading so the release completes inside the
// measured window.
func Measure[B pixbuf.Buffer](newBuf pixbuf.Constructor[B], collected bool, size int) Sample {
	s := Sample{Size: size}

	s.Start = time.Now()
	b := newBuf(size, size, func(t time.Time) { s.FillStart = t })
	s.Built = time.Now()
	if s.FillStart.IsZero() {
		s.FillStart = s.Built
	}
	s.Bytes = len(b.Bytes())

	s.TeardownStart = time.Now()
	b.Release()
	if collected {
		runtime.GC()
	}
	s.TeardownEnd = time.Now()

	return s
}

// Run measures one buffer of the given kind and returns its report row.
func Run[B pixbuf.Buffer](newBuf pixbuf.Constructor[B], collected bool, size int) Row {
	return Measure[B](newBuf, collected, size).Row()
}
