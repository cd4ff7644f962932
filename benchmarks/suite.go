package benchmarks

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/containifyci/pixbench/pkg/memory"
	"github.com/containifyci/pixbench/pkg/pixbuf"
)

// Suite runs every configured kind over every configured size.
type Suite struct {
	tracker *memory.Tracker
	kinds   []pixbuf.Kind
	sizes   []int
}

// NewSuite resolves kind names and returns a suite. Unknown names are an
// error.
func NewSuite(kinds []string, sizes []int) (*Suite, error) {
	s := &Suite{
		sizes:   append([]int(nil), sizes...),
		tracker: memory.NewTracker(),
	}
	for _, name := range kinds {
		k, ok := pixbuf.LookupKind(name)
		if !ok {
			return nil, fmt.Errorf("unknown buffer kind %q", name)
		}
		s.kinds = append(s.kinds, k)
	}
	return s, nil
}

// Metrics returns the totals accumulated by Run.
func (s *Suite) Metrics() memory.Metrics {
	return s.tracker.GetMetrics()
}

// Run prints one section per kind to w. Each row is written as soon as its
// run completes.
func (s *Suite) Run(w io.Writer) error {
	report := NewReport(w)
	for _, k := range s.kinds {
		if err := report.Section(k.Title); err != nil {
			return err
		}
		for _, size := range s.sizes {
			before := memory.ReadStats()
			sample := Measure[pixbuf.Buffer](k.New, k.Collected, size)
			heap := memory.ReadStats().Since(before)

			alloc, fill, free := sample.Phases()
			s.tracker.TrackAllocation(int64(sample.Bytes))
			s.tracker.TrackPhases(alloc, fill, free)

			row := sample.Row()
			slog.Debug("Benchmark run",
				"kind", k.Name,
				"size", size,
				"alloc", alloc,
				"fill", fill,
				"dtor", free,
				"heap", heap)

			if err := report.Row(row); err != nil {
				return err
			}
		}
	}

	m := s.tracker.GetMetrics()
	slog.Debug("Benchmark suite finished",
		"runs", m.OperationCount,
		"allocations", m.TotalAllocations,
		"bytes", m.TotalAllocBytes,
		"avg_bytes", m.AverageAllocationSize(),
		"peak_bytes", m.PeakAllocBytes,
		"fill_bytes_per_sec", m.FillThroughput(),
		"total", m.TotalDuration())
	return nil
}
