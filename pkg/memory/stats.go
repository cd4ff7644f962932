package memory

import (
	"log/slog"
	"runtime"
	"time"
)

// Stats is a snapshot of the Go runtime's heap counters.
type Stats struct {
	LastGC       time.Time
	HeapAlloc    uint64
	HeapSys      uint64
	HeapReleased uint64
	Sys          uint64
	Mallocs      uint64
	Frees        uint64
	TotalAlloc   uint64
	NumGC        uint32
}

// ReadStats returns current runtime memory statistics.
func ReadStats() Stats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return Stats{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		HeapReleased: m.HeapReleased,
		Sys:          m.Sys,
		Mallocs:      m.Mallocs,
		Frees:        m.Frees,
		TotalAlloc:   m.TotalAlloc,
		NumGC:        m.NumGC,
		LastGC:       time.Unix(0, int64(m.LastGC)),
	}
}

// Delta describes how the heap changed between two snapshots.
type Delta struct {
	HeapAlloc  int64
	Sys        int64
	TotalAlloc uint64
	Mallocs    uint64
	Frees      uint64
	NumGC      uint32
}

// Since returns the change from before to s.
func (s Stats) Since(before Stats) Delta {
	return Delta{
		HeapAlloc:  int64(s.HeapAlloc) - int64(before.HeapAlloc),
		Sys:        int64(s.Sys) - int64(before.Sys),
		TotalAlloc: s.TotalAlloc - before.TotalAlloc,
		Mallocs:    s.Mallocs - before.Mallocs,
		Frees:      s.Frees - before.Frees,
		NumGC:      s.NumGC - before.NumGC,
	}
}

// LogValue implements slog.LogValuer.
func (d Delta) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("heap_alloc", d.HeapAlloc),
		slog.Int64("sys", d.Sys),
		slog.Uint64("total_alloc", d.TotalAlloc),
		slog.Uint64("mallocs", d.Mallocs),
		slog.Uint64("frees", d.Frees),
		slog.Uint64("gc", uint64(d.NumGC)),
	)
}
