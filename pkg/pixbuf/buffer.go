// Package pixbuf holds the grayscale pixel buffers compared by pixbench.
//
// Every buffer stores width*height bytes and is filled with the same radial
// pattern by its constructor, so the strategies differ only in how their
// storage is obtained and released:
//
//   - SliceBuffer keeps its pixels in a slice allocated with make.
//   - RawBuffer maps an anonymous block outside the Go heap and unmaps it
//     on Release.
//   - StringBuffer builds a NUL-filled string with strings.Builder and
//     writes the pixels through its backing bytes.
package pixbuf

import (
	"fmt"
	"time"
)

// FillHook receives the time immediately before a constructor starts its
// fill loop. A nil hook is ignored.
type FillHook func(time.Time)

func (h FillHook) mark() {
	if h != nil {
		h(time.Now())
	}
}

// Buffer is a filled width x height grayscale image.
type Buffer interface {
	Width() int
	Height() int
	// Bytes returns a view of the pixels. It must not be used after Release.
	Bytes() []byte
	// Release gives the storage back. Calling it more than once is safe.
	Release()
}

// Constructor allocates and fills a buffer of the given dimensions.
type Constructor[B Buffer] func(width, height int, onFill FillHook) B

// Kind describes one storage strategy.
type Kind struct {
	Name  string
	Title string
	// Collected is true when the storage lives on the Go heap and is
	// reclaimed by the garbage collector rather than by Release itself.
	Collected bool
	New       Constructor[Buffer]
}

const (
	SliceKind  = "slice"
	StringKind = "string"
	RawKind    = "raw"
)

var kinds = []Kind{
	{Name: SliceKind, Title: "[]byte", Collected: true, New: func(width, height int, onFill FillHook) Buffer {
		return NewSliceBuffer(width, height, onFill)
	}},
	{Name: StringKind, Title: "string", Collected: true, New: func(width, height int, onFill FillHook) Buffer {
		return NewStringBuffer(width, height, onFill)
	}},
	{Name: RawKind, Title: "raw", Collected: rawCollected, New: func(width, height int, onFill FillHook) Buffer {
		return NewRawBuffer(width, height, onFill)
	}},
}

// KindNames returns the names of all strategies in report order.
func KindNames() []string {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.Name)
	}
	return names
}

// LookupKind finds a strategy by name.
func LookupKind(name string) (Kind, bool) {
	for _, k := range kinds {
		if k.Name == name {
			return k, true
		}
	}
	return Kind{}, false
}

// New builds a buffer of the named kind.
func New(kind string, width, height int, onFill FillHook) (Buffer, error) {
	k, ok := LookupKind(kind)
	if !ok {
		return nil, fmt.Errorf("unknown buffer kind %q", kind)
	}
	return k.New(width, height, onFill), nil
}

type dims struct {
	width  int
	height int
}

func (d dims) Width() int  { return d.width }
func (d dims) Height() int { return d.height }
func (d dims) size() int   { return d.width * d.height }
