//go:build unix

package pixbuf

import (
	"fmt"

	"golang.org/x/sys/unix"
)

const rawCollected = false

// RawBuffer owns an anonymous private mapping of exactly width*height bytes.
// The mapping is outside the Go heap and is unmapped by Release.
type RawBuffer struct {
	dims
	pixels []byte
}

// NewRawBuffer maps and fills a raw buffer. It panics if the kernel refuses
// the mapping.
func NewRawBuffer(width, height int, onFill FillHook) *RawBuffer {
	b := &RawBuffer{dims: dims{width: width, height: height}}
	pixels, err := unix.Mmap(-1, 0, b.size(), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		panic(fmt.Errorf("mmap %d bytes: %w", b.size(), err))
	}
	b.pixels = pixels
	onFill.mark()
	fill(b.pixels, width, height)
	return b
}

func (b *RawBuffer) Bytes() []byte { return b.pixels }

// Release unmaps the block once; later calls do nothing.
func (b *RawBuffer) Release() {
	if b.pixels == nil {
		return
	}
	if err := unix.Munmap(b.pixels); err != nil {
		panic(fmt.Errorf("munmap %d bytes: %w", len(b.pixels), err))
	}
	b.pixels = nil
}
