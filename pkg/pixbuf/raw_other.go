//go:build !unix

package pixbuf

const rawCollected = true

// RawBuffer falls back to a heap block on platforms without mmap.
type RawBuffer struct {
	dims
	pixels []byte
}

func NewRawBuffer(width, height int, onFill FillHook) *RawBuffer {
	b := &RawBuffer{dims: dims{width: width, height: height}}
	b.pixels = make([]byte, b.size())
	onFill.mark()
	fill(b.pixels, width, height)
	return b
}

func (b *RawBuffer) Bytes() []byte { return b.pixels }

func (b *RawBuffer) Release() { b.pixels = nil }
