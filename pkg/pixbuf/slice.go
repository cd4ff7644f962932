package pixbuf

// SliceBuffer stores its pixels in a slice whose capacity equals its length.
type SliceBuffer struct {
	dims
	pixels []byte
}

// NewSliceBuffer allocates and fills a slice-backed buffer.
func NewSliceBuffer(width, height int, onFill FillHook) *SliceBuffer {
	b := &SliceBuffer{dims: dims{width: width, height: height}}
	b.pixels = make([]byte, b.size())
	onFill.mark()
	fill(b.pixels, width, height)
	return b
}

func (b *SliceBuffer) Bytes() []byte { return b.pixels }

// Release drops the slice. The garbage collector frees it.
func (b *SliceBuffer) Release() { b.pixels = nil }
