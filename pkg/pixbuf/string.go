package pixbuf

import (
	"strings"
	"unsafe"
)

// nulBlock is copied into fresh string storage to clear it.
var nulBlock [4096]byte

// StringBuffer keeps its pixels in a string and writes them through the
// string's backing array.
type StringBuffer struct {
	dims
	data string
}

// NewStringBuffer builds a string of width*height NUL bytes and fills it.
func NewStringBuffer(width, height int, onFill FillHook) *StringBuffer {
	b := &StringBuffer{dims: dims{width: width, height: height}}
	b.data = nulString(b.size())
	onFill.mark()
	fill(b.bytes(), width, height)
	return b
}

// nulString returns a freshly allocated string of n NUL bytes. Builder.Grow
// hands back uninitialized memory, so it is cleared explicitly.
func nulString(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for sb.Len() < n {
		sb.Write(nulBlock[:min(len(nulBlock), n-sb.Len())])
	}
	return sb.String()
}

// bytes aliases the string's storage. The string is private to b and was
// allocated by nulString, never by a literal, so writing to it is sound.
func (b *StringBuffer) bytes() []byte {
	if len(b.data) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(b.data), len(b.data))
}

func (b *StringBuffer) Bytes() []byte { return b.bytes() }

// Release drops the string. The garbage collector frees it.
func (b *StringBuffer) Release() { b.data = "" }
