package pixbuf

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectedPixels(width, height int) []byte {
	want := make([]byte, width*height)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			want[j*width+i] = Intensity(i, j, width, height)
		}
	}
	return want
}

func TestBuffersSmallGrid(t *testing.T) {
	for _, kind := range KindNames() {
		t.Run(kind, func(t *testing.T) {
			b, err := New(kind, 2, 2, nil)
			require.NoError(t, err)
			defer b.Release()

			// (1,1) is the exact center of a 2x2 grid.
			assert.Equal(t, []byte{180, 127, 127, 0}, b.Bytes())
		})
	}
}

func TestBuffersMatchAcrossKinds(t *testing.T) {
	dims := []struct{ width, height int }{
		{1, 1},
		{3, 7},
		{16, 9},
		{64, 64},
		{256, 256},
	}

	for _, d := range dims {
		want := expectedPixels(d.width, d.height)
		for _, kind := range KindNames() {
			t.Run(fmt.Sprintf("%s/%dx%d", kind, d.width, d.height), func(t *testing.T) {
				b, err := New(kind, d.width, d.height, nil)
				require.NoError(t, err)
				defer b.Release()

				assert.Equal(t, d.width, b.Width())
				assert.Equal(t, d.height, b.Height())
				require.Len(t, b.Bytes(), d.width*d.height)
				assert.Equal(t, want, b.Bytes())
			})
		}
	}
}

func TestBuffersAreReproducible(t *testing.T) {
	for _, kind := range KindNames() {
		t.Run(kind, func(t *testing.T) {
			first, err := New(kind, 32, 32, nil)
			require.NoError(t, err)
			firstBytes := append([]byte(nil), first.Bytes()...)
			first.Release()

			second, err := New(kind, 32, 32, nil)
			require.NoError(t, err)
			defer second.Release()

			assert.Equal(t, firstBytes, second.Bytes())
		})
	}
}

func TestFillHookRunsBeforeFill(t *testing.T) {
	for _, kind := range KindNames() {
		t.Run(kind, func(t *testing.T) {
			before := time.Now()
			var fillStart time.Time
			calls := 0
			b, err := New(kind, 8, 8, func(ts time.Time) {
				calls++
				fillStart = ts
			})
			require.NoError(t, err)
			after := time.Now()
			defer b.Release()

			assert.Equal(t, 1, calls)
			assert.False(t, fillStart.Before(before))
			assert.False(t, fillStart.After(after))
		})
	}
}

func TestReleaseTwice(t *testing.T) {
	for _, kind := range KindNames() {
		t.Run(kind, func(t *testing.T) {
			b, err := New(kind, 4, 4, nil)
			require.NoError(t, err)

			assert.NotPanics(t, func() {
				b.Release()
				b.Release()
			})
			assert.Empty(t, b.Bytes())
		})
	}
}

func TestNewUnknownKind(t *testing.T) {
	b, err := New("vector", 2, 2, nil)
	assert.Nil(t, b)
	assert.ErrorContains(t, err, "unknown buffer kind")
}

func TestLookupKind(t *testing.T) {
	k, ok := LookupKind(SliceKind)
	require.True(t, ok)
	assert.True(t, k.Collected)

	_, ok = LookupKind("nope")
	assert.False(t, ok)

	assert.Equal(t, []string{SliceKind, StringKind, RawKind}, KindNames())
}

func TestKindConstructors(t *testing.T) {
	tests := []struct {
		kind string
		want Buffer
	}{
		{SliceKind, &SliceBuffer{}},
		{StringKind, &StringBuffer{}},
		{RawKind, &RawBuffer{}},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			k, ok := LookupKind(tt.kind)
			require.True(t, ok)
			require.NotNil(t, k.New)

			b := k.New(4, 3, nil)
			defer b.Release()
			assert.IsType(t, tt.want, b)
			assert.Len(t, b.Bytes(), 12)
		})
	}
}

func TestNulString(t *testing.T) {
	for _, n := range []int{1, 4095, 4096, 4097, 10000} {
		s := nulString(n)
		require.Len(t, s, n)
		for i := 0; i < n; i++ {
			if s[i] != 0 {
				t.Fatalf("byte %d of %d is %d", i, n, s[i])
			}
		}
	}
}
