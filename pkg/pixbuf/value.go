package pixbuf

import "math"

// Value returns the distance of (x, y) from the center of the unit square.
// Corners map to roughly 0.707.
func Value(x, y float32) float32 {
	xx := x - 0.5
	yy := y - 0.5
	return float32(math.Sqrt(float64(xx*xx + yy*yy)))
}

// Intensity is the 8-bit pixel value written at column i, row j of a
// width x height buffer. The scaled value is truncated, then wrapped to
// 8 bits the way a byte cast would.
func Intensity(i, j, width, height int) byte {
	v := Value(float32(i)/float32(width), float32(j)/float32(height)) * 255
	return byte(uint32(v))
}

// fill writes every pixel of a width x height buffer exactly once.
// Columns are the outer loop; the layout is row-major (j*width+i).
func fill(p []byte, width, height int) {
	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			p[j*width+i] = Intensity(i, j, width, height)
		}
	}
}
