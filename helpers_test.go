package ppm

import (
	"errors"
	"strings"
	"testing"
)

// Test helper functions shared across ppm tests.

// newTestBuffer creates a buffer and fills it with pixels in row-major order.
func newTestBuffer(t testing.TB, w, h, maxVal int, pixels ...Pixel) *Buffer {
	t.Helper()
	b, err := NewBuffer(w, h, maxVal)
	if err != nil {
		t.Fatalf("NewBuffer(%d, %d, %d) = %v", w, h, maxVal, err)
	}
	copy(b.Pixels(), pixels)
	return b
}

// mustDecode decodes src or fails the test.
func mustDecode(t testing.TB, src string) *Buffer {
	t.Helper()
	b, err := Decode(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Decode() = %v", err)
	}
	return b
}

// sampleBitmap is a 3x2 bitmap of the six primary and secondary colors.
const sampleBitmap = `P3
3 2
255
255 0 0
0 255 0
0 0 255
255 255 0
255 0 255
0 255 255
`

// samplePixels are the pixels of sampleBitmap.
var samplePixels = []Pixel{
	{255, 0, 0}, {0, 255, 0}, {0, 0, 255},
	{255, 255, 0}, {255, 0, 255}, {0, 255, 255},
}

// gradientBuffer returns a deterministic buffer exercising the full channel range.
func gradientBuffer(t testing.TB, w, h int) *Buffer {
	t.Helper()
	b := newTestBuffer(t, w, h, DefaultMaxVal)
	for i := range b.Pixels() {
		col, row := b.Coords(i)
		b.Pixels()[i] = Pixel{
			R: (col * 17) % 256,
			G: (row * 29) % 256,
			B: (col*7 + row*13) % 256,
		}
	}
	return b
}

// errWriter fails every write after limit bytes.
type errWriter struct {
	limit int
	n     int
}

var errDiskFull = errors.New("disk full")

func (w *errWriter) Write(p []byte) (int, error) {
	if w.n+len(p) > w.limit {
		return 0, errDiskFull
	}
	w.n += len(p)
	return len(p), nil
}
