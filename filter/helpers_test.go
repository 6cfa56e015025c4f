package filter

import (
	"testing"

	"github.com/gogpu/ppm"
)

// Test helper functions shared across filter tests.

// createTestBuffer creates a buffer filled with the given pixel.
func createTestBuffer(t testing.TB, w, h, maxVal int, fill ppm.Pixel) *ppm.Buffer {
	t.Helper()
	b, err := ppm.NewBuffer(w, h, maxVal)
	if err != nil {
		t.Fatalf("NewBuffer(%d, %d, %d) = %v", w, h, maxVal, err)
	}
	b.Fill(fill)
	return b
}

// noiseBuffer returns a buffer with deterministic pseudo-random channels in
// [0, maxVal].
func noiseBuffer(t testing.TB, w, h, maxVal int) *ppm.Buffer {
	t.Helper()
	b := createTestBuffer(t, w, h, maxVal, ppm.Pixel{})
	state := uint32(2463534242)
	next := func() int {
		// xorshift32
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		return int(state % uint32(maxVal+1))
	}
	for i := range b.Pixels() {
		b.Pixels()[i] = ppm.RGB(next(), next(), next())
	}
	return b
}

// forwardOnly wraps op and fails the test if a visit changes any pixel the
// traversal has already passed.
func forwardOnly(t *testing.T, op ppm.Operation) ppm.Operation {
	t.Helper()
	return ppm.OperationFunc(func(p *ppm.Pixel, col, row int, b *ppm.Buffer) {
		cur := b.Index(col, row)
		before := make([]ppm.Pixel, cur)
		copy(before, b.Pixels()[:cur])

		op.Apply(p, col, row, b)

		for i, want := range before {
			if got := b.Pixels()[i]; got != want {
				c, r := b.Coords(i)
				t.Fatalf("visit of (%d, %d) changed finalized pixel %d (%d, %d): %v -> %v",
					col, row, i, c, r, want, got)
			}
		}
	})
}
