package filter

import "github.com/gogpu/ppm"

// Luminance weights in percent (0.30, 0.59, 0.11).
const (
	lumR = 30
	lumG = 59
	lumB = 11

	lumScale = lumR + lumG + lumB
)

// GrayscaleFilter replaces each pixel with its luminance.
type GrayscaleFilter struct{}

// Grayscale returns an operation that converts pixels to gray.
//
// The luminance 0.30*R + 0.59*G + 0.11*B is computed in integer percent and
// truncated toward zero, then clamped to [0, MaxVal] and stored in all three
// channels. A gray pixel maps to itself, so the operation is idempotent.
func Grayscale() *GrayscaleFilter {
	return &GrayscaleFilter{}
}

// Apply implements ppm.Operation.
func (f *GrayscaleFilter) Apply(p *ppm.Pixel, _, _ int, b *ppm.Buffer) {
	g := Luminance(*p)
	if g > b.MaxVal() {
		g = b.MaxVal()
	}
	if g < 0 {
		g = 0
	}
	p.R, p.G, p.B = g, g, g
}

// String returns the filter name.
func (f *GrayscaleFilter) String() string {
	return "grayscale"
}

// Luminance returns the luminance of p, truncated toward zero. It is not
// clamped to any maximum, but channels beyond ±ppm.MaxChannelMagnitude
// saturate first.
func Luminance(p ppm.Pixel) int {
	return (lumR*saturate(p.R) + lumG*saturate(p.G) + lumB*saturate(p.B)) / lumScale
}

// saturate limits v to ±ppm.MaxChannelMagnitude.
func saturate(v int) int {
	return min(max(v, -ppm.MaxChannelMagnitude), ppm.MaxChannelMagnitude)
}
