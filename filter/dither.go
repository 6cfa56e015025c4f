package filter

import "github.com/gogpu/ppm"

// Tap is one target of error diffusion: the offset of the receiving pixel
// from the current one and its share of the error in units of the kernel
// divisor.
type Tap struct {
	DCol, DRow int
	Weight     int
}

// Kernel is an error diffusion matrix.
type Kernel struct {
	Taps    []Tap
	Divisor int
}

// FloydSteinbergKernel distributes 7/16 of the error to the right, and 3/16,
// 5/16 and 1/16 to the lower-left, lower and lower-right neighbors.
var FloydSteinbergKernel = Kernel{
	Taps: []Tap{
		{DCol: 1, DRow: 0, Weight: 7},
		{DCol: -1, DRow: 1, Weight: 3},
		{DCol: 0, DRow: 1, Weight: 5},
		{DCol: 1, DRow: 1, Weight: 1},
	},
	Divisor: 16,
}

// Forward reports whether every tap that can land inside a buffer of the
// given width lands on a higher linear index than the source pixel, i.e. only
// on pixels a row-major traversal has not visited yet. Taps whose column
// offset is at least width in magnitude always fall outside the buffer and
// are ignored.
func (k Kernel) Forward(width int) bool {
	for _, t := range k.Taps {
		if t.DCol <= -width || t.DCol >= width {
			continue
		}
		if t.DRow*width+t.DCol <= 0 {
			return false
		}
	}
	return true
}

// ErrorDiffusionFilter quantizes each channel to 0 or the buffer maximum and
// spreads the quantization error over not-yet-visited neighbors.
type ErrorDiffusionFilter struct {
	Kernel Kernel
}

// FloydSteinberg returns an operation that dithers a buffer down to the eight
// colors whose channels are all 0 or MaxVal.
//
// A channel becomes MaxVal if it is greater than MaxVal/2 (integer division)
// and 0 otherwise. The difference is added to the four neighbors of
// FloydSteinbergKernel that lie inside the buffer; taps that fall outside are
// dropped, not redistributed, so edge pixels pass on less error.
//
// The operation relies on row-major traversal: once a pixel has been visited
// it is final and no later visit writes to it.
func FloydSteinberg() *ErrorDiffusionFilter {
	return &ErrorDiffusionFilter{Kernel: FloydSteinbergKernel}
}

// Apply implements ppm.Operation.
func (f *ErrorDiffusionFilter) Apply(p *ppm.Pixel, col, row int, b *ppm.Buffer) {
	maxVal := b.MaxVal()
	r, g, bl := saturate(p.R), saturate(p.G), saturate(p.B)
	q := ppm.Pixel{
		R: quantize(r, maxVal),
		G: quantize(g, maxVal),
		B: quantize(bl, maxVal),
	}
	errR, errG, errB := r-q.R, g-q.G, bl-q.B
	*p = q

	if errR == 0 && errG == 0 && errB == 0 {
		return
	}

	pix := b.Pixels()
	div := float64(f.Kernel.Divisor)
	for _, t := range f.Kernel.Taps {
		i := b.Index(col+t.DCol, row+t.DRow)
		if i < 0 {
			continue
		}
		dst := &pix[i]
		dst.R = diffuse(saturate(dst.R), errR, t.Weight, div)
		dst.G = diffuse(saturate(dst.G), errG, t.Weight, div)
		dst.B = diffuse(saturate(dst.B), errB, t.Weight, div)
	}
}

// String returns the filter name.
func (f *ErrorDiffusionFilter) String() string {
	return "floyd-steinberg"
}

// quantize maps v to maxVal when it is above the midpoint and to 0 otherwise.
func quantize(v, maxVal int) int {
	if v > maxVal/2 {
		return maxVal
	}
	return 0
}

// diffuse adds err*weight/div to v. The sum is formed in floating point and
// truncated toward zero.
func diffuse(v, err, weight int, div float64) int {
	return int(float64(v) + float64(err*weight)/div)
}
