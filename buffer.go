package ppm

import (
	"fmt"
	"math"
)

// DefaultMaxVal is the only channel maximum the textual format accepts.
const DefaultMaxVal = 255

// DefaultMaxPixels caps width*height for buffers allocated while decoding.
const DefaultMaxPixels = 1 << 28

// MaxChannelMagnitude bounds the absolute value of a decoded channel and of a
// buffer's channel maximum. Filters saturate channels to this range, so their
// weighted sums fit in a 32-bit int.
const MaxChannelMagnitude = 1 << 24

// Buffer is a rectangular pixel buffer stored row-major in a flat slice.
//
// The pixel at column col and row row lives at index row*Width()+col, and the
// reverse mapping is col = i % Width(), row = i / Width(). Filters that look
// at neighbors depend on this layout.
//
// A Buffer is owned by a single pipeline run and is not safe for concurrent
// mutation.
type Buffer struct {
	width  int
	height int
	maxVal int
	pix    []Pixel
}

// NewBuffer creates a zeroed buffer with the given dimensions and channel
// maximum. Decoded buffers always use DefaultMaxVal; other maxima are accepted
// here so filters can be exercised on synthetic buffers.
func NewBuffer(width, height, maxVal int) (*Buffer, error) {
	return newBuffer(width, height, maxVal, math.MaxInt)
}

func newBuffer(width, height, maxVal, maxPixels int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimension, width, height)
	}
	if maxVal <= 0 || maxVal > MaxChannelMagnitude {
		return nil, fmt.Errorf("%w: channel maximum %d", ErrDimension, maxVal)
	}
	if width > math.MaxInt/height {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrAllocation, width, height)
	}
	n := width * height
	if n > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds limit of %d pixels", ErrAllocation, width, height, maxPixels)
	}
	return &Buffer{
		width:  width,
		height: height,
		maxVal: maxVal,
		pix:    make([]Pixel, n),
	}, nil
}

// Width returns the number of columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Buffer) Height() int {
	return b.height
}

// MaxVal returns the channel maximum.
func (b *Buffer) MaxVal() int {
	return b.maxVal
}

// Len returns the number of pixels, Width()*Height().
func (b *Buffer) Len() int {
	return len(b.pix)
}

// Pixels returns the live pixel slice in row-major order.
// Writes through the slice modify the buffer.
func (b *Buffer) Pixels() []Pixel {
	return b.pix
}

// InBounds reports whether (col, row) lies inside the buffer.
func (b *Buffer) InBounds(col, row int) bool {
	return col >= 0 && col < b.width && row >= 0 && row < b.height
}

// Index returns the linear index of (col, row), or -1 if it is out of bounds.
func (b *Buffer) Index(col, row int) int {
	if !b.InBounds(col, row) {
		return -1
	}
	return row*b.width + col
}

// Coords returns the column and row of linear index i.
func (b *Buffer) Coords(i int) (col, row int) {
	return i % b.width, i / b.width
}

// At returns the pixel at (col, row). The second result is false when the
// coordinates are out of bounds.
func (b *Buffer) At(col, row int) (Pixel, bool) {
	i := b.Index(col, row)
	if i < 0 {
		return Pixel{}, false
	}
	return b.pix[i], true
}

// Set stores p at (col, row). Out-of-bounds writes are ignored and reported
// by returning false.
func (b *Buffer) Set(col, row int, p Pixel) bool {
	i := b.Index(col, row)
	if i < 0 {
		return false
	}
	b.pix[i] = p
	return true
}

// Fill sets every pixel to p.
func (b *Buffer) Fill(p Pixel) {
	for i := range b.pix {
		b.pix[i] = p
	}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]Pixel, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{
		width:  b.width,
		height: b.height,
		maxVal: b.maxVal,
		pix:    pix,
	}
}

// Equal reports whether both buffers have the same dimensions, channel
// maximum and pixel values.
func (b *Buffer) Equal(other *Buffer) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.width != other.width || b.height != other.height || b.maxVal != other.maxVal {
		return false
	}
	for i, p := range b.pix {
		if other.pix[i] != p {
			return false
		}
	}
	return true
}

// Validate checks that every channel lies in [0, MaxVal]. It returns a
// *PixelValueError for the first offending channel in row-major order.
func (b *Buffer) Validate() error {
	for i, p := range b.pix {
		for _, c := range Channels {
			v := p.Channel(c)
			if v < 0 || v > b.maxVal {
				col, row := b.Coords(i)
				return &PixelValueError{
					Index:   i,
					Col:     col,
					Row:     row,
					Channel: c,
					Value:   v,
					Max:     b.maxVal,
				}
			}
		}
	}
	return nil
}
