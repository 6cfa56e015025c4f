package ppm

import (
	"errors"
	"fmt"
)

// Errors returned by the codec and the file entry points. Returned errors wrap
// one of these sentinels and can be matched with [errors.Is].
var (
	// ErrOpen is returned when a source or destination cannot be opened.
	ErrOpen = errors.New("ppm: cannot open file")

	// ErrFormat is returned when the format tag is not the textual color
	// bitmap marker or a field is not a decimal integer.
	ErrFormat = errors.New("ppm: invalid format")

	// ErrDimension is returned for zero or negative dimensions and for a
	// channel maximum other than 255.
	ErrDimension = errors.New("ppm: invalid dimensions")

	// ErrTruncated is returned when the stream ends before the header or all
	// declared pixels have been read.
	ErrTruncated = errors.New("ppm: truncated data")

	// ErrInvalidPixelValue is returned by Encode when a channel value lies
	// outside [0, max].
	ErrInvalidPixelValue = errors.New("ppm: invalid pixel value")

	// ErrAllocation is returned when a pixel buffer cannot be sized.
	ErrAllocation = errors.New("ppm: cannot allocate pixel buffer")

	// ErrWrite is returned when encoded output cannot be written.
	ErrWrite = errors.New("ppm: write failed")
)

// PixelValueError describes the first out-of-range channel found in a buffer.
type PixelValueError struct {
	Index    int
	Col, Row int
	Channel  Channel
	Value    int
	Max      int
}

func (e *PixelValueError) Error() string {
	return fmt.Sprintf("ppm: invalid pixel value: %s channel of pixel %d (col %d, row %d) is %d, want 0..%d",
		e.Channel, e.Index, e.Col, e.Row, e.Value, e.Max)
}

// Unwrap lets errors.Is match ErrInvalidPixelValue.
func (e *PixelValueError) Unwrap() error {
	return ErrInvalidPixelValue
}
