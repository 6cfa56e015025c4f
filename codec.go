package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gogpu/ppm/internal/pnmscan"
)

// Magic is the format tag of the textual three-channel bitmap.
const Magic = "P3"

// binaryMagic is the tag of the binary variant, which is not supported.
const binaryMagic = "P6"

// Decode reads a textual color bitmap from r.
//
// The header must carry the P3 tag, positive dimensions and a channel maximum
// of 255. Exactly width*height triples are read; anything after them is
// ignored. Channel values are not checked against the maximum here, but a
// value beyond ±MaxChannelMagnitude is a format error.
func Decode(r io.Reader, opts ...Option) (*Buffer, error) {
	o := buildOptions(opts)
	s := pnmscan.New(r)

	tag, err := s.Token()
	if err != nil {
		return nil, headerError("format tag", err)
	}
	switch tag {
	case Magic:
	case binaryMagic:
		return nil, fmt.Errorf("%w: binary variant %q is not supported", ErrFormat, tag)
	default:
		return nil, fmt.Errorf("%w: tag %q, want %q", ErrFormat, tag, Magic)
	}

	var hdr [3]int
	for i, name := range [...]string{"width", "height", "max value"} {
		v, err := s.Int()
		if err != nil {
			return nil, headerError(name, err)
		}
		hdr[i] = v
	}
	width, height, maxVal := hdr[0], hdr[1], hdr[2]
	if maxVal != DefaultMaxVal {
		return nil, fmt.Errorf("%w: max value %d, want %d", ErrDimension, maxVal, DefaultMaxVal)
	}

	buf, err := newBuffer(width, height, maxVal, o.maxPixels)
	if err != nil {
		return nil, err
	}

	for i := range buf.pix {
		p := &buf.pix[i]
		for _, c := range Channels {
			v, err := s.Int()
			if err != nil {
				return nil, pixelError(i, len(buf.pix), err)
			}
			if v < -MaxChannelMagnitude || v > MaxChannelMagnitude {
				return nil, fmt.Errorf("%w: pixel %d: %s value %d out of range ±%d",
					ErrFormat, i, c, v, MaxChannelMagnitude)
			}
			p.SetChannel(c, v)
		}
	}

	Logger().Debug("ppm: decoded", "width", width, "height", height, "max", maxVal)
	return buf, nil
}

func headerError(field string, err error) error {
	var se *pnmscan.SyntaxError
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: stream ended before %s", ErrTruncated, field)
	case errors.As(err, &se), errors.Is(err, pnmscan.ErrTokenTooLong):
		return fmt.Errorf("%w: %s: %w", ErrFormat, field, err)
	}
	return fmt.Errorf("ppm: read %s: %w", field, err)
}

func pixelError(i, n int, err error) error {
	var se *pnmscan.SyntaxError
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: got %d of %d pixels", ErrTruncated, i, n)
	case errors.As(err, &se), errors.Is(err, pnmscan.ErrTokenTooLong):
		return fmt.Errorf("%w: pixel %d: %w", ErrFormat, i, err)
	}
	return fmt.Errorf("ppm: read pixel %d: %w", i, err)
}

// Encode writes b to w in the textual format, one pixel triple per line.
//
// Every channel must already lie in [0, MaxVal]; otherwise Encode returns an
// error wrapping ErrInvalidPixelValue and writes nothing. Clamping or
// quantizing is the job of the last filter applied, not of the codec.
func Encode(w io.Writer, b *Buffer) error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrDimension)
	}
	if err := b.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if err := writeBitmap(bw, b); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	Logger().Debug("ppm: encoded", "width", b.width, "height", b.height, "max", b.maxVal)
	return nil
}

func writeBitmap(bw *bufio.Writer, b *Buffer) error {
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n%d\n", Magic, b.width, b.height, b.maxVal); err != nil {
		return err
	}

	line := make([]byte, 0, 3*len(strconv.Itoa(b.maxVal))+3)
	for _, p := range b.pix {
		line = line[:0]
		line = strconv.AppendInt(line, int64(p.R), 10)
		line = append(line, ' ')
		line = strconv.AppendInt(line, int64(p.G), 10)
		line = append(line, ' ')
		line = strconv.AppendInt(line, int64(p.B), 10)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return nil
}
