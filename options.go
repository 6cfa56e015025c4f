package ppm

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Compression selects the stream wrapper used by LoadImage and SaveImage.
type Compression uint8

const (
	// CompressionAuto compresses with zstd when the path ends in ".zst".
	CompressionAuto Compression = iota
	// CompressionNone reads and writes plain text regardless of the path.
	CompressionNone
	// CompressionZstd always wraps the stream with zstd.
	CompressionZstd
)

// String returns the compression name.
func (c Compression) String() string {
	switch c {
	case CompressionAuto:
		return "auto"
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	}
	return fmt.Sprintf("compression(%d)", uint8(c))
}

// zstdExt is the file extension that turns on zstd under CompressionAuto.
const zstdExt = ".zst"

// Option configures decoding and the file entry points.
//
// Example:
//
//	buf, err := ppm.LoadImage("scan.ppm.zst", ppm.WithMaxPixels(4096*4096))
type Option func(*options)

// options holds optional configuration for Decode, LoadImage and SaveImage.
type options struct {
	maxPixels   int
	compression Compression
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		maxPixels:   DefaultMaxPixels,
		compression: CompressionAuto,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithMaxPixels limits width*height of decoded buffers. Larger images fail
// with ErrAllocation before any pixel storage is allocated. Values <= 0 keep
// the default.
func WithMaxPixels(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxPixels = n
		}
	}
}

// WithCompression selects the stream wrapper used by LoadImage and SaveImage.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// compressed reports whether path should go through zstd.
func (o options) compressed(path string) bool {
	switch o.compression {
	case CompressionZstd:
		return true
	case CompressionNone:
		return false
	}
	return strings.EqualFold(filepath.Ext(path), zstdExt)
}
