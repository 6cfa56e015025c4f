// Package ppm reads, filters and writes textual color bitmaps.
//
// # Overview
//
// The textual color bitmap (netpbm "P3") stores a format tag, the number of
// columns and rows, the channel maximum and then one decimal RGB triple per
// pixel in row-major order:
//
//	P3
//	3 2
//	255
//	255 0 0
//	0 255 0
//	0 0 255
//	255 255 0
//	255 0 255
//	0 255 255
//
// Only the ASCII three-channel variant with a maximum of 255 is supported.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ppm"
//	    "github.com/gogpu/ppm/filter"
//	)
//
//	buf, err := ppm.LoadImage("in.ppm")
//	if err != nil {
//	    return err
//	}
//	ppm.ApplyFilter(buf, filter.Grayscale(), filter.FloydSteinberg())
//	return ppm.SaveImage(buf, "out.ppm")
//
// # Architecture
//
// The package is organized into:
//   - Buffer: a flat row-major slice of signed pixel triples
//   - Codec: Decode and Encode, plus LoadImage and SaveImage for files
//   - Traversal: ForEachPixel and ApplyFilter run an Operation over a Buffer
//   - Filters: package filter (grayscale, channel masking, Floyd-Steinberg)
//   - Interop: package imageio converts to and from image.Image
//
// # Pixel Values
//
// Channels are signed ints. Filters may push values outside [0, MaxVal] while
// a traversal is running; the last filter of a pipeline must leave every
// channel in range, and Encode rejects anything else with
// ErrInvalidPixelValue rather than truncating it.
//
// # Concurrency
//
// Processing is single-threaded. A Buffer belongs to one pipeline run and must
// not be shared while it is being filtered.
package ppm

// Version information, reported by ppmfilter -version.
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
