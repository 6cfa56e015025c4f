package ppm

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/gogpu/ppm/internal/atomicfile"
)

// LoadImage reads a textual color bitmap from the file at path.
//
// Paths ending in ".zst" are decompressed with zstd unless WithCompression
// says otherwise. The file is closed before LoadImage returns, on success and
// on every error path.
func LoadImage(path string, opts ...Option) (*Buffer, error) {
	o := buildOptions(opts)

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if o.compressed(path) {
		zr, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(1), zstd.WithDecoderLowmem(true))
		if err != nil {
			return nil, fmt.Errorf("ppm: zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
		Logger().Debug("ppm: zstd input", "path", path)
	}

	buf, err := Decode(r, opts...)
	if err != nil {
		return nil, err
	}
	Logger().Info("ppm: loaded", "path", path, "width", buf.width, "height", buf.height)
	return buf, nil
}

// SaveImage writes b to the file at path, creating or replacing it.
//
// Channel values are validated before the file system is touched. The data
// goes to a temporary file in the same directory, which is renamed over path
// only after it has been written and closed, so a failed save leaves an
// existing file at path intact. Paths ending in ".zst" are compressed with
// zstd unless WithCompression says otherwise.
func SaveImage(b *Buffer, path string, opts ...Option) error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrDimension)
	}
	if err := b.Validate(); err != nil {
		return err
	}
	o := buildOptions(opts)

	path = filepath.Clean(path)
	err := atomicfile.Write(path, filePerm, func(w io.Writer) error {
		return writeFile(w, b, o.compressed(path))
	})
	if err != nil {
		return fileError(err)
	}

	Logger().Info("ppm: saved", "path", path, "width", b.width, "height", b.height)
	return nil
}

// filePerm is the permission of files written by SaveImage.
const filePerm = 0o644

// fileError maps a failed file system step of an atomic write onto ErrOpen or
// ErrWrite. Encoding errors are returned unchanged.
func fileError(err error) error {
	var fe *atomicfile.Error
	switch {
	case atomicfile.IsCreate(err):
		return fmt.Errorf("%w: %w", ErrOpen, err)
	case errors.As(err, &fe):
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return err
}

func writeFile(w io.Writer, b *Buffer, compressed bool) error {
	if !compressed {
		return Encode(w, b)
	}

	zw, err := zstd.NewWriter(w, zstd.WithEncoderConcurrency(1))
	if err != nil {
		return fmt.Errorf("ppm: zstd writer: %w", err)
	}
	if err := Encode(zw, b); err != nil {
		_ = zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// IsNotExist reports whether err was caused by a missing input file.
func IsNotExist(err error) bool {
	return errors.Is(err, ErrOpen) && errors.Is(err, os.ErrNotExist)
}
