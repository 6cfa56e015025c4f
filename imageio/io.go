// Package imageio converts ppm buffers to and from image.Image and reads and
// writes them in other file formats.
//
// Supported extensions: .png, .jpg/.jpeg, .bmp, .tif/.tiff and .qoi. Paths
// ending in .ppm, .pnm or .zst go through the native ppm codec.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xfmoulet/qoi"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/ppm"
	"github.com/gogpu/ppm/internal/atomicfile"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the file extension is not recognized.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")
)

// JPEGQuality is the quality used when exporting JPEG files.
const JPEGQuality = 90

// codec describes how one file format is read and written.
type codec struct {
	name   string
	decode func(io.Reader) (image.Image, error)
	encode func(io.Writer, image.Image) error
}

var codecs = map[string]codec{
	".png": {name: "PNG", decode: png.Decode, encode: png.Encode},
	".jpg": {name: "JPEG", decode: jpeg.Decode, encode: encodeJPEG},
	".bmp": {name: "BMP", decode: bmp.Decode, encode: bmp.Encode},
	".tif": {name: "TIFF", decode: tiff.Decode, encode: encodeTIFF},
	".qoi": {name: "QOI", decode: qoi.Decode, encode: qoi.Encode},
}

// aliases maps alternative extensions onto codecs keys.
var aliases = map[string]string{
	".jpeg": ".jpg",
	".tiff": ".tif",
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// IsBitmapPath reports whether path is handled by the native ppm codec.
func IsBitmapPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm", ".pnm", ".zst":
		return true
	}
	return false
}

func lookup(path string) (codec, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if alias, ok := aliases[ext]; ok {
		ext = alias
	}
	c, ok := codecs[ext]
	if !ok {
		return codec{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return c, nil
}

// Import loads the file at path into a buffer with a channel maximum of 255.
// The format is chosen from the file extension.
func Import(path string, opts ...ppm.Option) (*ppm.Buffer, error) {
	if IsBitmapPath(path) {
		return ppm.LoadImage(path, opts...)
	}
	c, err := lookup(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ppm.ErrOpen, err)
	}
	defer func() { _ = f.Close() }()

	img, err := c.decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", c.name, err)
	}
	ppm.Logger().Info("imageio: imported", "path", path, "format", c.name)
	return FromImage(img)
}

// Export writes b to the file at path. The format is chosen from the file
// extension. Channel values must lie in [0, MaxVal]. A failed export leaves
// an existing file at path untouched.
func Export(b *ppm.Buffer, path string, opts ...ppm.Option) error {
	if IsBitmapPath(path) {
		return ppm.SaveImage(b, path, opts...)
	}
	c, err := lookup(path)
	if err != nil {
		return err
	}
	img, err := ToImage(b)
	if err != nil {
		return err
	}

	path = filepath.Clean(path)
	err = atomicfile.Write(path, 0o644, func(w io.Writer) error {
		if err := c.encode(w, img); err != nil {
			return fmt.Errorf("imageio: encode %s: %w", c.name, err)
		}
		return nil
	})
	var fe *atomicfile.Error
	switch {
	case atomicfile.IsCreate(err):
		return fmt.Errorf("%w: %w", ppm.ErrOpen, err)
	case errors.As(err, &fe):
		return fmt.Errorf("%w: %w", ppm.ErrWrite, err)
	case err != nil:
		return err
	}

	ppm.Logger().Info("imageio: exported", "path", path, "format", c.name)
	return nil
}
