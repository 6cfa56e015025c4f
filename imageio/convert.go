package imageio

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/ppm"
)

// ToImage converts b to an opaque *image.NRGBA. Channels are scaled from
// [0, MaxVal] to [0, 255]. It fails with ppm.ErrInvalidPixelValue if any
// channel is out of range.
func ToImage(b *ppm.Buffer) (*image.NRGBA, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: nil buffer", ppm.ErrDimension)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	w, h, maxVal := b.Width(), b.Height(), b.MaxVal()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	pix := b.Pixels()

	for y := range h {
		row := img.Pix[y*img.Stride:]
		for x := range w {
			p := pix[y*w+x]
			off := x * 4
			row[off+0] = scale8(p.R, maxVal)
			row[off+1] = scale8(p.G, maxVal)
			row[off+2] = scale8(p.B, maxVal)
			row[off+3] = 0xff
		}
	}
	return img, nil
}

// FromImage converts any image to a buffer with a channel maximum of 255.
// Alpha is dropped after the conversion to non-premultiplied color.
func FromImage(img image.Image) (*ppm.Buffer, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	buf, err := ppm.NewBuffer(width, height, ppm.DefaultMaxVal)
	if err != nil {
		return nil, err
	}
	pix := buf.Pixels()

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			row := nrgba.Pix[nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			for x := range width {
				off := x * 4
				pix[y*width+x] = ppm.RGB(int(row[off]), int(row[off+1]), int(row[off+2]))
			}
		}
		return buf, nil
	}

	// Generic slow path for any image type
	for y := range height {
		for x := range width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			pix[y*width+x] = ppm.RGB(int(c.R), int(c.G), int(c.B))
		}
	}
	return buf, nil
}

// scale8 maps v from [0, maxVal] to [0, 255], rounding to nearest.
func scale8(v, maxVal int) uint8 {
	if maxVal == 255 {
		return uint8(v)
	}
	return uint8((v*255 + maxVal/2) / maxVal)
}
