package filter

import "github.com/gogpu/ppm"

// MaskFilter zeroes every channel that is not in its mask.
type MaskFilter struct {
	// Mask is the set of channels that keep their value.
	Mask ppm.ChannelMask
}

// MaskChannels returns an operation that keeps the channels in mask and sets
// the others to zero. ppm.AllChannels leaves pixels unchanged.
func MaskChannels(mask ppm.ChannelMask) *MaskFilter {
	return &MaskFilter{Mask: mask}
}

// Apply implements ppm.Operation.
func (f *MaskFilter) Apply(p *ppm.Pixel, _, _ int, _ *ppm.Buffer) {
	if !f.Mask.Has(ppm.Red) {
		p.R = 0
	}
	if !f.Mask.Has(ppm.Green) {
		p.G = 0
	}
	if !f.Mask.Has(ppm.Blue) {
		p.B = 0
	}
}

// String returns the filter name with its mask, e.g. "mask=rb".
func (f *MaskFilter) String() string {
	return "mask=" + f.Mask.String()
}
