package ppm

import (
	"fmt"
	"strings"
)

// Pixel holds the three color channels of one bitmap pixel.
//
// Channels are signed: filters may leave values below zero or above the
// buffer's maximum while a traversal is in progress (error diffusion does
// this routinely). The last filter of a pipeline is responsible for bringing
// every channel back into [0, MaxVal] before the buffer is encoded.
type Pixel struct {
	R, G, B int
}

// RGB creates a pixel from its three channel values.
func RGB(r, g, b int) Pixel {
	return Pixel{R: r, G: g, B: b}
}

// Channel returns the value of channel c.
func (p Pixel) Channel(c Channel) int {
	switch c {
	case Red:
		return p.R
	case Green:
		return p.G
	case Blue:
		return p.B
	}
	return 0
}

// SetChannel sets the value of channel c.
func (p *Pixel) SetChannel(c Channel, v int) {
	switch c {
	case Red:
		p.R = v
	case Green:
		p.G = v
	case Blue:
		p.B = v
	}
}

// String returns the pixel as it appears in the textual format.
func (p Pixel) String() string {
	return fmt.Sprintf("%d %d %d", p.R, p.G, p.B)
}

// Channel identifies one color component.
type Channel uint8

const (
	// Red is the first channel of a pixel triple.
	Red Channel = iota
	// Green is the second channel of a pixel triple.
	Green
	// Blue is the third channel of a pixel triple.
	Blue
)

// Channels lists every channel in storage order.
var Channels = [...]Channel{Red, Green, Blue}

// String returns the lower-case channel name.
func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return fmt.Sprintf("channel(%d)", uint8(c))
}

// ChannelMask is a set of channels.
type ChannelMask uint8

const (
	// MaskRed selects the red channel.
	MaskRed ChannelMask = 1 << Red
	// MaskGreen selects the green channel.
	MaskGreen ChannelMask = 1 << Green
	// MaskBlue selects the blue channel.
	MaskBlue ChannelMask = 1 << Blue

	// AllChannels selects every channel.
	AllChannels = MaskRed | MaskGreen | MaskBlue
)

// Has reports whether channel c is in the mask.
func (m ChannelMask) Has(c Channel) bool {
	return m&(1<<c) != 0
}

// String returns the mask as channel letters in storage order ("rgb", "rb", "").
func (m ChannelMask) String() string {
	var sb strings.Builder
	for _, c := range Channels {
		if m.Has(c) {
			sb.WriteByte(c.String()[0])
		}
	}
	return sb.String()
}

// ParseChannelMask parses a set of channel letters such as "rgb", "rb" or "g".
// Letters are case-insensitive and may repeat. An empty string is the empty mask.
func ParseChannelMask(s string) (ChannelMask, error) {
	var m ChannelMask
	for _, r := range strings.ToLower(s) {
		switch r {
		case 'r':
			m |= MaskRed
		case 'g':
			m |= MaskGreen
		case 'b':
			m |= MaskBlue
		default:
			return 0, fmt.Errorf("ppm: invalid channel %q in mask %q", r, s)
		}
	}
	return m, nil
}
