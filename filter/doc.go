// Package filter provides per-pixel operations for ppm.ApplyFilter.
//
// This package contains:
//   - Grayscale: luminance with 0.30/0.59/0.11 weights, clamped to the buffer maximum
//   - MaskChannels: zero the channels outside a mask
//   - FloydSteinberg: two-level quantization per channel with error diffusion
//
// Every constructor returns a ppm.Operation. Configuration, such as the channel
// mask, is bound when the operation is created; operations hold no shared
// state and can be reused across buffers.
//
// FloydSteinberg is normally the last operation of a pipeline: it is the only
// one that guarantees every channel ends up at 0 or the buffer maximum.
package filter
