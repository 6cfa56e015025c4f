package ppm

import (
	"fmt"
	"time"
)

// Operation is a per-pixel step run by the traversal engine.
//
// Apply receives a pointer to the pixel at (col, row) and the whole buffer.
// It may write to any pixel of the buffer, including pixels the traversal has
// not reached yet; later visits observe those writes.
type Operation interface {
	Apply(p *Pixel, col, row int, b *Buffer)
}

// OperationFunc adapts a plain function to the Operation interface.
type OperationFunc func(p *Pixel, col, row int, b *Buffer)

// Apply calls f(p, col, row, b).
func (f OperationFunc) Apply(p *Pixel, col, row int, b *Buffer) {
	f(p, col, row, b)
}

// ForEachPixel visits every pixel of b exactly once in row-major order,
// index 0 upward, and calls op for each. The column and row are derived from
// the index as col = i % width, row = i / width.
//
// Nothing is cached or snapshotted: op sees the live buffer, and the order is
// strictly sequential because error diffusion reads what earlier visits
// wrote.
func ForEachPixel(b *Buffer, op Operation) {
	if b == nil || op == nil {
		return
	}
	for i := range b.pix {
		col, row := b.Coords(i)
		op.Apply(&b.pix[i], col, row, b)
	}
}

// ApplyFilter runs each operation over the whole buffer, one full traversal
// per operation, in the order given.
//
// Example:
//
//	ppm.ApplyFilter(buf, filter.Grayscale(), filter.FloydSteinberg())
func ApplyFilter(b *Buffer, ops ...Operation) {
	if b == nil {
		return
	}
	log := Logger()
	for _, op := range ops {
		if op == nil {
			continue
		}
		start := time.Now()
		ForEachPixel(b, op)
		log.Debug("ppm: filter applied",
			"filter", operationName(op),
			"pixels", len(b.pix),
			"elapsed", time.Since(start))
	}
}

// operationName returns a readable name for op in log records.
func operationName(op Operation) string {
	if s, ok := op.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", op)
}
