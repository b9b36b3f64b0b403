// Package draw provides the rectangle drawing primitive used by widget
// design callbacks.
//
// A [Surface] receives filled rectangle requests clipped to a mask. Rounded
// corners, circles (a rectangle with [style.RadiusCircle]), vertical
// gradients and borders are all expressed through the style record.
//
// Two surfaces are provided: [Raster] paints into an [image.RGBA] and
// [Recorder] keeps a display list for tests and tooling.
package draw

import (
	"github.com/go-drift/embedui/pkg/graphics"
	"github.com/go-drift/embedui/pkg/style"
)

// Surface is the target of design callbacks.
type Surface interface {
	// Rect fills area with st, drawing only the pixels inside mask.
	// opa scales the style's own opacities.
	Rect(area, mask graphics.Area, st *style.Style, opa graphics.Opa)
}

// RectOp is a recorded rectangle request.
type RectOp struct {
	Area  graphics.Area
	Mask  graphics.Area
	Style style.Style
	Opa   graphics.Opa
}

// Recorder is a Surface that records every request in order.
// The style is copied at record time so later mutation does not alter history.
type Recorder struct {
	Ops []RectOp
}

// Rect records the request.
func (r *Recorder) Rect(area, mask graphics.Area, st *style.Style, opa graphics.Opa) {
	op := RectOp{Area: area, Mask: mask, Opa: opa}
	if st != nil {
		op.Style = *st
	}
	r.Ops = append(r.Ops, op)
}

// Reset clears the recorded operations.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Last returns the most recent operation, or false if nothing was recorded.
func (r *Recorder) Last() (RectOp, bool) {
	if len(r.Ops) == 0 {
		return RectOp{}, false
	}
	return r.Ops[len(r.Ops)-1], true
}
