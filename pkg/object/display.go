package object

import (
	"github.com/google/uuid"

	"github.com/go-drift/embedui/pkg/draw"
	"github.com/go-drift/embedui/pkg/errors"
	"github.com/go-drift/embedui/pkg/graphics"
	"github.com/go-drift/embedui/pkg/style"
)

// maxInvalid is the number of separate dirty areas kept before they are
// merged into one.
const maxInvalid = 32

// Display is the root of an object tree and tracks areas needing redraw.
type Display struct {
	screen  *Object
	invalid []graphics.Area
	forgets []func(*Object)
}

// NewDisplay creates a display of the given resolution with an empty screen.
func NewDisplay(width, height graphics.Coord) *Display {
	d := &Display{}
	d.screen = &Object{
		id:      uuid.New(),
		disp:    d,
		coords:  graphics.AreaFromXYWH(0, 0, width, height),
		style:   style.Scr,
		handler: Base{},
	}
	d.Invalidate(d.screen.coords)
	return d
}

// Screen returns the root object.
func (d *Display) Screen() *Object {
	return d.screen
}

// Bounds returns the display area.
func (d *Display) Bounds() graphics.Area {
	return d.screen.coords
}

// OnDelete registers fn to run for every object deleted from this display.
// Input devices and focus groups use it to drop references.
func (d *Display) OnDelete(fn func(*Object)) {
	d.forgets = append(d.forgets, fn)
}

func (d *Display) forget(o *Object) {
	for _, fn := range d.forgets {
		fn(o)
	}
}

// Invalidate marks area for redraw. Areas outside the display are ignored.
func (d *Display) Invalidate(area graphics.Area) {
	area, ok := area.Intersect(d.screen.coords)
	if !ok {
		return
	}
	for i, a := range d.invalid {
		if a.Covers(area) {
			return
		}
		if area.Covers(a) {
			d.invalid[i] = area
			return
		}
	}
	if len(d.invalid) >= maxInvalid {
		merged := area
		for _, a := range d.invalid {
			merged = merged.Union(a)
		}
		d.invalid = append(d.invalid[:0], merged)
		return
	}
	d.invalid = append(d.invalid, area)
}

// Invalid returns the areas waiting for redraw.
func (d *Display) Invalid() []graphics.Area {
	return d.invalid
}

// Dirty reports whether anything waits for redraw.
func (d *Display) Dirty() bool {
	return len(d.invalid) > 0
}

// Refresh redraws every invalid area on s and clears the list.
// A panic in a design callback is reported and ends the refresh.
func (d *Display) Refresh(s draw.Surface) {
	defer errors.Recover("object.Display.Refresh")

	areas := d.invalid
	d.invalid = nil
	for _, mask := range areas {
		top := topObject(d.screen, s, mask)
		if top == nil {
			top = d.screen
		}
		d.refreshFrom(top, s, mask)
	}
}

// refreshFrom draws top and everything above it in z-order inside mask:
// first top's own subtree, then the younger siblings of top and of each of
// its ancestors.
func (d *Display) refreshFrom(top *Object, s draw.Surface, mask graphics.Area) {
	drawTree(top, s, mask)
	for cur := top; cur.parent != nil; cur = cur.parent {
		p := cur.parent
		after := false
		for _, sib := range p.children {
			if after {
				drawTree(sib, s, mask)
			}
			if sib == cur {
				after = true
			}
		}
		p.handler.Design(p, s, mask, DesignDrawPost)
	}
}

func drawTree(o *Object, s draw.Surface, mask graphics.Area) {
	area, ok := o.coords.Intersect(mask)
	if !ok {
		return
	}
	o.handler.Design(o, s, area, DesignDrawMain)
	for _, c := range o.children {
		drawTree(c, s, area)
	}
	o.handler.Design(o, s, area, DesignDrawPost)
}

// topObject finds the deepest, topmost object that fully covers mask.
func topObject(o *Object, s draw.Surface, mask graphics.Area) *Object {
	if !o.coords.Covers(mask) {
		return nil
	}
	for i := len(o.children) - 1; i >= 0; i-- {
		if found := topObject(o.children[i], s, mask); found != nil {
			return found
		}
	}
	if o.handler.Design(o, s, mask, DesignCoverCheck) {
		return o
	}
	return nil
}

// HitTest returns the topmost clickable object containing p, or nil.
func (d *Display) HitTest(p graphics.Point) *Object {
	return hitTest(d.screen, p)
}

func hitTest(o *Object, p graphics.Point) *Object {
	if !o.coords.Contains(p) {
		return nil
	}
	for i := len(o.children) - 1; i >= 0; i-- {
		if found := hitTest(o.children[i], p); found != nil {
			return found
		}
	}
	if o.clickable {
		return o
	}
	return nil
}
