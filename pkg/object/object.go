// Package object implements the generic object tree that widgets are built on.
//
// An [Object] owns geometry, an active style, a parent/children relation and
// an opaque extension block. Its behavior comes from a [Handler]; widget
// types wrap the handler of their base type and call it first, so signals
// and design phases flow from the most generic to the most specific type.
//
// Objects live on a [Display], which collects invalidated areas and redraws
// them on [Display.Refresh].
package object

import (
	"github.com/google/uuid"

	"github.com/go-drift/embedui/pkg/graphics"
	"github.com/go-drift/embedui/pkg/style"
)

// Object is a node of the object tree.
type Object struct {
	id       uuid.UUID
	disp     *Display
	parent   *Object
	children []*Object

	coords    graphics.Area
	style     *style.Style
	handler   Handler
	ext       any
	clickable bool
	deleted   bool
}

// New creates an object on parent with the [Base] handler. If copy is
// non-nil the geometry, style and clickable flag are copied from it; the
// handler and extension block are left for the object's type to install.
// Parent must not be nil; use [Display.Screen] as the root.
func New(parent *Object, copy *Object) *Object {
	obj := &Object{
		id:      uuid.New(),
		disp:    parent.disp,
		parent:  parent,
		handler: Base{},
		style:   style.Plain,
	}
	obj.coords = graphics.AreaFromXYWH(parent.coords.X1, parent.coords.Y1, 100, 50)
	if copy != nil {
		obj.coords = copy.coords
		obj.style = copy.style
		obj.clickable = copy.clickable
	}
	parent.children = append(parent.children, obj)
	obj.Invalidate()
	return obj
}

// ID returns the object's unique identifier.
func (o *Object) ID() uuid.UUID {
	return o.id
}

// Display returns the display the object lives on.
func (o *Object) Display() *Display {
	return o.disp
}

// Parent returns the parent object, or nil for a screen.
func (o *Object) Parent() *Object {
	return o.parent
}

// Children returns the children in drawing order.
func (o *Object) Children() []*Object {
	return o.children
}

// Coords returns the object's absolute area.
func (o *Object) Coords() graphics.Area {
	return o.coords
}

// Width returns the object's width.
func (o *Object) Width() graphics.Coord {
	return o.coords.Width()
}

// Height returns the object's height.
func (o *Object) Height() graphics.Coord {
	return o.coords.Height()
}

// SetPos moves the object so that its top-left corner is at (x, y)
// relative to its parent. Children move along.
func (o *Object) SetPos(x, y graphics.Coord) {
	origin := graphics.Point{}
	if o.parent != nil {
		origin = graphics.Pt(o.parent.coords.X1, o.parent.coords.Y1)
	}
	d := origin.Add(graphics.Pt(x, y)).Sub(graphics.Pt(o.coords.X1, o.coords.Y1))
	if d == (graphics.Point{}) {
		return
	}
	o.Invalidate()
	o.translate(d)
	o.Invalidate()
}

func (o *Object) translate(d graphics.Point) {
	o.coords = o.coords.Translate(d)
	for _, c := range o.children {
		c.translate(d)
	}
}

// SetSize resizes the object keeping its top-left corner.
func (o *Object) SetSize(w, h graphics.Coord) {
	o.Invalidate()
	o.coords.X2 = o.coords.X1 + w - 1
	o.coords.Y2 = o.coords.Y1 + h - 1
	o.Invalidate()
}

// Style returns the active style.
func (o *Object) Style() *style.Style {
	return o.style
}

// SetStyle replaces the active style and notifies the handler.
func (o *Object) SetStyle(st *style.Style) {
	o.style = st
	o.RefreshStyle()
}

// RefreshStyle notifies the handler that the active style's content changed.
func (o *Object) RefreshStyle() {
	if o.deleted {
		return
	}
	o.Invalidate()
	o.Signal(SignalStyleChanged, nil)
}

// Handler returns the object's handler.
func (o *Object) Handler() Handler {
	return o.handler
}

// SetHandler installs h as the object's behavior.
func (o *Object) SetHandler(h Handler) {
	o.handler = h
}

// Ext returns the extension block attached by the object's type.
func (o *Object) Ext() any {
	return o.ext
}

// SetExt attaches the extension block.
func (o *Object) SetExt(ext any) {
	o.ext = ext
}

// Clickable reports whether input devices may press the object.
func (o *Object) Clickable() bool {
	return o.clickable
}

// SetClickable enables or disables pointer input on the object.
func (o *Object) SetClickable(en bool) {
	o.clickable = en
}

// Deleted reports whether the object has been deleted.
func (o *Object) Deleted() bool {
	return o.deleted
}

// Invalidate marks the object's area for redraw.
func (o *Object) Invalidate() {
	if o.deleted || o.disp == nil {
		return
	}
	o.disp.Invalidate(o.coords)
}

// Signal delivers sig to the object's handler.
func (o *Object) Signal(sig Signal, param any) Result {
	if o.deleted {
		return ResInvalid
	}
	return o.handler.Signal(o, sig, param)
}

// TypeNames returns the handler chain's type names, base type first.
func (o *Object) TypeNames() []string {
	var info TypeInfo
	o.Signal(SignalGetType, &info)
	return info.Types
}

// Delete removes the object and its children. Every deleted object receives
// SignalCleanup before it is detached. Delete always returns ResInvalid so
// that callers can propagate it.
func (o *Object) Delete() Result {
	if o.deleted {
		return ResInvalid
	}
	o.Invalidate()
	for len(o.children) > 0 {
		o.children[len(o.children)-1].Delete()
	}
	o.handler.Signal(o, SignalCleanup, nil)

	if p := o.parent; p != nil {
		for i, c := range p.children {
			if c == o {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}
	o.deleted = true
	o.ext = nil
	o.parent = nil
	if o.disp != nil {
		o.disp.forget(o)
	}
	return ResInvalid
}
