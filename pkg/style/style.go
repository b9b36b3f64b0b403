// Package style defines the visual style records drawn by widgets.
//
// Styles are plain values referenced by pointer. Widgets never own the
// styles they point at; the same record may be shared by many objects.
package style

import "github.com/go-drift/embedui/pkg/graphics"

// RadiusCircle makes the corners fully round whatever the size of the shape.
const RadiusCircle = graphics.CoordMax

// Border describes the outline drawn inside a body's edge.
type Border struct {
	Color graphics.Color
	Width graphics.Coord
	Opa   graphics.Opa
}

// Body describes the filled background of an object.
type Body struct {
	// MainColor is the color at the top edge.
	MainColor graphics.Color
	// GradColor is the color at the bottom edge. Equal to MainColor for a flat fill.
	GradColor graphics.Color
	// Radius is the corner radius. Use [RadiusCircle] for fully round corners.
	Radius graphics.Coord
	// Opa is the opacity of the fill.
	Opa    graphics.Opa
	Border Border
}

// Style is a complete style record.
type Style struct {
	Body Body
}

// Copy returns an independent copy of s.
func (s *Style) Copy() *Style {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// Flat returns a style with a single-color opaque body.
func Flat(color graphics.Color, radius graphics.Coord) *Style {
	return &Style{Body: Body{
		MainColor: color,
		GradColor: color,
		Radius:    radius,
		Opa:       graphics.OpaCover,
	}}
}

// Built-in styles used when no theme is active.
var (
	Scr = &Style{Body: Body{
		MainColor: graphics.ColorWhite,
		GradColor: graphics.ColorWhite,
		Opa:       graphics.OpaCover,
	}}

	Plain = &Style{Body: Body{
		MainColor: graphics.ColorWhite,
		GradColor: graphics.ColorWhite,
		Opa:       graphics.OpaCover,
	}}

	ButtonReleased = &Style{Body: Body{
		MainColor: graphics.Hex(0x76a2d0),
		GradColor: graphics.Hex(0x193a5d),
		Radius:    6,
		Opa:       graphics.OpaCover,
		Border:    Border{Color: graphics.Hex(0x0b1928), Width: 2, Opa: 178},
	}}

	ButtonPressed = &Style{Body: Body{
		MainColor: graphics.Hex(0x33497a),
		GradColor: graphics.Hex(0x10263c),
		Radius:    6,
		Opa:       graphics.OpaCover,
		Border:    Border{Color: graphics.Hex(0x0b1928), Width: 2, Opa: 178},
	}}

	ButtonToggledReleased = &Style{Body: Body{
		MainColor: graphics.Hex(0x0a1320),
		GradColor: graphics.Hex(0x37629b),
		Radius:    6,
		Opa:       graphics.OpaCover,
		Border:    Border{Color: graphics.Hex(0x04386c), Width: 2, Opa: 178},
	}}

	ButtonToggledPressed = &Style{Body: Body{
		MainColor: graphics.Hex(0x2b4569),
		GradColor: graphics.Hex(0x15243a),
		Radius:    6,
		Opa:       graphics.OpaCover,
		Border:    Border{Color: graphics.Hex(0x04386c), Width: 2, Opa: 178},
	}}

	ButtonInactive = &Style{Body: Body{
		MainColor: graphics.Hex(0xd8d8d8),
		GradColor: graphics.Hex(0xd8d8d8),
		Radius:    6,
		Opa:       graphics.OpaCover,
		Border:    Border{Color: graphics.Hex(0x404040), Width: 2, Opa: 178},
	}}
)
