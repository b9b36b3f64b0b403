package graphics

// Coord is a pixel coordinate on the display.
type Coord int32

// CoordMax is the largest coordinate value, used as a "fully round" radius.
const CoordMax Coord = 1<<15 - 1

// Point is a position in display coordinates.
type Point struct {
	X Coord
	Y Coord
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y Coord) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Area is a rectangle given by its inclusive corner coordinates.
// An area whose X2 < X1 or Y2 < Y1 is empty.
type Area struct {
	X1, Y1 Coord
	X2, Y2 Coord
}

// AreaFromXYWH constructs an area from its top-left corner and size.
func AreaFromXYWH(x, y, w, h Coord) Area {
	return Area{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
}

// AreaAround returns the square area of the given radius centered on p.
func AreaAround(p Point, radius Coord) Area {
	return Area{X1: p.X - radius, Y1: p.Y - radius, X2: p.X + radius, Y2: p.Y + radius}
}

// Width returns the width of the area in pixels.
func (a Area) Width() Coord {
	return a.X2 - a.X1 + 1
}

// Height returns the height of the area in pixels.
func (a Area) Height() Coord {
	return a.Y2 - a.Y1 + 1
}

// IsEmpty reports whether the area covers no pixels.
func (a Area) IsEmpty() bool {
	return a.X2 < a.X1 || a.Y2 < a.Y1
}

// Center returns the center point of the area.
func (a Area) Center() Point {
	return Point{X: (a.X1 + a.X2) / 2, Y: (a.Y1 + a.Y2) / 2}
}

// Intersect returns the common part of a and b and whether it is non-empty.
func (a Area) Intersect(b Area) (Area, bool) {
	r := Area{
		X1: max(a.X1, b.X1),
		Y1: max(a.Y1, b.Y1),
		X2: min(a.X2, b.X2),
		Y2: min(a.Y2, b.Y2),
	}
	return r, !r.IsEmpty()
}

// Union returns the smallest area containing both a and b.
func (a Area) Union(b Area) Area {
	return Area{
		X1: min(a.X1, b.X1),
		Y1: min(a.Y1, b.Y1),
		X2: max(a.X2, b.X2),
		Y2: max(a.Y2, b.Y2),
	}
}

// Contains reports whether p lies inside the area.
func (a Area) Contains(p Point) bool {
	return p.X >= a.X1 && p.X <= a.X2 && p.Y >= a.Y1 && p.Y <= a.Y2
}

// Covers reports whether b lies completely inside a.
func (a Area) Covers(b Area) bool {
	return b.X1 >= a.X1 && b.Y1 >= a.Y1 && b.X2 <= a.X2 && b.Y2 <= a.Y2
}

// Translate returns the area moved by d.
func (a Area) Translate(d Point) Area {
	return Area{X1: a.X1 + d.X, Y1: a.Y1 + d.Y, X2: a.X2 + d.X, Y2: a.Y2 + d.Y}
}
