package graphics

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// Hex constructs an opaque Color from a 0xRRGGBB value.
func Hex(rgb uint32) Color {
	return Color(0xFF000000 | rgb&0x00FFFFFF)
}

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c) }

// A returns the alpha component.
func (c Color) A() uint8 { return uint8(c >> 24) }

// WithAlpha8 returns a copy of the color with the given alpha byte (0-255).
func (c Color) WithAlpha8(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Mix blends c with other. A ratio of 255 returns c, 0 returns other.
func (c Color) Mix(other Color, ratio uint8) Color {
	mix := func(a, b uint8) uint8 {
		return uint8((uint16(a)*uint16(ratio) + uint16(b)*uint16(255-ratio)) / 255)
	}
	return RGBA8(
		mix(c.R(), other.R()),
		mix(c.G(), other.G()),
		mix(c.B(), other.B()),
		mix(c.A(), other.A()),
	)
}

// Opa is an opacity value where 0 is fully transparent and 255 fully opaque.
type Opa uint8

const (
	OpaTransp Opa = 0
	Opa50     Opa = 127
	OpaCover  Opa = 255
)

// Scale multiplies two opacities.
func (o Opa) Scale(other Opa) Opa {
	if o == OpaCover {
		return other
	}
	if other == OpaCover {
		return o
	}
	return Opa((uint16(o) * uint16(other)) >> 8)
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
	ColorSilver      = Color(0xFFC0C0C0)
	ColorGray        = Color(0xFF808080)
	ColorNavy        = Color(0xFF000080)
)
