package draw

import (
	"image"
	"image/color"
	stddraw "image/draw"

	"golang.org/x/image/vector"

	"github.com/go-drift/embedui/pkg/graphics"
	"github.com/go-drift/embedui/pkg/style"
)

// kappa places cubic control points so that a quarter curve approximates a circle.
const kappa = 0.5522847

// Raster is a software Surface painting into an RGBA image.
type Raster struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// NewRaster allocates a raster of the given size.
func NewRaster(width, height int) *Raster {
	return &Raster{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(0, 0),
	}
}

// Image returns the backing image.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Bounds returns the raster extent as an area.
func (r *Raster) Bounds() graphics.Area {
	b := r.img.Bounds()
	return graphics.Area{X1: 0, Y1: 0, X2: graphics.Coord(b.Dx() - 1), Y2: graphics.Coord(b.Dy() - 1)}
}

// Clear fills the whole raster with c.
func (r *Raster) Clear(c graphics.Color) {
	stddraw.Draw(r.img, r.img.Bounds(), image.NewUniform(toNRGBA(c, graphics.OpaCover)), image.Point{}, stddraw.Src)
}

// Rect fills area with st, clipped to mask and to the raster bounds.
func (r *Raster) Rect(area, mask graphics.Area, st *style.Style, opa graphics.Opa) {
	if st == nil || area.IsEmpty() {
		return
	}
	clip, ok := area.Intersect(mask)
	if !ok {
		return
	}
	if clip, ok = clip.Intersect(r.Bounds()); !ok {
		return
	}

	body := st.Body
	bodyOpa := opa.Scale(body.Opa)
	radius := cornerRadius(area, body.Radius)

	// Shape coordinates are relative to the clip origin; the rasterizer covers
	// exactly the clipped rectangle.
	x0 := float32(area.X1 - clip.X1)
	y0 := float32(area.Y1 - clip.Y1)
	x1 := x0 + float32(area.Width())
	y1 := y0 + float32(area.Height())
	dst := image.Rect(int(clip.X1), int(clip.Y1), int(clip.X2)+1, int(clip.Y2)+1)

	if bodyOpa > graphics.OpaTransp {
		r.begin(dst)
		addRRect(r.z, x0, y0, x1, y1, radius, false)
		var src image.Image
		if body.MainColor == body.GradColor {
			src = image.NewUniform(toNRGBA(body.MainColor, bodyOpa))
		} else {
			src = &gradient{
				top:    body.MainColor,
				bottom: body.GradColor,
				y0:     int(area.Y1),
				h:      int(area.Height()),
				opa:    bodyOpa,
			}
		}
		r.z.Draw(r.img, dst, src, dst.Min)
	}

	border := body.Border
	borderOpa := opa.Scale(border.Opa)
	if border.Width > 0 && borderOpa > graphics.OpaTransp {
		w := float32(border.Width)
		r.begin(dst)
		addRRect(r.z, x0, y0, x1, y1, radius, false)
		if x1-x0 > 2*w && y1-y0 > 2*w {
			addRRect(r.z, x0+w, y0+w, x1-w, y1-w, max(radius-w, 0), true)
		}
		r.z.Draw(r.img, dst, image.NewUniform(toNRGBA(border.Color, borderOpa)), dst.Min)
	}
}

func (r *Raster) begin(dst image.Rectangle) {
	r.z.Reset(dst.Dx(), dst.Dy())
	r.z.DrawOp = stddraw.Over
}

// cornerRadius limits the style radius to half of the shorter side.
func cornerRadius(area graphics.Area, radius graphics.Coord) float32 {
	short := min(area.Width(), area.Height())
	if radius > short/2 {
		radius = short / 2
	}
	if radius < 0 {
		radius = 0
	}
	return float32(radius)
}

// addRRect appends a closed rounded rectangle to z. Clockwise and
// counter-clockwise contours cancel each other, which cuts holes.
func addRRect(z *vector.Rasterizer, x0, y0, x1, y1, r float32, ccw bool) {
	k := r * kappa
	if !ccw {
		z.MoveTo(x0+r, y0)
		z.LineTo(x1-r, y0)
		z.CubeTo(x1-r+k, y0, x1, y0+r-k, x1, y0+r)
		z.LineTo(x1, y1-r)
		z.CubeTo(x1, y1-r+k, x1-r+k, y1, x1-r, y1)
		z.LineTo(x0+r, y1)
		z.CubeTo(x0+r-k, y1, x0, y1-r+k, x0, y1-r)
		z.LineTo(x0, y0+r)
		z.CubeTo(x0, y0+r-k, x0+r-k, y0, x0+r, y0)
		z.ClosePath()
		return
	}
	z.MoveTo(x0+r, y0)
	z.CubeTo(x0+r-k, y0, x0, y0+r-k, x0, y0+r)
	z.LineTo(x0, y1-r)
	z.CubeTo(x0, y1-r+k, x0+r-k, y1, x0+r, y1)
	z.LineTo(x1-r, y1)
	z.CubeTo(x1-r+k, y1, x1, y1-r+k, x1, y1-r)
	z.LineTo(x1, y0+r)
	z.CubeTo(x1, y0+r-k, x1-r+k, y0, x1-r, y0)
	z.ClosePath()
}

func toNRGBA(c graphics.Color, opa graphics.Opa) color.NRGBA {
	a := graphics.Opa(c.A()).Scale(opa)
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: uint8(a)}
}

// gradient is a vertical two-stop gradient spanning h rows from y0.
type gradient struct {
	top, bottom graphics.Color
	y0, h       int
	opa         graphics.Opa
}

func (g *gradient) ColorModel() color.Model { return color.NRGBAModel }

func (g *gradient) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (g *gradient) At(x, y int) color.Color {
	if g.h <= 1 {
		return toNRGBA(g.top, g.opa)
	}
	pos := min(max(y-g.y0, 0), g.h-1)
	ratio := uint8(255 - pos*255/(g.h-1))
	return toNRGBA(g.top.Mix(g.bottom, ratio), g.opa)
}
