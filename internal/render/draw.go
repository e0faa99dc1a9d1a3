package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"tfeditor/internal/editor"
	"tfeditor/pkg/colorutil"
	"tfeditor/pkg/geometry"
)

// circleSegments is the polygon resolution used for handles and joints.
const circleSegments = 32

// tickLength is the axis tick mark length in unscaled pixels.
const tickLength = 4

// Image renders a frame into a new image sized to the frame's box times
// scale.
func Image(f editor.Frame, scale float64) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Ceil(f.Box.Width * scale))
	h := int(math.Ceil(f.Box.Height * scale))
	dst := image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	DrawFrame(dst, f, scale)
	return dst
}

// DrawFrame paints a frame onto dst, whose origin is the top left corner of
// the frame's box. scale converts box pixels to dst pixels.
func DrawFrame(dst *image.RGBA, f editor.Frame, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	b := dst.Bounds()
	draw.Draw(dst, b, image.NewUniform(f.Theme.Background), image.Point{}, draw.Src)
	if b.Empty() || f.Rect.Empty() {
		return
	}

	p := newPainter(dst, scale)
	origin := geometry.NewPoint2D(f.Rect.Left-f.Box.Left, f.Rect.Top-f.Box.Top)
	p.origin = origin.Scale(scale)

	stops := GradientStops(f.Points, f.Scale)
	if area := AreaPolygon(f.Points, f.Rect); len(area) >= 3 {
		p.fill(area, newGradientImage(stops, b, p.origin.X, f.Rect.Width*scale))
	}
	if path := CurvePath(f.Points, f.Rect); len(path) > 0 {
		p.polyline(path, f.Theme.StrokeWidth, f.Theme.Stroke)
	}

	drawAxes(p, f)

	for _, h := range f.Handles {
		fillColor := h.Color
		outline := f.Theme.Stroke
		if f.Disabled {
			fillColor = colorutil.WithAlpha(fillColor, 0.5)
			outline = colorutil.WithAlpha(outline, 0.5)
		}
		p.disc(h.Center, h.Radius, outline)
		inner := h.Radius - math.Max(1, f.Theme.StrokeWidth*0.75)
		if inner > 0 {
			p.disc(h.Center, inner, fillColor)
		}
	}
}

// painter draws rect-relative shapes onto an image through a reusable
// rasterizer.
type painter struct {
	dst    *image.RGBA
	z      *vector.Rasterizer
	scale  float64
	origin geometry.Point2D // rect origin relative to the dst bounds minimum
}

func newPainter(dst *image.RGBA, scale float64) *painter {
	b := dst.Bounds()
	return &painter{
		dst:   dst,
		z:     vector.NewRasterizer(b.Dx(), b.Dy()),
		scale: scale,
	}
}

// toDst maps a rect-relative point in box pixels to rasterizer pixels, which
// start at the dst bounds minimum.
func (p *painter) toDst(q geometry.Point2D) (float32, float32) {
	return float32(p.origin.X + q.X*p.scale), float32(p.origin.Y + q.Y*p.scale)
}

func (p *painter) begin() {
	b := p.dst.Bounds()
	p.z.Reset(b.Dx(), b.Dy())
	p.z.DrawOp = draw.Over
}

func (p *painter) polygon(pts []geometry.Point2D) {
	for i, q := range pts {
		x, y := p.toDst(q)
		if i == 0 {
			p.z.MoveTo(x, y)
		} else {
			p.z.LineTo(x, y)
		}
	}
	p.z.ClosePath()
}

func (p *painter) flush(src image.Image) {
	b := p.dst.Bounds()
	p.z.Draw(p.dst, b, src, b.Min)
}

func (p *painter) fill(pts []geometry.Point2D, src image.Image) {
	p.begin()
	p.polygon(pts)
	p.flush(src)
}

// polyline strokes pts with round joins. Each piece is rasterized on its own
// so overlapping pieces of opposite winding never cancel out.
func (p *painter) polyline(pts []geometry.Point2D, width float64, c color.NRGBA) {
	if width <= 0 {
		width = 1
	}
	src := image.NewUniform(c)
	half := width / 2
	for i := 0; i+1 < len(pts); i++ {
		quad := segmentQuad(pts[i], pts[i+1], half)
		if quad == nil {
			continue
		}
		p.fill(quad, src)
	}
	if len(pts) > 2 {
		for _, q := range pts[1 : len(pts)-1] {
			p.fill(circle(q, half), src)
		}
	}
}

func (p *painter) line(a, b geometry.Point2D, width float64, c color.NRGBA) {
	if quad := segmentQuad(a, b, width/2); quad != nil {
		p.fill(quad, image.NewUniform(c))
	}
}

func (p *painter) disc(center geometry.Point2D, r float64, c color.NRGBA) {
	p.fill(circle(center, r), image.NewUniform(c))
}

// segmentQuad returns the rectangle covering a line segment of the given
// half width, or nil for a zero-length segment.
func segmentQuad(a, b geometry.Point2D, half float64) []geometry.Point2D {
	d := b.Sub(a)
	l := math.Hypot(d.X, d.Y)
	if l == 0 {
		return nil
	}
	n := geometry.NewPoint2D(-d.Y/l*half, d.X/l*half)
	return []geometry.Point2D{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}
}

func circle(c geometry.Point2D, r float64) []geometry.Point2D {
	pts := make([]geometry.Point2D, circleSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = geometry.NewPoint2D(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
	}
	return pts
}

// gradientImage is a horizontal gradient spanning [x0, x0+width) pixels
// from the left edge of bounds. Every row is identical.
type gradientImage struct {
	bounds image.Rectangle
	cols   []color.NRGBA
}

func newGradientImage(stops []GradientStop, bounds image.Rectangle, x0, width float64) *gradientImage {
	g := &gradientImage{bounds: bounds, cols: make([]color.NRGBA, bounds.Dx())}
	for i := range g.cols {
		t := 0.0
		if width > 0 {
			t = (float64(i) + 0.5 - x0) / width
		}
		g.cols[i] = At(stops, t)
	}
	return g
}

func (g *gradientImage) ColorModel() color.Model { return color.NRGBAModel }

func (g *gradientImage) Bounds() image.Rectangle { return g.bounds }

func (g *gradientImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(g.bounds)) {
		return color.NRGBA{}
	}
	return g.cols[x-g.bounds.Min.X]
}
