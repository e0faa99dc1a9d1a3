package render

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"

	"tfeditor/internal/axis"
	"tfeditor/internal/editor"
	"tfeditor/pkg/geometry"
)

// labelFace picks the bitmap face closest to the requested label height.
func labelFace(size float64) font.Face {
	if size >= 16 {
		return inconsolata.Regular8x16
	}
	return basicfont.Face7x13
}

func drawAxes(p *painter, f editor.Frame) {
	w, h := f.Rect.Width, f.Rect.Height
	stroke := f.Theme.Stroke
	lw := max(1, f.Theme.StrokeWidth/2)

	p.line(geometry.NewPoint2D(0, 0), geometry.NewPoint2D(0, h), lw, stroke)
	p.line(geometry.NewPoint2D(0, h), geometry.NewPoint2D(w, h), lw, stroke)

	face := labelFace(f.Theme.TextSize * p.scale)
	d := &font.Drawer{Dst: p.dst, Src: image.NewUniform(f.Theme.Text), Face: face}
	ascent := face.Metrics().Ascent.Ceil()

	for _, t := range f.Left.Ticks {
		p.line(geometry.NewPoint2D(-tickLength, t.Pos), geometry.NewPoint2D(0, t.Pos), lw, stroke)
		x, y := p.toDst(geometry.NewPoint2D(-tickLength-2, t.Pos))
		adv := d.MeasureString(t.Label).Ceil()
		drawLabel(d, int(x)-adv, int(y)+ascent/2-1, t.Label)
	}
	for _, t := range f.Bottom.Ticks {
		p.line(geometry.NewPoint2D(t.Pos, h), geometry.NewPoint2D(t.Pos, h+tickLength), lw, stroke)
		x, y := p.toDst(geometry.NewPoint2D(t.Pos, h+tickLength+2))
		adv := d.MeasureString(t.Label).Ceil()
		drawLabel(d, int(x)-adv/2, int(y)+ascent, t.Label)
	}
}

// drawLabel draws s with its baseline starting at (x, y) in rasterizer
// pixels.
func drawLabel(d *font.Drawer, x, y int, s string) {
	b := d.Dst.Bounds()
	d.Dot = fixed.P(b.Min.X+x, b.Min.Y+y)
	d.DrawString(s)
}

// TickLabels lists the labels of an axis in order.
func TickLabels(a axis.Axis) []string {
	labels := make([]string, len(a.Ticks))
	for i, t := range a.Ticks {
		labels[i] = t.Label
	}
	return labels
}
