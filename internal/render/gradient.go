// Package render turns editor frames into pixels: the gradient-filled area
// under the curve, the curve stroke, point handles and both axes.
package render

import (
	"image/color"

	"tfeditor/internal/curve"
	"tfeditor/pkg/colorutil"
	"tfeditor/pkg/geometry"
)

// GradientStop is one entry of the fill gradient.
type GradientStop struct {
	Offset  float64 // horizontal position in [0,1]
	Color   color.NRGBA
	Opacity float64
}

// GradientStops builds one stop per colormap entry of the scale. Stop i sits
// at i/(n-1) and its opacity is sampled from the curve at that position, so
// the fill fades out wherever the curve drops. Entries that did not parse
// are not part of the scale and take no stop, which keeps the fill on the
// same spacing as the point colors.
func GradientStops(points curve.List, scale *colorutil.Scale) []GradientStop {
	if scale == nil {
		return nil
	}
	stops := make([]GradientStop, scale.Len())
	for i := range stops {
		x := scale.StopOffset(i)
		stops[i] = GradientStop{
			Offset:  x,
			Color:   scale.Stop(i),
			Opacity: geometry.Clamp01(1 - CurveY(points, x)),
		}
	}
	return stops
}

// CurveY samples the curve at x and returns its y in screen-normalized
// form (0 at the top). Positions before the first or after the last point
// take that point's y. An empty curve lies on the baseline.
func CurveY(points curve.List, x float64) float64 {
	switch len(points) {
	case 0:
		return 1
	case 1:
		return points[0].Y
	}
	if x <= points[0].X {
		return points[0].Y
	}
	last := points[len(points)-1]
	if x >= last.X {
		return last.Y
	}
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		if x < a.X || x > b.X {
			continue
		}
		switch x {
		case a.X:
			return a.Y
		case b.X:
			return b.Y
		}
		if p := geometry.LineIntercept(a.Pos(), b.Pos())(x); !p.IsNaN() {
			return p.Y
		}
		if x-a.X <= b.X-x {
			return a.Y
		}
		return b.Y
	}
	return last.Y
}

// At evaluates a stop list at t the way an SVG linear gradient does: color
// and opacity are blended linearly between the neighboring stops and held
// flat beyond the ends.
func At(stops []GradientStop, t float64) color.NRGBA {
	if len(stops) == 0 {
		return colorutil.Transparent
	}
	first, last := stops[0], stops[len(stops)-1]
	if t <= first.Offset {
		return colorutil.WithAlpha(first.Color, first.Opacity)
	}
	if t >= last.Offset {
		return colorutil.WithAlpha(last.Color, last.Opacity)
	}
	for i := 0; i+1 < len(stops); i++ {
		a, b := stops[i], stops[i+1]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return colorutil.WithAlpha(b.Color, b.Opacity)
		}
		f := (t - a.Offset) / span
		c := color.NRGBA{
			R: lerp8(a.Color.R, b.Color.R, f),
			G: lerp8(a.Color.G, b.Color.G, f),
			B: lerp8(a.Color.B, b.Color.B, f),
			A: 255,
		}
		return colorutil.WithAlpha(c, a.Opacity+(b.Opacity-a.Opacity)*f)
	}
	return colorutil.WithAlpha(last.Color, last.Opacity)
}

func lerp8(a, b uint8, f float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*f + 0.5)
}
