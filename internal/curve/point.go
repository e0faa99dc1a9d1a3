// Package curve holds the control-point list of a transfer-function curve and
// the rules for adding, dragging and removing points.
//
// Points live in normalized editor space: x in [0,1] left to right and y in
// [0,1] top to bottom. External data uses the opposite y convention (y=1 is
// full opacity, drawn at the top), so FromData and ToData flip y.
package curve

import (
	"fmt"
	"image/color"
	"math"
	"slices"

	"tfeditor/pkg/geometry"

	"github.com/google/uuid"
)

// ControlPoint is one vertex of the piecewise-linear curve.
type ControlPoint struct {
	ID    string
	X     float64
	Y     float64
	Color color.NRGBA
}

// Pos returns the point's normalized position.
func (p ControlPoint) Pos() geometry.Point2D {
	return geometry.Point2D{X: p.X, Y: p.Y}
}

// ColorFunc samples a continuous color scale at x.
type ColorFunc func(x float64) color.NRGBA

// List is an ordered control-point list. Operations never mutate the
// receiver; they return a new list.
type List []ControlPoint

// MinSeparation returns the smallest allowed x distance between neighbors:
// one handle diameter expressed as a fraction of the canvas width.
// A canvas with no width allows no separation at all.
func MinSeparation(radiusPx, widthPx float64) float64 {
	if widthPx <= 0 {
		return math.Inf(1)
	}
	return 2 * radiusPx / widthPx
}

// NewID returns a fresh opaque point identifier.
func NewID() string {
	return uuid.NewString()
}

// FromData builds a list from external {x,y} data.
//
// The result always satisfies the list invariants: data is sorted by x and
// clamped to [0,1]², the first and last x are pinned to 0 and 1, and a
// missing anchor is synthesized from the nearest datum's y.
func FromData(data []geometry.Point2D, colorAt ColorFunc) List {
	pts := make([]geometry.Point2D, len(data))
	for i, d := range data {
		pts[i] = geometry.Point2D{X: geometry.Clamp01(d.X), Y: geometry.Clamp01(d.Y)}
	}
	slices.SortStableFunc(pts, func(a, b geometry.Point2D) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		}
		return 0
	})

	switch len(pts) {
	case 0:
		pts = []geometry.Point2D{{X: 0, Y: 0}, {X: 1, Y: 1}}
	case 1:
		pts = []geometry.Point2D{{X: 0, Y: pts[0].Y}, {X: 1, Y: pts[0].Y}}
	}
	pts[0].X = 0
	pts[len(pts)-1].X = 1

	l := make(List, len(pts))
	for i, d := range pts {
		l[i] = ControlPoint{ID: NewID(), X: d.X, Y: 1 - d.Y}
	}
	return l.Recolor(colorAt)
}

// ToData maps the list back to external {x,y} data.
func (l List) ToData() []geometry.Point2D {
	out := make([]geometry.Point2D, len(l))
	for i, p := range l {
		out[i] = geometry.Point2D{X: p.X, Y: 1 - p.Y}
	}
	return out
}

// EqualData reports whether two external point lists are equal by value.
func EqualData(a, b []geometry.Point2D) bool {
	return slices.Equal(a, b)
}

// IndexOf returns the index of the point with the given id, or -1.
func (l List) IndexOf(id string) int {
	return slices.IndexFunc(l, func(p ControlPoint) bool { return p.ID == id })
}

// IsAnchor reports whether index i is the first or last point.
func (l List) IsAnchor(i int) bool {
	return i == 0 || i == len(l)-1
}

// Recolor recomputes every point's color from its x.
func (l List) Recolor(colorAt ColorFunc) List {
	out := slices.Clone(l)
	if colorAt == nil {
		return out
	}
	for i := range out {
		out[i].Color = colorAt(out[i].X)
	}
	return out
}

// Validate checks the list invariants.
func (l List) Validate() error {
	if len(l) < 2 {
		return fmt.Errorf("curve has %d points, need at least 2", len(l))
	}
	if l[0].X != 0 {
		return fmt.Errorf("first point x = %g, want 0", l[0].X)
	}
	if last := l[len(l)-1].X; last != 1 {
		return fmt.Errorf("last point x = %g, want 1", last)
	}
	for i := 1; i < len(l); i++ {
		if l[i].X < l[i-1].X {
			return fmt.Errorf("point %d x = %g is left of point %d x = %g", i, l[i].X, i-1, l[i-1].X)
		}
	}
	return nil
}
