package curve

import (
	"math"
	"slices"

	"tfeditor/pkg/geometry"
)

// Insert adds a point at normalized position p.
//
// The insertion is rejected when p.X lies closer than minSep to any existing
// point. On success the new list, the index of the new point and true are
// returned.
func (l List) Insert(p geometry.Point2D, minSep float64, colorAt ColorFunc) (List, int, bool) {
	x := geometry.Clamp01(p.X)
	for _, q := range l {
		if math.Abs(q.X-x) < minSep {
			return l, -1, false
		}
	}

	pt := ControlPoint{ID: NewID(), X: x, Y: geometry.Clamp01(p.Y)}
	if colorAt != nil {
		pt.Color = colorAt(x)
	}
	i, _ := slices.BinarySearchFunc(l, x, func(q ControlPoint, x float64) int {
		if q.X <= x {
			return -1
		}
		return 1
	})
	return slices.Insert(slices.Clone(l), i, pt), i, true
}

// Move drags point i toward normalized position p.
//
// Anchors keep their x and only take the new y. Interior points are bounded
// so they stay at least minSep away from both neighbors; when the neighbors
// leave no room the point keeps its current x.
func (l List) Move(i int, p geometry.Point2D, minSep float64, colorAt ColorFunc) List {
	if i < 0 || i >= len(l) {
		return l
	}
	out := slices.Clone(l)
	pt := out[i]

	switch {
	case i == 0:
		pt.X = 0
	case i == len(l)-1:
		pt.X = 1
	default:
		lo := l[i-1].X + minSep
		hi := l[i+1].X - minSep
		if lo <= hi {
			pt.X = geometry.Clamp(geometry.Clamp01(p.X), lo, hi)
		}
	}
	pt.Y = geometry.Clamp01(p.Y)
	if colorAt != nil {
		pt.Color = colorAt(pt.X)
	}
	out[i] = pt
	return out
}

// Remove deletes interior point i. Anchors and out-of-range indices are
// rejected and the list is returned unchanged.
func (l List) Remove(i int) (List, bool) {
	if i <= 0 || i >= len(l)-1 {
		return l, false
	}
	return slices.Delete(slices.Clone(l), i, i+1), true
}
