package render

import (
	"tfeditor/internal/curve"
	"tfeditor/pkg/geometry"
)

// CurvePath returns the stroke vertices of the curve in pixels relative to
// the rect origin. Fewer than two points yield an empty path.
func CurvePath(points curve.List, rect geometry.CanvasRect) []geometry.Point2D {
	if len(points) < 2 {
		return nil
	}
	path := make([]geometry.Point2D, len(points))
	for i, p := range points {
		path[i] = rect.ToScreen(p.Pos())
	}
	return path
}

// AreaPolygon returns the closed outline of the region between the curve and
// the canvas baseline. The outline always starts at x=0 on the first point's
// height, even if the first point is not at x=0.
func AreaPolygon(points curve.List, rect geometry.CanvasRect) []geometry.Point2D {
	if len(points) == 0 {
		return nil
	}
	base := rect.Height
	poly := make([]geometry.Point2D, 0, len(points)+3)
	poly = append(poly, geometry.NewPoint2D(0, base))
	first := rect.ToScreen(points[0].Pos())
	if first.X != 0 {
		poly = append(poly, geometry.NewPoint2D(0, first.Y))
	}
	for _, p := range points {
		poly = append(poly, rect.ToScreen(p.Pos()))
	}
	last := poly[len(poly)-1]
	poly = append(poly, geometry.NewPoint2D(last.X, base))
	return poly
}
