package geometry

// LineIntercept returns a function that samples the segment p1→p2 at a given x.
//
// The sample is the crossing point of the segment with the vertical line at
// targetX, using the two-line intersection formula. NaNPoint is returned when
// the crossing lies outside the segment's parameter range [0,1] or when the
// segment cannot cross a vertical line (coincident or vertical endpoints).
func LineIntercept(p1, p2 Point2D) func(targetX float64) Point2D {
	ab := p2.Sub(p1)
	return func(targetX float64) Point2D {
		c := Point2D{X: targetX, Y: 0}
		cd := Point2D{X: 0, Y: 1}
		denom := ab.Cross(cd)
		if denom == 0 {
			return NaNPoint
		}
		t := c.Sub(p1).Cross(cd) / denom
		if t < 0 || t > 1 {
			return NaNPoint
		}
		return Point2D{X: p1.X + t*ab.X, Y: p1.Y + t*ab.Y}
	}
}
