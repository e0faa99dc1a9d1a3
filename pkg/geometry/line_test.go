package geometry

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestLineIntercept(t *testing.T) {
	sample := LineIntercept(Pt(0.25, 0.45), Pt(0.85, 0.9))
	got := sample(0.60)
	diff(t, Pt(0.60, 0.7125), got, cmpopts.EquateApprox(0, 1e-9))
}

func TestLineInterceptEndpoints(t *testing.T) {
	p1, p2 := Pt(0.2, 0.1), Pt(0.6, 0.9)
	sample := LineIntercept(p1, p2)
	assert.Equal(t, p1.Y, sample(p1.X).Y)
	assert.Equal(t, p2.Y, sample(p2.X).Y)
}

func TestLineInterceptOutsideSegment(t *testing.T) {
	sample := LineIntercept(Pt(0.25, 0.45), Pt(0.85, 0.9))
	for _, x := range []float64{0, 0.2, 0.86, 1} {
		assert.True(t, sample(x).IsNaN(), "x=%g", x)
	}
}

func TestLineInterceptDegenerate(t *testing.T) {
	coincident := LineIntercept(Pt(0.5, 0.5), Pt(0.5, 0.5))
	assert.True(t, coincident(0.5).IsNaN())

	vertical := LineIntercept(Pt(0.5, 0.1), Pt(0.5, 0.9))
	assert.True(t, vertical(0.5).IsNaN())
}

func TestLineInterceptDescending(t *testing.T) {
	sample := LineIntercept(Pt(0, 1), Pt(1, 0))
	got := sample(0.25)
	assert.InDelta(t, 0.75, got.Y, 1e-12)
	assert.False(t, math.IsNaN(got.X))
}

func Pt(x, y float64) Point2D { return NewPoint2D(x, y) }
