package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanvasRectFromBox(t *testing.T) {
	r := CanvasRectFromBox(Box{Width: 300, Height: 200, Top: 10, Left: 20},
		Padding{Top: 8, Right: 12, Bottom: 30, Left: 40})
	diff(t, CanvasRect{Width: 248, Height: 162, Top: 18, Left: 60}, r)

	small := CanvasRectFromBox(Box{Width: 10, Height: 10}, Padding{Left: 40, Bottom: 30})
	assert.True(t, small.Empty())
	assert.Zero(t, small.Width)
	assert.Zero(t, small.Height)
}

func TestToNormalizedCoords(t *testing.T) {
	r := CanvasRect{Width: 200, Height: 100, Top: 50, Left: 10}

	tests := []struct {
		name string
		p    Pointer
		want Point2D
	}{
		{"origin", Pointer{Page: Pt(10, 50)}, Pt(0, 0)},
		{"center", Pointer{Page: Pt(110, 100)}, Pt(0.5, 0.5)},
		{"far corner", Pointer{Page: Pt(210, 150)}, Pt(1, 1)},
		{"scrolled", Pointer{Page: Pt(160, 125), Scroll: Pt(50, 25)}, Pt(0.5, 0.5)},
		{"clamped low", Pointer{Page: Pt(-100, 0)}, Pt(0, 0)},
		{"clamped high", Pointer{Page: Pt(1000, 1000)}, Pt(1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, ToNormalizedCoords(tt.p, r))
		})
	}
}

func TestToNormalizedCoordsEmptyRect(t *testing.T) {
	got := ToNormalizedCoords(Pointer{Page: Pt(5, 5)}, CanvasRect{})
	diff(t, Point2D{}, got)
}

func TestIsOutsideCanvas(t *testing.T) {
	r := CanvasRect{Width: 200, Height: 100, Top: 50, Left: 10}

	assert.False(t, IsOutsideCanvas(Pointer{Page: Pt(10, 50)}, r))
	assert.False(t, IsOutsideCanvas(Pointer{Page: Pt(210, 150)}, r))
	assert.False(t, IsOutsideCanvas(Pointer{Page: Pt(100, 100)}, r))
	assert.True(t, IsOutsideCanvas(Pointer{Page: Pt(9, 100)}, r))
	assert.True(t, IsOutsideCanvas(Pointer{Page: Pt(100, 151)}, r))
	assert.True(t, IsOutsideCanvas(Pointer{Page: Pt(100, 100), Scroll: Pt(0, 60)}, r))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.5))
	assert.Equal(t, 1.0, Clamp01(1.5))
	assert.Equal(t, 0.3, Clamp01(0.3))
	assert.Equal(t, 2.0, Clamp(5, -2, 2))
}
