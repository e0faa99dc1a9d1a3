package geometry

// Box is a measured container bounding box in host pixels.
type Box struct {
	Width  float64
	Height float64
	Top    float64
	Left   float64
}

// Padding is the fixed space reserved around the drawable area for axes.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// CanvasRect is the drawable area in host pixels after subtracting axis padding.
type CanvasRect struct {
	Width  float64
	Height float64
	Top    float64
	Left   float64
}

// CanvasRectFromBox shrinks a container box by the axis padding.
// Width and height never go negative.
func CanvasRectFromBox(b Box, pad Padding) CanvasRect {
	w := b.Width - pad.Left - pad.Right
	h := b.Height - pad.Top - pad.Bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return CanvasRect{
		Width:  w,
		Height: h,
		Top:    b.Top + pad.Top,
		Left:   b.Left + pad.Left,
	}
}

// Empty reports whether the rect has no drawable area.
func (r CanvasRect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Pointer is the position part of a pointer event: page coordinates plus the
// scroll offset of the hosting document.
type Pointer struct {
	Page   Point2D
	Scroll Point2D
}

// Local returns the unclamped pointer position in pixels relative to the
// rect origin.
func (r CanvasRect) Local(p Pointer) Point2D {
	return Point2D{
		X: p.Page.X - (r.Left + p.Scroll.X),
		Y: p.Page.Y - (r.Top + p.Scroll.Y),
	}
}

// ToScreen maps a normalized point to pixels relative to the rect origin.
func (r CanvasRect) ToScreen(p Point2D) Point2D {
	return Point2D{X: p.X * r.Width, Y: p.Y * r.Height}
}

// ToNormalizedCoords maps a pointer position to [0,1]² relative to rect.
// An empty rect maps everything to the origin.
func ToNormalizedCoords(p Pointer, r CanvasRect) Point2D {
	if r.Empty() {
		return Point2D{}
	}
	off := r.Local(p)
	return Point2D{
		X: Clamp01(off.X / r.Width),
		Y: Clamp01(off.Y / r.Height),
	}
}

// IsOutsideCanvas reports whether the unclamped pointer offset falls outside
// [0,width]×[0,height].
func IsOutsideCanvas(p Pointer, r CanvasRect) bool {
	off := r.Local(p)
	return off.X < 0 || off.X > r.Width || off.Y < 0 || off.Y > r.Height
}
