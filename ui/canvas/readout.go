package canvas

import (
	"fmt"

	"fyne.io/fyne/v2"

	"tfeditor/internal/editor"
	"tfeditor/pkg/geometry"
)

// Readout describes the curve position under the pointer in domain terms.
type Readout struct {
	OK      bool    // false when the pointer is outside the drawable area
	Value   float64 // scalar value along the bottom axis range
	Opacity float64
}

// ReadoutAt converts a widget-local position into a readout for f.
func ReadoutAt(f editor.Frame, pos fyne.Position) Readout {
	p := geometry.Pointer{Page: geometry.NewPoint2D(float64(pos.X), float64(pos.Y))}
	if f.Rect.Empty() || geometry.IsOutsideCanvas(p, f.Rect) {
		return Readout{}
	}
	n := geometry.ToNormalizedCoords(p, f.Rect)
	d := f.Bottom.Scale.Domain
	return Readout{
		OK:      true,
		Value:   d[0] + n.X*(d[1]-d[0]),
		Opacity: 1 - n.Y,
	}
}

// String formats the readout for a status bar.
func (r Readout) String() string {
	if !r.OK {
		return ""
	}
	return fmt.Sprintf("value %.4g  opacity %.2f", r.Value, r.Opacity)
}
