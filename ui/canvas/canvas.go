// Package canvas provides the fyne widget that hosts the curve editor.
package canvas

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"tfeditor/internal/editor"
	"tfeditor/pkg/geometry"
)

// CurveCanvas draws a transfer-function editor and feeds it pointer input.
// Widget-local positions are used as page coordinates, so the editor box
// always starts at the origin.
type CurveCanvas struct {
	widget.BaseWidget

	editor *editor.Editor
	raster *fynecanvas.Raster

	mu         sync.Mutex
	size       fyne.Size
	lastOutput *image.RGBA

	// Callbacks
	onHover func(r Readout) // Called with ok=false when the pointer leaves
}

var (
	_ fyne.Widget       = (*CurveCanvas)(nil)
	_ fyne.Draggable    = (*CurveCanvas)(nil)
	_ desktop.Mouseable = (*CurveCanvas)(nil)
	_ desktop.Hoverable = (*CurveCanvas)(nil)
)

// NewCurveCanvas creates a canvas for ed.
func NewCurveCanvas(ed *editor.Editor) *CurveCanvas {
	c := &CurveCanvas{editor: ed}
	c.raster = fynecanvas.NewRaster(c.draw)
	c.raster.ScaleMode = fynecanvas.ImageScalePixels
	c.ExtendBaseWidget(c)
	return c
}

// Editor returns the hosted editor.
func (c *CurveCanvas) Editor() *editor.Editor {
	return c.editor
}

// OnHover sets the callback invoked as the pointer moves over the canvas.
func (c *CurveCanvas) OnHover(callback func(r Readout)) {
	c.onHover = callback
}

// GetRenderedOutput returns the last rendered image.
func (c *CurveCanvas) GetRenderedOutput() *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastOutput
}

// MouseDown starts an add, drag or removal.
func (c *CurveCanvas) MouseDown(ev *desktop.MouseEvent) {
	if c.editor.PointerDown(toPointerEvent(ev)) {
		c.Refresh()
	}
}

// MouseUp ends a drag.
func (c *CurveCanvas) MouseUp(ev *desktop.MouseEvent) {
	c.editor.PointerUp(toPointerEvent(ev))
}

// Dragged moves the captured handle. Drags continue outside the widget.
func (c *CurveCanvas) Dragged(ev *fyne.DragEvent) {
	if c.editor.PointerMove(editor.At(float64(ev.Position.X), float64(ev.Position.Y))) {
		c.Refresh()
	}
	c.hover(ev.Position)
}

// DragEnd ends a drag.
func (c *CurveCanvas) DragEnd() {
	c.editor.PointerUp(editor.PointerEvent{})
}

func (c *CurveCanvas) MouseIn(ev *desktop.MouseEvent) {
	c.hover(ev.Position)
}

func (c *CurveCanvas) MouseMoved(ev *desktop.MouseEvent) {
	c.hover(ev.Position)
}

func (c *CurveCanvas) MouseOut() {
	if c.onHover != nil {
		c.onHover(Readout{})
	}
}

func (c *CurveCanvas) hover(pos fyne.Position) {
	if c.onHover == nil {
		return
	}
	c.onHover(ReadoutAt(c.editor.Frame(), pos))
}

// Refresh redraws the curve.
func (c *CurveCanvas) Refresh() {
	c.raster.Refresh()
}

// resize reports a new widget size to the editor.
func (c *CurveCanvas) resize(size fyne.Size) {
	c.mu.Lock()
	changed := c.size != size
	c.size = size
	c.mu.Unlock()
	if changed {
		c.editor.Resize(geometry.Box{Width: float64(size.Width), Height: float64(size.Height)})
	}
}

func toPointerEvent(ev *desktop.MouseEvent) editor.PointerEvent {
	pe := editor.At(float64(ev.Position.X), float64(ev.Position.Y))
	switch ev.Button {
	case desktop.MouseButtonSecondary:
		pe.Button = editor.ButtonSecondary
	case desktop.MouseButtonTertiary:
		pe.Button = editor.ButtonTertiary
	}
	return pe.WithModifiers(toModifiers(ev.Modifier))
}

func toModifiers(m fyne.KeyModifier) editor.Modifier {
	var out editor.Modifier
	if m&fyne.KeyModifierShift != 0 {
		out |= editor.ModShift
	}
	if m&fyne.KeyModifierControl != 0 {
		out |= editor.ModControl
	}
	if m&fyne.KeyModifierAlt != 0 {
		out |= editor.ModAlt
	}
	if m&fyne.KeyModifierSuper != 0 {
		out |= editor.ModSuper
	}
	return out
}

// CreateRenderer implements fyne.Widget.
func (c *CurveCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &curveCanvasRenderer{canvas: c}
}

type curveCanvasRenderer struct {
	canvas *CurveCanvas
}

func (r *curveCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.raster.Resize(size)
	r.canvas.resize(size)
}

func (r *curveCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(200, 120)
}

func (r *curveCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *curveCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.raster}
}

func (r *curveCanvasRenderer) Destroy() {}
