package editor

import (
	"slices"

	"tfeditor/internal/axis"
	"tfeditor/internal/curve"
	"tfeditor/pkg/colorutil"
	"tfeditor/pkg/geometry"
)

// Frame is an immutable projection of the editor for one render. Renderers
// only ever see frames.
type Frame struct {
	Box      geometry.Box
	Rect     geometry.CanvasRect
	Theme    Theme
	Disabled bool
	Points   curve.List
	Handles  []Handle
	Scale    *colorutil.Scale
	Left     axis.Axis
	Bottom   axis.Axis
}

// Frame snapshots the editor for rendering. Axes are served from a cache
// keyed on canvas size, range and theme.
func (e *Editor) Frame() Frame {
	e.mu.Lock()
	defer e.mu.Unlock()
	style := e.theme.axisStyle()
	return Frame{
		Box:      e.box,
		Rect:     e.rect,
		Theme:    e.theme,
		Disabled: e.disabled,
		Points:   slices.Clone(e.points),
		Handles:  e.handlesLocked(),
		Scale:    e.scale,
		Left:     e.axes.Left(e.rect.Height, style),
		Bottom:   e.axes.Bottom(e.rect.Width, e.rng, style),
	}
}

// axisBuilds returns how often the axes have been recomputed.
func (e *Editor) axisBuilds() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.axes.Builds()
}
