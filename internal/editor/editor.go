// Package editor implements the transfer-function curve editor: it owns the
// control-point list, turns pointer events into add, drag and remove edits,
// projects the curve into canvas space for rendering, and reports settled
// edits to the host through a debounced, deduplicated callback.
package editor

import (
	"slices"
	"sync"

	"tfeditor/internal/axis"
	"tfeditor/internal/commit"
	"tfeditor/internal/curve"
	"tfeditor/pkg/colorutil"
	"tfeditor/pkg/geometry"
)

// Props is the host-supplied input of the editor.
type Props struct {
	// Data is the curve in external convention: {x,y} in [0,1]², y=1 opaque.
	Data []geometry.Point2D
	// Colormap lists color stops evenly spaced across [0,1].
	Colormap []string
	// Range is the domain shown on the bottom axis. It does not affect
	// point coordinates.
	Range [2]float64
	// Disabled suppresses all pointer interaction.
	Disabled bool
	// OnChange receives every settled, changed point list.
	OnChange func([]geometry.Point2D)
}

type handlers struct {
	change func(PointerEvent)
	remove func()
}

// Editor is the curve editor. All methods are safe for concurrent use.
type Editor struct {
	mu     sync.Mutex
	emitMu sync.Mutex // held while onChange runs
	cfg    Config
	theme  Theme
	clock  commit.Clock

	data     []geometry.Point2D
	colormap []string
	rng      [2]float64
	disabled bool
	onChange func([]geometry.Point2D)

	scale  *colorutil.Scale
	points curve.List
	box    geometry.Box
	rect   geometry.CanvasRect

	capture   Capture
	handlers  map[string]*handlers
	committer *commit.Committer[[]geometry.Point2D]
	axes      axis.Cache
	closed    bool
}

// New creates an editor and applies the initial props.
func New(props Props, opts ...Option) *Editor {
	e := &Editor{
		cfg:      DefaultConfig(),
		theme:    DarkTheme(),
		handlers: make(map[string]*handlers),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.committer = commit.New(e.cfg.CommitDelay, e.clock, curve.EqualData, e.emit)
	e.SetProps(props)
	return e
}

// SetProps applies new host input.
//
// The point list is rebuilt from Data only when Data changed and differs
// from what the editor last reported or currently holds; an echo of the
// editor's own output never resets an edit in progress. A changed colormap
// recolors the existing points.
func (e *Editor) SetProps(p Props) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	e.onChange = p.OnChange
	e.disabled = p.Disabled
	e.rng = p.Range

	colormapChanged := e.scale == nil || !slices.Equal(p.Colormap, e.colormap)
	if colormapChanged {
		e.colormap = slices.Clone(p.Colormap)
		scale, err := colorutil.NewScaleFromColormap(p.Colormap)
		if err != nil {
			Logger().Warn("colormap entries skipped", "err", err)
		}
		e.scale = scale
	}

	dataChanged := e.points == nil || !curve.EqualData(p.Data, e.data)
	e.data = slices.Clone(p.Data)

	switch {
	case dataChanged && !e.isEchoLocked(p.Data):
		e.rebuildLocked()
	case colormapChanged:
		e.points = e.points.Recolor(e.scale.At)
	}
}

// isEchoLocked reports whether data is the editor's own output coming back.
func (e *Editor) isEchoLocked(data []geometry.Point2D) bool {
	if e.points == nil {
		return false
	}
	if curve.EqualData(data, e.points.ToData()) {
		return true
	}
	last, ok := e.committer.Last()
	return ok && curve.EqualData(data, last)
}

func (e *Editor) rebuildLocked() {
	e.committer.Cancel()
	e.capture.Release()
	e.points = curve.FromData(e.data, e.scale.At)
	e.committer.MarkEmitted(e.points.ToData())
	for id := range e.handlers {
		if e.points.IndexOf(id) < 0 {
			delete(e.handlers, id)
		}
	}
	Logger().Info("curve rebuilt from data", "points", len(e.points))
}

// SetTheme switches the visual theme. Padding changes take effect
// immediately; cached axes are rebuilt on the next frame.
func (e *Editor) SetTheme(t Theme) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.theme = t
	e.rect = geometry.CanvasRectFromBox(e.box, t.Padding)
}

// Resize reports the hosting container's new bounding box.
func (e *Editor) Resize(box geometry.Box) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.box = box
	e.rect = geometry.CanvasRectFromBox(box, e.theme.Padding)
}

// Rect returns the current drawable area.
func (e *Editor) Rect() geometry.CanvasRect {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rect
}

// Points returns the current control points.
func (e *Editor) Points() curve.List {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.points)
}

// Data returns the current points in external convention.
func (e *Editor) Data() []geometry.Point2D {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.points.ToData()
}

// Disabled reports whether interaction is suppressed.
func (e *Editor) Disabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.disabled
}

func (e *Editor) minSepLocked() float64 {
	return curve.MinSeparation(e.cfg.HandleRadius, e.rect.Width)
}

func (e *Editor) interactiveLocked() bool {
	return !e.closed && !e.disabled
}

// scheduleLocked queues the current list for commit.
func (e *Editor) scheduleLocked() {
	e.committer.Push(e.points.ToData())
}

// emit reports a settled edit. The reported data becomes the editor's
// effective Data, so a host that later sends the previous data again gets a
// rebuild.
func (e *Editor) emit(data []geometry.Point2D) {
	e.emitMu.Lock()
	defer e.emitMu.Unlock()

	e.mu.Lock()
	cb := e.onChange
	closed := e.closed
	if !closed {
		e.data = slices.Clone(data)
	}
	e.mu.Unlock()
	if closed {
		return
	}
	Logger().Info("curve committed", "points", len(data))
	if cb != nil {
		cb(data)
	}
}

// Flush reports a pending edit immediately instead of waiting for the
// debounce window.
func (e *Editor) Flush() {
	e.committer.Flush()
}

// Close ends any drag in progress and cancels a pending commit. Nothing is
// reported after Close returns; a report already under way finishes first,
// so Close must not be called from OnChange.
func (e *Editor) Close() {
	e.emitMu.Lock()
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()
	e.emitMu.Unlock()
	e.capture.Release()
	e.committer.Close()
}
