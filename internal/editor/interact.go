package editor

import (
	"slices"

	"tfeditor/pkg/geometry"
)

// PointerDown handles a button press anywhere in the editor. A press on a
// handle starts a drag or, with the removal modifier, removes the point. A
// primary press on empty canvas adds a point. It reports whether the press
// was consumed.
func (e *Editor) PointerDown(ev PointerEvent) bool {
	e.mu.Lock()
	if !e.interactiveLocked() || e.rect.Empty() {
		e.mu.Unlock()
		return false
	}
	local := e.rect.Local(ev.Pointer)
	handles := e.handlesLocked()
	removeMod := e.cfg.RemoveModifier
	e.mu.Unlock()

	// Later handles are drawn on top, so they win the hit test.
	for i := len(handles) - 1; i >= 0; i-- {
		h := handles[i]
		if !h.Hit(local) {
			continue
		}
		_, handled := h.Press(ev, removeMod, &e.capture)
		if handled {
			Logger().Debug("handle pressed", "index", h.Index, "modifiers", ev.Modifiers)
		}
		return handled
	}

	if ev.Button != ButtonPrimary {
		return false
	}
	_, ok := e.AddPoint(ev)
	return ok
}

// PointerMove forwards a move to the active drag session.
func (e *Editor) PointerMove(ev PointerEvent) bool {
	e.mu.Lock()
	interactive := e.interactiveLocked()
	e.mu.Unlock()
	s := e.capture.Active()
	if s == nil || !interactive {
		return false
	}
	s.Step(ev)
	return true
}

// PointerUp ends the active drag session.
func (e *Editor) PointerUp(PointerEvent) {
	if s := e.capture.Active(); s != nil {
		s.End()
		Logger().Debug("drag ended")
	}
}

// Dragging reports whether a drag session is active.
func (e *Editor) Dragging() bool {
	return e.capture.Active() != nil
}

// AddPoint inserts a point at the event position. The press is rejected when
// it lies outside the canvas or within one handle diameter of an existing
// point's x. It returns the new point's id.
func (e *Editor) AddPoint(ev PointerEvent) (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.interactiveLocked() || e.rect.Empty() {
		return "", false
	}
	if geometry.IsOutsideCanvas(ev.Pointer, e.rect) {
		Logger().Debug("point rejected: outside canvas")
		return "", false
	}
	p := geometry.ToNormalizedCoords(ev.Pointer, e.rect)
	points, i, ok := e.points.Insert(p, e.minSepLocked(), e.scale.At)
	if !ok {
		Logger().Debug("point rejected: too close to neighbor", "x", p.X)
		return "", false
	}
	e.points = points
	e.scheduleLocked()
	Logger().Debug("point added", "index", i, "x", p.X, "y", p.Y)
	return points[i].ID, true
}

// RemovePoint removes the point with the given id. Anchors are never
// removed.
func (e *Editor) RemovePoint(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.interactiveLocked() {
		return false
	}
	i := e.points.IndexOf(id)
	points, ok := e.points.Remove(i)
	if !ok {
		return false
	}
	e.points = points
	delete(e.handlers, id)
	e.scheduleLocked()
	Logger().Debug("point removed", "index", i)
	return true
}

// BeginDrag starts a drag of the point with the given id, as a press on its
// handle would. It returns nil for an unknown id or a disabled editor.
func (e *Editor) BeginDrag(id string) *Session {
	e.mu.Lock()
	if !e.interactiveLocked() || e.points.IndexOf(id) < 0 {
		e.mu.Unlock()
		return nil
	}
	h := e.handlersForLocked(id)
	e.mu.Unlock()
	Logger().Debug("drag started", "id", id)
	return e.capture.Begin(h.change)
}

func (e *Editor) dragTo(id string, ev PointerEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.interactiveLocked() {
		return
	}
	i := e.points.IndexOf(id)
	if i < 0 {
		return
	}
	p := geometry.ToNormalizedCoords(ev.Pointer, e.rect)
	e.points = e.points.Move(i, p, e.minSepLocked(), e.scale.At)
	e.scheduleLocked()
}

// handlersForLocked returns the cached callbacks bound to a point id.
func (e *Editor) handlersForLocked(id string) *handlers {
	if h, ok := e.handlers[id]; ok {
		return h
	}
	h := &handlers{
		change: func(ev PointerEvent) { e.dragTo(id, ev) },
		remove: func() { e.RemovePoint(id) },
	}
	e.handlers[id] = h
	return h
}

func (e *Editor) handlesLocked() []Handle {
	handles := make([]Handle, len(e.points))
	for i, p := range e.points {
		h := e.handlersForLocked(p.ID)
		handles[i] = Handle{
			ID:       p.ID,
			Index:    i,
			Center:   e.rect.ToScreen(p.Pos()),
			Radius:   e.cfg.HandleRadius,
			Color:    p.Color,
			Anchor:   e.points.IsAnchor(i),
			onChange: h.change,
			onRemove: h.remove,
		}
	}
	return handles
}

// Handles returns one handle per point in canvas coordinates.
func (e *Editor) Handles() []Handle {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.handlesLocked())
}

// cachedHandlers returns the number of cached per-point callback sets.
func (e *Editor) cachedHandlers() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handlers)
}
