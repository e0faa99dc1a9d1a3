package editor

import (
	"image/color"
	"sync"
	"sync/atomic"

	"tfeditor/pkg/geometry"
)

// Handle is the interaction target drawn for one control point. It knows
// nothing about coordinates beyond its own position; moves are forwarded raw
// to the editor.
type Handle struct {
	ID     string
	Index  int
	Center geometry.Point2D // pixels relative to the canvas origin
	Radius float64
	Color  color.NRGBA
	Anchor bool

	onChange func(PointerEvent)
	onRemove func()
}

// Hit reports whether a canvas-local position lies on the handle.
func (h Handle) Hit(p geometry.Point2D) bool {
	return h.Center.Distance(p) <= h.Radius
}

// Press handles a button press on the handle. A primary press with the
// removal modifier held removes the point and starts nothing. Any other
// primary press captures the pointer until the returned session ends.
// Non-primary presses are ignored and return nil, false.
func (h Handle) Press(ev PointerEvent, removeMod Modifier, c *Capture) (*Session, bool) {
	if ev.Button != ButtonPrimary {
		return nil, false
	}
	if removeMod != 0 && ev.Modifiers&removeMod != 0 {
		if h.onRemove != nil {
			h.onRemove()
		}
		return nil, true
	}
	return c.Begin(h.onChange), true
}

// Capture routes pointer moves to at most one active drag session, the way a
// document-level listener would, regardless of where the pointer is.
type Capture struct {
	mu     sync.Mutex
	active *Session
}

// Session is one captured drag: Begin, any number of Steps, then End.
type Session struct {
	capture *Capture
	onMove  func(PointerEvent)
	ended   atomic.Bool
}

// Begin starts a session, ending any session already in progress.
func (c *Capture) Begin(onMove func(PointerEvent)) *Session {
	s := &Session{capture: c, onMove: onMove}
	c.mu.Lock()
	prev := c.active
	c.active = s
	c.mu.Unlock()
	if prev != nil {
		prev.ended.Store(true)
	}
	return s
}

// Active returns the session in progress, or nil.
func (c *Capture) Active() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Release ends the session in progress, if any.
func (c *Capture) Release() {
	if s := c.Active(); s != nil {
		s.End()
	}
}

// Step delivers a move to the session. Steps after End are dropped.
func (s *Session) Step(ev PointerEvent) {
	if s.ended.Load() || s.onMove == nil {
		return
	}
	s.onMove(ev)
}

// End detaches the session from its capture. It is safe to call repeatedly.
func (s *Session) End() {
	s.ended.Store(true)
	s.capture.mu.Lock()
	if s.capture.active == s {
		s.capture.active = nil
	}
	s.capture.mu.Unlock()
}

// Ended reports whether the session has ended.
func (s *Session) Ended() bool {
	return s.ended.Load()
}
