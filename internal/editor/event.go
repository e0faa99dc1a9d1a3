package editor

import (
	"tfeditor/pkg/geometry"
)

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonTertiary
)

// Modifier is a bit set of held modifier keys.
type Modifier uint

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// PointerEvent is a press, move or release delivered by the host.
type PointerEvent struct {
	geometry.Pointer
	Button    Button
	Modifiers Modifier
}

// At returns a primary-button event at page position (x, y).
func At(x, y float64) PointerEvent {
	return PointerEvent{Pointer: geometry.Pointer{Page: geometry.NewPoint2D(x, y)}}
}

// WithModifiers returns a copy of ev with the given modifiers held.
func (ev PointerEvent) WithModifiers(m Modifier) PointerEvent {
	ev.Modifiers = m
	return ev
}
