package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHit(t *testing.T) {
	h := Handle{Center: pt(100, 50), Radius: 6}
	assert.True(t, h.Hit(pt(100, 50)))
	assert.True(t, h.Hit(pt(106, 50)))
	assert.False(t, h.Hit(pt(105, 55)))
}

func TestHandlePressStartsSession(t *testing.T) {
	var moves []PointerEvent
	h := Handle{onChange: func(ev PointerEvent) { moves = append(moves, ev) }}
	var c Capture

	s, handled := h.Press(At(1, 1), ModShift, &c)
	require.True(t, handled)
	require.NotNil(t, s)
	assert.Same(t, s, c.Active())

	s.Step(At(2, 2))
	s.Step(At(3, 3))
	s.End()
	s.Step(At(4, 4))
	s.End()

	assert.Len(t, moves, 2)
	assert.Nil(t, c.Active())
	assert.True(t, s.Ended())
}

func TestHandlePressWithModifierRemoves(t *testing.T) {
	removed := 0
	h := Handle{
		onChange: func(PointerEvent) { t.Fatal("no drag expected") },
		onRemove: func() { removed++ },
	}
	var c Capture

	s, handled := h.Press(At(1, 1).WithModifiers(ModShift|ModControl), ModShift, &c)
	assert.True(t, handled)
	assert.Nil(t, s)
	assert.Equal(t, 1, removed)
	assert.Nil(t, c.Active())
}

func TestHandleIgnoresNonPrimary(t *testing.T) {
	h := Handle{onRemove: func() { t.Fatal("no removal expected") }}
	var c Capture

	ev := At(1, 1).WithModifiers(ModShift)
	ev.Button = ButtonTertiary
	s, handled := h.Press(ev, ModShift, &c)
	assert.False(t, handled)
	assert.Nil(t, s)
}

func TestCaptureBeginEndsPrevious(t *testing.T) {
	var c Capture
	first := c.Begin(func(PointerEvent) { t.Fatal("first session must be ended") })
	second := c.Begin(nil)

	assert.True(t, first.Ended())
	first.Step(At(0, 0))
	first.End()
	assert.Same(t, second, c.Active(), "ending a stale session leaves the new one active")

	c.Release()
	assert.Nil(t, c.Active())
	assert.True(t, second.Ended())
}
