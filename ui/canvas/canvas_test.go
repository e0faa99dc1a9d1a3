package canvas

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfeditor/internal/commit/committest"
	"tfeditor/internal/editor"
	"tfeditor/pkg/geometry"
)

func newTestCanvas(t *testing.T) *CurveCanvas {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	th := editor.DarkTheme()
	th.Padding = geometry.Padding{}
	ed := editor.New(editor.Props{
		Data:     []geometry.Point2D{{X: 0, Y: 0}, {X: 1, Y: 1}},
		Colormap: []string{"#000", "#fff"},
		Range:    [2]float64{0, 100},
	}, editor.WithTheme(th), editor.WithClock(&committest.Clock{}))
	t.Cleanup(ed.Close)

	c := NewCurveCanvas(ed)
	c.Resize(fyne.NewSize(400, 200))
	return c
}

func mouse(x, y float32, b desktop.MouseButton, m fyne.KeyModifier) *desktop.MouseEvent {
	ev := &desktop.MouseEvent{Button: b, Modifier: m}
	ev.Position = fyne.NewPos(x, y)
	return ev
}

func TestResizeReachesEditor(t *testing.T) {
	c := newTestCanvas(t)
	assert.Equal(t, geometry.CanvasRect{Width: 400, Height: 200}, c.Editor().Rect())
}

func TestAddAndDragPoint(t *testing.T) {
	c := newTestCanvas(t)
	ed := c.Editor()

	c.MouseDown(mouse(200, 50, desktop.MouseButtonPrimary, 0))
	c.MouseUp(mouse(200, 50, desktop.MouseButtonPrimary, 0))
	require.Len(t, ed.Points(), 3)
	assert.False(t, ed.Dragging())

	c.MouseDown(mouse(200, 50, desktop.MouseButtonPrimary, 0))
	require.True(t, ed.Dragging())

	drag := &fyne.DragEvent{}
	drag.Position = fyne.NewPos(300, 100)
	c.Dragged(drag)
	c.DragEnd()

	assert.False(t, ed.Dragging())
	assert.Equal(t, geometry.Point2D{X: 0.75, Y: 0.5}, ed.Data()[1])
}

func TestShiftClickRemovesPoint(t *testing.T) {
	c := newTestCanvas(t)
	ed := c.Editor()

	c.MouseDown(mouse(200, 100, desktop.MouseButtonPrimary, 0))
	require.Len(t, ed.Points(), 3)

	c.MouseDown(mouse(200, 100, desktop.MouseButtonPrimary, fyne.KeyModifierShift))
	assert.Len(t, ed.Points(), 2)
	assert.False(t, ed.Dragging())
}

func TestSecondaryClickDoesNotAdd(t *testing.T) {
	c := newTestCanvas(t)
	c.MouseDown(mouse(200, 100, desktop.MouseButtonSecondary, 0))
	assert.Len(t, c.Editor().Points(), 2)
}

func TestToModifiers(t *testing.T) {
	assert.Equal(t, editor.Modifier(0), toModifiers(0))
	assert.Equal(t, editor.ModShift|editor.ModAlt, toModifiers(fyne.KeyModifierShift|fyne.KeyModifierAlt))
	assert.Equal(t, editor.ModControl|editor.ModSuper, toModifiers(fyne.KeyModifierControl|fyne.KeyModifierSuper))
}

func TestDrawStoresOutput(t *testing.T) {
	c := newTestCanvas(t)
	img := c.draw(800, 400)
	require.NotNil(t, img)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Same(t, img, c.GetRenderedOutput())
}

func TestHoverReadout(t *testing.T) {
	c := newTestCanvas(t)
	var got []Readout
	c.OnHover(func(r Readout) { got = append(got, r) })

	c.MouseMoved(mouse(100, 50, desktop.MouseButtonPrimary, 0))
	c.MouseOut()

	require.Len(t, got, 2)
	assert.True(t, got[0].OK)
	assert.InDelta(t, 25, got[0].Value, 1e-9)
	assert.InDelta(t, 0.75, got[0].Opacity, 1e-9)
	assert.Equal(t, "value 25  opacity 0.75", got[0].String())
	assert.False(t, got[1].OK)
	assert.Empty(t, got[1].String())
}

func TestReadoutOutsideCanvas(t *testing.T) {
	c := newTestCanvas(t)
	assert.False(t, ReadoutAt(c.Editor().Frame(), fyne.NewPos(-5, 10)).OK)
}
