package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfeditor/internal/preset"
	"tfeditor/pkg/geometry"
)

func pt(x, y float64) geometry.Point2D { return geometry.NewPoint2D(x, y) }

// recorder collects events of one type.
type recorder struct {
	events []interface{}
}

func record(s *State, ev EventType) *recorder {
	r := &recorder{}
	s.On(ev, func(data interface{}) { r.events = append(r.events, data) })
	return r
}

func TestNewStateHoldsDefaultPreset(t *testing.T) {
	s := NewState()
	assert.Equal(t, *preset.Default(), s.Preset())
	assert.False(t, s.IsModified())
	assert.Empty(t, s.Path())
}

func TestSetPoints(t *testing.T) {
	s := NewState()
	committed := record(s, EventCurveCommitted)
	modified := record(s, EventModified)

	points := []geometry.Point2D{pt(0, 0), pt(0.5, 0.25), pt(1, 1)}
	s.SetPoints(points)
	s.SetPoints(points)

	require.Len(t, committed.events, 1, "an unchanged curve is not committed again")
	assert.Equal(t, points, committed.events[0])
	assert.Equal(t, []interface{}{true}, modified.events)
	assert.Equal(t, points, s.Preset().Points)
	assert.True(t, s.IsModified())

	points[1] = pt(0.5, 0.5)
	assert.Equal(t, pt(0.5, 0.25), s.Preset().Points[1], "state keeps its own copy")
}

func TestSetColormapAndRange(t *testing.T) {
	s := NewState()
	colormaps := record(s, EventColormapChanged)
	ranges := record(s, EventRangeChanged)

	s.SetColormap(preset.Colormap{Name: "viridis"})
	assert.Empty(t, colormaps.events, "same colormap")

	s.SetColormap(preset.Colormap{Colors: []string{"#000", "#fff"}})
	s.SetRange([2]float64{0, 1})
	s.SetRange([2]float64{-1, 1})

	assert.Equal(t, []interface{}{preset.Colormap{Colors: []string{"#000", "#fff"}}}, colormaps.events)
	assert.Equal(t, []interface{}{[2]float64{-1, 1}}, ranges.events)

	p := s.Preset()
	assert.Equal(t, "custom", p.Colormap.String())
	assert.Equal(t, [2]float64{-1, 1}, p.Range)
}

func TestSaveAndLoadPreset(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ramp.yaml")

	s := NewState()
	saved := record(s, EventPresetSaved)
	s.SetPoints([]geometry.Point2D{pt(0, 0.5), pt(1, 0.25)})
	s.SetName("ramp")
	require.NoError(t, s.SavePreset(path))

	assert.Equal(t, []interface{}{path}, saved.events)
	assert.False(t, s.IsModified())
	assert.Equal(t, path, s.Path())

	other := NewState()
	loaded := record(other, EventPresetLoaded)
	require.NoError(t, other.LoadPreset(path))

	require.Len(t, loaded.events, 1)
	p := loaded.events[0].(preset.File)
	assert.Equal(t, "ramp", p.Name)
	assert.Equal(t, []geometry.Point2D{pt(0, 0.5), pt(1, 0.25)}, p.Points)
	assert.Equal(t, s.Preset(), other.Preset())
}

func TestLoadPresetFailureKeepsState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"points": []}`), 0644))

	s := NewState()
	loaded := record(s, EventPresetLoaded)
	err := s.LoadPreset(path)

	require.ErrorIs(t, err, preset.ErrInvalidPoints)
	assert.Empty(t, loaded.events)
	assert.Equal(t, *preset.Default(), s.Preset())
}

func TestEditorProps(t *testing.T) {
	s := NewState()
	s.SetRange([2]float64{10, 20})

	var got []geometry.Point2D
	props := s.EditorProps(func(d []geometry.Point2D) { got = d })

	assert.Equal(t, s.Preset().Points, props.Data)
	assert.Equal(t, [2]float64{10, 20}, props.Range)
	assert.NotEmpty(t, props.Colormap)

	props.OnChange([]geometry.Point2D{pt(0, 1), pt(1, 0)})
	assert.Len(t, got, 2)
}

func TestNewPresetResets(t *testing.T) {
	s := NewState()
	s.SetPoints([]geometry.Point2D{pt(0, 1), pt(1, 0)})
	loaded := record(s, EventPresetLoaded)

	s.NewPreset()

	require.Len(t, loaded.events, 1)
	assert.Equal(t, *preset.Default(), loaded.events[0])
	assert.False(t, s.IsModified())
	assert.Empty(t, s.Path())
}
