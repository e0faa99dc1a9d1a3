package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", prefsFile)

	p := LoadFrom(path)
	p.SetColormap("magma")
	p.SetWindow(Window{Width: 1024, Height: 600})
	p.SetDarkMode(false)
	p.SetWatchPreset(true)
	p.SetLastPreset("/data/ct.tf")
	require.NoError(t, p.Save())

	q := LoadFrom(path)
	assert.Equal(t, "magma", q.Colormap())
	assert.Equal(t, Window{Width: 1024, Height: 600}, q.Window())
	assert.False(t, q.DarkMode())
	assert.True(t, q.WatchPreset())
	assert.Equal(t, "/data/ct.tf", q.LastPreset())
	assert.Equal(t, "/data", q.LastDir())
}

func TestDefaults(t *testing.T) {
	p := LoadFrom(filepath.Join(t.TempDir(), "missing.json"))
	assert.Empty(t, p.LastPreset())
	assert.Empty(t, p.Colormap())
	assert.Equal(t, Window{Width: DefaultWindowWidth, Height: DefaultWindowHeight}, p.Window())
	assert.True(t, p.DarkMode())
	assert.False(t, p.WatchPreset())
}

func TestEmptyWindowIgnored(t *testing.T) {
	p := LoadFrom(filepath.Join(t.TempDir(), prefsFile))
	p.SetWindow(Window{Width: 800, Height: 500})
	p.SetWindow(Window{Width: 0, Height: 300})
	assert.Equal(t, Window{Width: 800, Height: 500}, p.Window())
}

func TestWrongTypesFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsFile)
	require.NoError(t, os.WriteFile(path, []byte(`{"theme": "light", "window": "wide", "colormap": 3}`), 0o644))

	p := LoadFrom(path)
	assert.True(t, p.DarkMode())
	assert.Equal(t, Window{Width: DefaultWindowWidth, Height: DefaultWindowHeight}, p.Window())
	assert.Empty(t, p.Colormap())
}

func TestCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsFile)
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o644))

	p := LoadFrom(path)
	assert.Empty(t, p.Colormap())
	assert.Equal(t, path, p.Path())
}
