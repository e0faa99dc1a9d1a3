package app

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfeditor/internal/preset"
	"tfeditor/pkg/geometry"
)

func writePreset(t *testing.T, path string, points ...geometry.Point2D) {
	t.Helper()
	p := preset.Default()
	p.Points = points
	require.NoError(t, p.Save(path))
}

func TestPresetWatcherDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.json")
	writePreset(t, path, pt(0, 0), pt(1, 1))

	pw, err := NewPresetWatcher(path, 50*time.Millisecond)
	require.NoError(t, err)
	var calls atomic.Int32
	pw.OnChange(func(p string) {
		assert.Equal(t, pw.Path(), p)
		calls.Add(1)
	})
	pw.Start()
	t.Cleanup(pw.Stop)

	for i := 0; i < 3; i++ {
		writePreset(t, path, pt(0, 0), pt(1, float64(i)/4))
	}

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "a burst of writes reloads once")
}

func TestPresetWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watched.json")
	writePreset(t, path, pt(0, 0), pt(1, 1))

	pw, err := NewPresetWatcher(path, 20*time.Millisecond)
	require.NoError(t, err)
	var calls atomic.Int32
	pw.OnChange(func(string) { calls.Add(1) })
	pw.Start()
	t.Cleanup(pw.Stop)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0644))
	time.Sleep(200 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestWatchPresetReloadsState(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "live.yaml")
	writePreset(t, path, pt(0, 0), pt(1, 1))

	s := NewState()
	require.NoError(t, s.LoadPreset(path))
	var loads atomic.Int32
	s.On(EventPresetLoaded, func(interface{}) { loads.Add(1) })

	pw, err := WatchPreset(s, path, 20*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(pw.Stop)

	writePreset(t, path, pt(0, 0.5), pt(1, 0.5))

	require.Eventually(t, func() bool { return loads.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, []geometry.Point2D{pt(0, 0.5), pt(1, 0.5)}, s.Preset().Points)
}

func TestPresetWatcherStopIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.json")
	writePreset(t, path, pt(0, 0), pt(1, 1))

	pw, err := NewPresetWatcher(path, 0)
	require.NoError(t, err)
	pw.Start()
	pw.Stop()
	pw.Stop()
}
