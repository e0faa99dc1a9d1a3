package app

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultReloadDelay is how long the watched file must stay quiet before a
// reload. Editors often write a file in several steps.
const DefaultReloadDelay = 150 * time.Millisecond

// PresetWatcher watches a preset file for changes made outside the
// application and triggers a callback once writes settle.
//
// The containing directory is watched rather than the file itself so that
// editors which save by renaming a temporary file over the original are
// still seen.
type PresetWatcher struct {
	path     string
	delay    time.Duration
	watcher  *fsnotify.Watcher
	stopCh   chan struct{}
	done     chan struct{}
	onChange func(path string) // Called from a background goroutine
	started  atomic.Bool

	mu    sync.Mutex
	timer *time.Timer
}

// NewPresetWatcher creates a watcher for path. A non-positive delay uses
// DefaultReloadDelay.
func NewPresetWatcher(path string, delay time.Duration) (*PresetWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if delay <= 0 {
		delay = DefaultReloadDelay
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch preset: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch preset: %w", err)
	}

	return &PresetWatcher{
		path:    abs,
		delay:   delay,
		watcher: w,
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}, nil
}

// WatchPreset starts a watcher that reloads path into s whenever the file
// changes on disk.
func WatchPreset(s *State, path string, delay time.Duration) (*PresetWatcher, error) {
	pw, err := NewPresetWatcher(path, delay)
	if err != nil {
		return nil, err
	}
	pw.OnChange(func(p string) {
		Logger().Info("preset changed on disk", "path", p)
		if err := s.LoadPreset(p); err != nil {
			Logger().Warn("preset reload failed", "path", p, "err", err)
		}
	})
	pw.Start()
	return pw, nil
}

// OnChange sets the callback to invoke when the file changed. It must be
// set before Start.
func (pw *PresetWatcher) OnChange(callback func(path string)) {
	pw.onChange = callback
}

// Path returns the absolute path being watched.
func (pw *PresetWatcher) Path() string {
	return pw.path
}

// Start begins watching in a background goroutine.
func (pw *PresetWatcher) Start() {
	if pw.started.Swap(true) {
		return
	}
	go pw.watchLoop()
}

// Stop stops the watcher. Pending reloads are dropped.
func (pw *PresetWatcher) Stop() {
	select {
	case <-pw.stopCh:
		return
	default:
	}
	close(pw.stopCh)
	pw.watcher.Close()
	if pw.started.Load() {
		<-pw.done
	}

	pw.mu.Lock()
	if pw.timer != nil {
		pw.timer.Stop()
	}
	pw.mu.Unlock()
}

func (pw *PresetWatcher) watchLoop() {
	defer close(pw.done)
	for {
		select {
		case <-pw.stopCh:
			return
		case ev, ok := <-pw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != pw.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				pw.schedule()
			}
		case err, ok := <-pw.watcher.Errors:
			if !ok {
				return
			}
			Logger().Warn("preset watcher error", "err", err)
		}
	}
}

// schedule restarts the quiet period.
func (pw *PresetWatcher) schedule() {
	pw.mu.Lock()
	defer pw.mu.Unlock()
	if pw.timer != nil {
		pw.timer.Stop()
	}
	pw.timer = time.AfterFunc(pw.delay, pw.fire)
}

func (pw *PresetWatcher) fire() {
	select {
	case <-pw.stopCh:
		return
	default:
	}
	if pw.onChange != nil {
		pw.onChange(pw.path)
	}
}
