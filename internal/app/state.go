// Package app provides application state, events and preset management.
package app

import (
	"fmt"
	"slices"
	"sync"

	"tfeditor/internal/curve"
	"tfeditor/internal/editor"
	"tfeditor/internal/preset"
	"tfeditor/pkg/geometry"
)

// State holds the application state: the preset being edited and where it
// lives on disk.
type State struct {
	mu sync.RWMutex

	// Preset
	PresetPath string
	Modified   bool
	preset     preset.File

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventPresetLoaded    EventType = iota // data: preset.File
	EventPresetSaved                      // data: path string
	EventCurveCommitted                   // data: []geometry.Point2D
	EventColormapChanged                  // data: preset.Colormap
	EventRangeChanged                     // data: [2]float64
	EventModified                         // data: bool
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a new application state holding the default preset.
func NewState() *State {
	return &State{
		preset:    *preset.Default(),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// SetModified marks the preset as modified and emits an event.
func (s *State) SetModified(modified bool) {
	s.mu.Lock()
	changed := s.Modified != modified
	s.Modified = modified
	s.mu.Unlock()
	if changed {
		s.Emit(EventModified, modified)
	}
}

// IsModified reports whether there are unsaved changes.
func (s *State) IsModified() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Modified
}

// Path returns the path of the current preset, empty if never saved.
func (s *State) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.PresetPath
}

// Preset returns a copy of the current preset.
func (s *State) Preset() preset.File {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

func (s *State) copyLocked() preset.File {
	p := s.preset
	p.Points = slices.Clone(p.Points)
	p.Colormap.Colors = slices.Clone(p.Colormap.Colors)
	return p
}

// EditorProps builds editor props from the current preset. Committed curves
// from the editor should be routed back through SetPoints.
func (s *State) EditorProps(onChange func([]geometry.Point2D)) editor.Props {
	p := s.Preset()
	return editor.Props{
		Data:     p.Points,
		Colormap: p.Colormap.Entries(),
		Range:    p.Range,
		OnChange: onChange,
	}
}

// LoadPreset loads a preset from the specified path and replaces the
// current one.
func (s *State) LoadPreset(path string) error {
	p, err := preset.Load(path)
	if err != nil {
		Logger().Warn("preset load failed", "path", path, "err", err)
		return fmt.Errorf("load preset: %w", err)
	}

	s.mu.Lock()
	s.preset = *p
	s.PresetPath = path
	s.Modified = false
	loaded := s.copyLocked()
	s.mu.Unlock()

	Logger().Info("preset loaded", "path", path, "points", len(p.Points), "colormap", p.Colormap.String())
	s.Emit(EventPresetLoaded, loaded)
	s.Emit(EventModified, false)
	return nil
}

// NewPreset replaces the current preset with the default one. It is
// announced like a load so views reset.
func (s *State) NewPreset() {
	s.mu.Lock()
	s.preset = *preset.Default()
	s.PresetPath = ""
	s.Modified = false
	loaded := s.copyLocked()
	s.mu.Unlock()

	s.Emit(EventPresetLoaded, loaded)
	s.Emit(EventModified, false)
}

// SavePreset saves the current preset to the specified path.
func (s *State) SavePreset(path string) error {
	s.mu.RLock()
	p := s.copyLocked()
	s.mu.RUnlock()

	if err := p.Save(path); err != nil {
		return fmt.Errorf("save preset: %w", err)
	}

	s.mu.Lock()
	s.PresetPath = path
	s.Modified = false
	s.mu.Unlock()

	Logger().Info("preset saved", "path", path)
	s.Emit(EventPresetSaved, path)
	s.Emit(EventModified, false)
	return nil
}

// SetPoints records a committed curve. Curves equal to the current one are
// ignored.
func (s *State) SetPoints(points []geometry.Point2D) {
	s.mu.Lock()
	if curve.EqualData(s.preset.Points, points) {
		s.mu.Unlock()
		return
	}
	s.preset.Points = slices.Clone(points)
	s.mu.Unlock()

	s.SetModified(true)
	s.Emit(EventCurveCommitted, slices.Clone(points))
}

// SetColormap switches the colormap.
func (s *State) SetColormap(cm preset.Colormap) {
	s.mu.Lock()
	if cm.Name == s.preset.Colormap.Name && slices.Equal(cm.Colors, s.preset.Colormap.Colors) {
		s.mu.Unlock()
		return
	}
	s.preset.Colormap = preset.Colormap{Name: cm.Name, Colors: slices.Clone(cm.Colors)}
	s.mu.Unlock()

	s.SetModified(true)
	s.Emit(EventColormapChanged, cm)
}

// SetRange sets the scalar domain shown on the bottom axis.
func (s *State) SetRange(r [2]float64) {
	s.mu.Lock()
	if s.preset.Range == r {
		s.mu.Unlock()
		return
	}
	s.preset.Range = r
	s.mu.Unlock()

	s.SetModified(true)
	s.Emit(EventRangeChanged, r)
}

// SetName renames the preset.
func (s *State) SetName(name string) {
	s.mu.Lock()
	if s.preset.Name == name {
		s.mu.Unlock()
		return
	}
	s.preset.Name = name
	s.mu.Unlock()
	s.SetModified(true)
}
