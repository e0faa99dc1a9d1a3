// Package prefs provides JSON-based application preferences.
package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

const prefsFile = "preferences.json"

// Default window size in fyne units.
const (
	DefaultWindowWidth  = 720
	DefaultWindowHeight = 420
)

// Theme names stored in the preferences file.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Window is the remembered main window size.
type Window struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// settings is the on-disk layout.
type settings struct {
	LastPreset  string  `json:"last_preset,omitempty"`
	LastDir     string  `json:"last_dir,omitempty"`
	Colormap    string  `json:"colormap,omitempty"`
	Theme       string  `json:"theme,omitempty"`
	WatchPreset bool    `json:"watch_preset,omitempty"`
	Window      *Window `json:"window,omitempty"`
}

// Prefs holds the editor's remembered settings.
type Prefs struct {
	mu   sync.RWMutex
	s    settings
	path string
}

// Load reads preferences from ~/.config/tf-editor/preferences.json.
// Returns a Prefs with defaults if the file doesn't exist.
func Load() *Prefs {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return LoadFrom(filepath.Join(configDir, "tf-editor", prefsFile))
}

// LoadFrom reads preferences from an explicit file. A file that does not
// decode cleanly is ignored as a whole.
func LoadFrom(path string) *Prefs {
	p := &Prefs{path: path}
	data, err := os.ReadFile(p.path)
	if err != nil {
		return p
	}
	var s settings
	if err := json.Unmarshal(data, &s); err != nil {
		return p
	}
	p.s = s
	return p
}

// Path returns the file the preferences are saved to.
func (p *Prefs) Path() string {
	return p.path
}

// Save writes preferences to disk.
func (p *Prefs) Save() error {
	p.mu.RLock()
	data, err := json.MarshalIndent(p.s, "", "  ")
	p.mu.RUnlock()
	if err != nil {
		return err
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o644)
}

// Window returns the remembered window size, or the default size.
func (p *Prefs) Window() Window {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if w := p.s.Window; w != nil && w.Width > 0 && w.Height > 0 {
		return *w
	}
	return Window{Width: DefaultWindowWidth, Height: DefaultWindowHeight}
}

// SetWindow remembers the window size. Empty sizes are ignored.
func (p *Prefs) SetWindow(w Window) {
	if w.Width <= 0 || w.Height <= 0 {
		return
	}
	p.mu.Lock()
	p.s.Window = &w
	p.mu.Unlock()
}

// DarkMode reports whether the dark theme is selected. Dark is the default.
func (p *Prefs) DarkMode() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.s.Theme != ThemeLight
}

// SetDarkMode selects the dark or light theme.
func (p *Prefs) SetDarkMode(dark bool) {
	p.mu.Lock()
	p.s.Theme = ThemeLight
	if dark {
		p.s.Theme = ThemeDark
	}
	p.mu.Unlock()
}

// LastPreset returns the most recently opened or saved preset.
func (p *Prefs) LastPreset() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.s.LastPreset
}

// SetLastPreset remembers a preset path and its directory.
func (p *Prefs) SetLastPreset(path string) {
	p.mu.Lock()
	p.s.LastPreset = path
	p.s.LastDir = filepath.Dir(path)
	p.mu.Unlock()
}

// LastDir returns the directory file dialogs open in.
func (p *Prefs) LastDir() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.s.LastDir
}

// SetLastDir remembers the directory file dialogs open in.
func (p *Prefs) SetLastDir(dir string) {
	p.mu.Lock()
	p.s.LastDir = dir
	p.mu.Unlock()
}

// Colormap returns the last picked named colormap, or "".
func (p *Prefs) Colormap() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.s.Colormap
}

// SetColormap remembers the picked named colormap.
func (p *Prefs) SetColormap(name string) {
	p.mu.Lock()
	p.s.Colormap = name
	p.mu.Unlock()
}

// WatchPreset reports whether the open preset is reloaded on change.
func (p *Prefs) WatchPreset() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.s.WatchPreset
}

// SetWatchPreset turns reload-on-change on or off.
func (p *Prefs) SetWatchPreset(on bool) {
	p.mu.Lock()
	p.s.WatchPreset = on
	p.mu.Unlock()
}
