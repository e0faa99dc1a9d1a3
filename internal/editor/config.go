package editor

import (
	"image/color"
	"time"

	"tfeditor/internal/axis"
	"tfeditor/internal/commit"
	"tfeditor/pkg/geometry"
)

// Config holds the editor's tunables.
type Config struct {
	// HandleRadius is the point handle radius in pixels. Two points may not
	// come closer than one handle diameter.
	HandleRadius float64
	// CommitDelay is the quiet period before an edit is reported.
	CommitDelay time.Duration
	// RemoveModifier turns a press on a handle into a removal.
	RemoveModifier Modifier
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		HandleRadius:   6,
		CommitDelay:    commit.DefaultDelay,
		RemoveModifier: ModShift,
	}
}

// Theme carries the visual tokens the editor and its renderers need.
type Theme struct {
	Name       string
	Dark       bool
	Background color.NRGBA
	Stroke     color.NRGBA // curve, axis lines and handle outlines
	Text       color.NRGBA // tick labels
	// TextSize is the tick label height in pixels.
	TextSize float64
	// Padding is the space reserved around the canvas for the axes.
	Padding geometry.Padding
	// TickSpacing is the minimum distance between axis ticks in pixels.
	TickSpacing float64
	StrokeWidth float64
}

// DarkTheme returns the default dark theme.
func DarkTheme() Theme {
	return Theme{
		Name:        "dark",
		Dark:        true,
		Background:  color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff},
		Stroke:      color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
		Text:        color.NRGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff},
		TextSize:    13,
		Padding:     geometry.Padding{Top: 8, Right: 16, Bottom: 28, Left: 40},
		TickSpacing: 48,
		StrokeWidth: 2,
	}
}

// LightTheme returns the default light theme.
func LightTheme() Theme {
	t := DarkTheme()
	t.Name = "light"
	t.Dark = false
	t.Background = color.NRGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
	t.Stroke = color.NRGBA{R: 0x21, G: 0x21, B: 0x21, A: 0xff}
	t.Text = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	return t
}

func (t Theme) axisStyle() axis.Style {
	return axis.Style{TickSpacing: t.TickSpacing, Theme: t.Name}
}

// Option configures an Editor.
type Option func(*Editor)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(e *Editor) { e.cfg = cfg }
}

// WithTheme sets the initial theme.
func WithTheme(t Theme) Option {
	return func(e *Editor) { e.theme = t }
}

// WithClock sets the clock that drives commit timers.
func WithClock(c commit.Clock) Option {
	return func(e *Editor) { e.clock = c }
}
