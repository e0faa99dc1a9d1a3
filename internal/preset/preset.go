// Package preset provides transfer-function preset files and persistence.
package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"tfeditor/pkg/colorutil"
	"tfeditor/pkg/geometry"
)

// CurrentVersion is written into every saved preset.
const CurrentVersion = 1

var (
	// ErrUnsupportedFormat is returned for file extensions other than
	// .json, .tf, .yaml and .yml.
	ErrUnsupportedFormat = errors.New("unsupported preset format")
	// ErrInvalidPoints is returned when a preset's points cannot form a curve.
	ErrInvalidPoints = errors.New("invalid preset points")
)

// File represents a transfer-function preset (.tf, .json, .yaml).
type File struct {
	Version  int                `json:"version" yaml:"version"`
	Name     string             `json:"name" yaml:"name"`
	Colormap Colormap           `json:"colormap" yaml:"colormap"`
	Range    [2]float64         `json:"range" yaml:"range,flow"`
	Points   []geometry.Point2D `json:"points" yaml:"points"`
}

// Default returns a linear ramp over [0,1] on the default colormap.
func Default() *File {
	return &File{
		Version:  CurrentVersion,
		Name:     "default",
		Colormap: Colormap{Name: colorutil.DefaultColormap},
		Range:    [2]float64{0, 1},
		Points:   []geometry.Point2D{{X: 0, Y: 0}, {X: 1, Y: 1}},
	}
}

type format int

const (
	formatJSON format = iota
	formatYAML
)

func formatFor(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".tf":
		return formatJSON, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	}
	return 0, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

// Load loads and validates a preset. The format follows the file extension.
func Load(path string) (*File, error) {
	f, err := formatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Decode(data, f == formatYAML)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Decode parses and validates preset content.
func Decode(data []byte, isYAML bool) (*File, error) {
	var p File
	var err error
	if isYAML {
		err = yaml.Unmarshal(data, &p)
	} else {
		err = json.Unmarshal(data, &p)
	}
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Version == 0 {
		p.Version = CurrentVersion
	}
	return &p, nil
}

// Validate checks that the points can form a curve: at least two, each
// inside the unit square.
func (p *File) Validate() error {
	if len(p.Points) < 2 {
		return fmt.Errorf("%w: need at least 2 points, have %d", ErrInvalidPoints, len(p.Points))
	}
	for i, q := range p.Points {
		if math.IsNaN(q.X) || math.IsNaN(q.Y) || q.X < 0 || q.X > 1 || q.Y < 0 || q.Y > 1 {
			return fmt.Errorf("%w: point %d (%g, %g) outside [0,1]", ErrInvalidPoints, i, q.X, q.Y)
		}
	}
	return nil
}

// Save writes the preset to path in the format given by its extension.
func (p *File) Save(path string) error {
	f, err := formatFor(path)
	if err != nil {
		return err
	}
	p.Version = CurrentVersion

	var data []byte
	if f == formatYAML {
		data, err = yaml.Marshal(p)
	} else {
		data, err = json.MarshalIndent(p, "", "  ")
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Normalize returns points sorted by x with every coordinate clamped to
// [0,1]. Missing anchors at x=0 and x=1 are inserted at the height of the
// nearest point. An empty list yields the default ramp.
func Normalize(points []geometry.Point2D) []geometry.Point2D {
	if len(points) == 0 {
		return slices.Clone(Default().Points)
	}
	out := make([]geometry.Point2D, len(points))
	for i, q := range points {
		out[i] = geometry.NewPoint2D(geometry.Clamp01(q.X), geometry.Clamp01(q.Y))
	}
	slices.SortStableFunc(out, func(a, b geometry.Point2D) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		}
		return 0
	})
	if out[0].X != 0 {
		out = slices.Insert(out, 0, geometry.NewPoint2D(0, out[0].Y))
	}
	if last := out[len(out)-1]; last.X != 1 {
		out = append(out, geometry.NewPoint2D(1, last.Y))
	}
	return out
}

// Normalize normalizes the preset's points in place.
func (p *File) Normalize() {
	p.Points = Normalize(p.Points)
}
