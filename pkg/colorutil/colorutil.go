// Package colorutil provides colormap parsing and the continuous color scale
// used to color control points and the gradient fill.
package colorutil

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Common colors used by the renderers and themes.
var (
	Black       = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	White       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Transparent = color.NRGBA{}
)

// ErrEmptyColormap is returned when a colormap yields no usable colors.
var ErrEmptyColormap = errors.New("colormap has no valid colors")

// ParseColor parses "#rgb", "#rrggbb" or a CSS color name.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(strings.ToLower(s))
		if err != nil {
			return colorful.Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return c, nil
	}
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		c, _ := colorful.MakeColor(named)
		return c, nil
	}
	return colorful.Color{}, fmt.Errorf("parse color %q: unknown color", s)
}

// ParseColormap parses every entry of a colormap.
//
// Unparsable entries are skipped; their errors are joined into the returned
// error alongside the colors that did parse. ErrEmptyColormap is returned when
// nothing parsed.
func ParseColormap(entries []string) ([]colorful.Color, error) {
	colors := make([]colorful.Color, 0, len(entries))
	var errs []error
	for _, e := range entries {
		c, err := ParseColor(e)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		colors = append(colors, c)
	}
	if len(colors) == 0 {
		return nil, errors.Join(append(errs, ErrEmptyColormap)...)
	}
	return colors, errors.Join(errs...)
}

// ToNRGBA converts a colorful color to an opaque NRGBA.
func ToNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// WithAlpha returns c with its alpha replaced by a in [0,1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c.A = uint8(a*255 + 0.5)
	return c
}

// Hex formats an NRGBA as #rrggbb, ignoring alpha.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
