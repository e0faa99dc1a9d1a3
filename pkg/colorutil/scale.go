package colorutil

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/interp"
)

// Scale is a continuous [0,1] → color function over evenly spaced stops.
// Channels are interpolated linearly in sRGB.
type Scale struct {
	stops   []colorful.Color
	r, g, b interp.PiecewiseLinear
}

// NewScale builds a scale from the given stops. An empty stop list falls back
// to black→white.
func NewScale(stops []colorful.Color) *Scale {
	if len(stops) == 0 {
		stops = []colorful.Color{{}, {R: 1, G: 1, B: 1}}
	}
	s := &Scale{stops: append([]colorful.Color(nil), stops...)}
	if len(stops) == 1 {
		return s
	}

	n := len(stops)
	xs := make([]float64, n)
	rs := make([]float64, n)
	gs := make([]float64, n)
	bs := make([]float64, n)
	for i, c := range stops {
		xs[i] = float64(i) / float64(n-1)
		rs[i], gs[i], bs[i] = c.R, c.G, c.B
	}
	// xs is strictly increasing with at least two entries, so Fit cannot fail.
	_ = s.r.Fit(xs, rs)
	_ = s.g.Fit(xs, gs)
	_ = s.b.Fit(xs, bs)
	return s
}

// NewScaleFromColormap parses entries and builds a scale. The scale is always
// usable; the error reports entries that were skipped.
func NewScaleFromColormap(entries []string) (*Scale, error) {
	stops, err := ParseColormap(entries)
	return NewScale(stops), err
}

// Len returns the number of stops.
func (s *Scale) Len() int {
	return len(s.stops)
}

// Stop returns stop i as an opaque color.
func (s *Scale) Stop(i int) color.NRGBA {
	return ToNRGBA(s.stops[i])
}

// StopOffset returns the [0,1] position of stop i.
func (s *Scale) StopOffset(i int) float64 {
	if len(s.stops) < 2 {
		return 0
	}
	return float64(i) / float64(len(s.stops)-1)
}

// At samples the scale at t, clamped to [0,1].
func (s *Scale) At(t float64) color.NRGBA {
	if len(s.stops) == 1 {
		return ToNRGBA(s.stops[0])
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return ToNRGBA(colorful.Color{
		R: s.r.Predict(t),
		G: s.g.Predict(t),
		B: s.b.Predict(t),
	})
}
