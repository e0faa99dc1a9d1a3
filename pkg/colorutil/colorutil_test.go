package colorutil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#fff")
	require.NoError(t, err)
	assert.Equal(t, White, ToNRGBA(c))

	c, err = ParseColor("#FF0000")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, ToNRGBA(c))

	c, err = ParseColor("blue")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, ToNRGBA(c))

	_, err = ParseColor("#zzzzzz")
	assert.Error(t, err)
	_, err = ParseColor("not-a-color")
	assert.Error(t, err)
}

func TestParseColormapSkipsInvalid(t *testing.T) {
	colors, err := ParseColormap([]string{"#000", "bogus", "#fff"})
	assert.Error(t, err)
	assert.Len(t, colors, 2)
}

func TestParseColormapEmpty(t *testing.T) {
	_, err := ParseColormap(nil)
	assert.ErrorIs(t, err, ErrEmptyColormap)

	_, err = ParseColormap([]string{"bogus"})
	assert.ErrorIs(t, err, ErrEmptyColormap)
}

func TestScaleEndpointsAndMidpoint(t *testing.T) {
	s, err := NewScaleFromColormap([]string{"#000", "#fff"})
	require.NoError(t, err)

	assert.Equal(t, Black, s.At(0))
	assert.Equal(t, White, s.At(1))
	mid := s.At(0.5)
	assert.InDelta(t, 128, int(mid.R), 1)
	assert.Equal(t, mid.R, mid.G)
	assert.Equal(t, mid.G, mid.B)

	assert.Equal(t, Black, s.At(-1))
	assert.Equal(t, White, s.At(2))
}

func TestScaleEvenlySpacedStops(t *testing.T) {
	s, err := NewScaleFromColormap([]string{"#ff0000", "#00ff00", "#0000ff"})
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 0.5, s.StopOffset(1))
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, s.At(0.5))
	assert.Equal(t, s.Stop(2), s.At(1))
}

func TestScaleSingleStop(t *testing.T) {
	s, err := NewScaleFromColormap([]string{"#336699"})
	require.NoError(t, err)
	assert.Equal(t, s.Stop(0), s.At(0.75))
	assert.Equal(t, 0.0, s.StopOffset(0))
}

func TestScaleEmptyFallsBack(t *testing.T) {
	s := NewScale(nil)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, Black, s.At(0))
	assert.Equal(t, White, s.At(1))
}

func TestNamedColormaps(t *testing.T) {
	for _, name := range ColormapNames() {
		stops, ok := NamedColormap(name)
		require.True(t, ok)
		_, err := ParseColormap(stops)
		assert.NoError(t, err, name)
	}
	_, ok := NamedColormap("missing")
	assert.False(t, ok)
}

func TestWithAlphaAndHex(t *testing.T) {
	c := WithAlpha(color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 255}, 0.5)
	assert.Equal(t, uint8(128), c.A)
	assert.Equal(t, "#123456", Hex(c))
	assert.Equal(t, uint8(0), WithAlpha(c, -1).A)
}
