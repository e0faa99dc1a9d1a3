package axis

// Style is the part of the visual theme that affects tick layout.
type Style struct {
	TickSpacing float64 // minimum pixels between ticks
	Theme       string  // theme variant; a change invalidates cached axes
}

// Axis is a computed axis ready to draw.
type Axis struct {
	Scale Linear
	Ticks []Tick
}

type leftKey struct {
	height float64
	style  Style
}

type bottomKey struct {
	width float64
	rng   [2]float64
	style Style
}

// Cache memoizes the left and bottom axes on their effective inputs so they
// are rebuilt only when the canvas size, the domain range or the theme
// changes.
type Cache struct {
	left      Axis
	leftKey   leftKey
	hasLeft   bool
	bottom    Axis
	bottomKey bottomKey
	hasBottom bool
	builds    int
}

// Left returns the opacity axis: a fixed [0,1] scale drawn bottom to top
// over the canvas height.
func (c *Cache) Left(height float64, style Style) Axis {
	k := leftKey{height: height, style: style}
	if c.hasLeft && c.leftKey == k {
		return c.left
	}
	s := NewLinear(0, 1, height, 0)
	c.left = Axis{Scale: s, Ticks: s.Ticks(TickCount(height, style.TickSpacing))}
	c.leftKey = k
	c.hasLeft = true
	c.builds++
	return c.left
}

// Bottom returns the domain axis: rng mapped across the canvas width.
func (c *Cache) Bottom(width float64, rng [2]float64, style Style) Axis {
	k := bottomKey{width: width, rng: rng, style: style}
	if c.hasBottom && c.bottomKey == k {
		return c.bottom
	}
	s := NewLinear(rng[0], rng[1], 0, width)
	c.bottom = Axis{Scale: s, Ticks: s.Ticks(TickCount(width, style.TickSpacing))}
	c.bottomKey = k
	c.hasBottom = true
	c.builds++
	return c.bottom
}

// Builds returns how many times an axis has been recomputed.
func (c *Cache) Builds() int {
	return c.builds
}
