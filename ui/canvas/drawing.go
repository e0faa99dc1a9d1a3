package canvas

import (
	"image"

	"tfeditor/internal/render"
)

// draw is the raster drawing function. Raster pixels may be denser than
// widget units on HiDPI screens; the editor works in units, so the frame is
// scaled up to fill the raster.
func (c *CurveCanvas) draw(w, h int) image.Image {
	frame := c.editor.Frame()

	scale := 1.0
	if frame.Box.Width > 0 {
		scale = float64(w) / frame.Box.Width
	}

	output := image.NewRGBA(image.Rect(0, 0, w, h))
	render.DrawFrame(output, frame, scale)

	// Store for sampling
	c.mu.Lock()
	c.lastOutput = output
	c.mu.Unlock()

	return output
}
