// Command tfrender renders a transfer-function preset to a PNG image.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"strings"

	"tfeditor/internal/editor"
	"tfeditor/internal/preset"
	"tfeditor/internal/render"
	"tfeditor/pkg/geometry"
)

func main() {
	in := flag.String("i", "", "Path to preset (.tf, .json, .yaml)")
	out := flag.String("o", "", "Output PNG path (default: preset name + .png)")
	width := flag.Float64("w", 480, "Canvas width in pixels")
	height := flag.Float64("h", 240, "Canvas height in pixels")
	scale := flag.Float64("scale", 1, "Pixel density")
	themeName := flag.String("theme", "dark", "Theme: dark or light")
	colormap := flag.String("colormap", "", "Override the preset colormap by name")
	flag.Parse()

	var p *preset.File
	if *in == "" {
		p = preset.Default()
	} else {
		var err error
		p, err = preset.Load(*in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load preset: %v\n", err)
			os.Exit(1)
		}
	}
	if *colormap != "" {
		p.Colormap = preset.Colormap{Name: *colormap}
	}

	theme := editor.DarkTheme()
	switch strings.ToLower(*themeName) {
	case "dark":
	case "light":
		theme = editor.LightTheme()
	default:
		fmt.Fprintf(os.Stderr, "Unknown theme %q\n", *themeName)
		os.Exit(1)
	}

	ed := editor.New(editor.Props{
		Data:     p.Points,
		Colormap: p.Colormap.Entries(),
		Range:    p.Range,
	}, editor.WithTheme(theme))
	defer ed.Close()
	ed.Resize(geometry.Box{Width: *width, Height: *height})

	frame := ed.Frame()
	img := render.Image(frame, *scale)

	path := *out
	if path == "" {
		path = p.Name + ".png"
	}
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output: %v\n", err)
		os.Exit(1)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "Failed to encode PNG: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendered %s: %d points, colormap %s, %dx%d px\n",
		path, len(frame.Points), p.Colormap, img.Bounds().Dx(), img.Bounds().Dy())
	fmt.Printf("  value ticks:   %s\n", strings.Join(render.TickLabels(frame.Bottom), " "))
	fmt.Printf("  opacity ticks: %s\n", strings.Join(render.TickLabels(frame.Left), " "))
}
