// Command tfcheck validates a transfer-function preset, runs its points
// through the editor's curve rules and prints the resulting curve as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"tfeditor/internal/curve"
	"tfeditor/internal/preset"
	"tfeditor/pkg/colorutil"
	"tfeditor/pkg/geometry"
)

type report struct {
	Name     string             `json:"name"`
	Colormap string             `json:"colormap"`
	Range    [2]float64         `json:"range"`
	Points   []geometry.Point2D `json:"points"`
	Colors   []pointColor       `json:"colors,omitempty"`
	Changed  bool               `json:"changed"`
}

type pointColor struct {
	X     float64 `json:"x"`
	Color string  `json:"color"`
}

func main() {
	normalize := flag.Bool("normalize", false, "Insert missing anchors instead of moving the end points")
	write := flag.String("w", "", "Write the checked preset to this path")
	colors := flag.Bool("colors", false, "Include the color of every point")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-normalize] [-colors] [-w out.tf] <preset>\n", os.Args[0])
		os.Exit(1)
	}

	p, err := preset.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid preset: %v\n", err)
		os.Exit(1)
	}

	data := p.Points
	if *normalize {
		data = preset.Normalize(data)
	}
	scale, err := colorutil.NewScaleFromColormap(p.Colormap.Entries())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: colormap: %v\n", err)
	}
	points := curve.FromData(data, scale.At)
	if err := points.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Curve rules violated: %v\n", err)
		os.Exit(1)
	}
	checked := points.ToData()

	r := report{
		Name:     p.Name,
		Colormap: p.Colormap.String(),
		Range:    p.Range,
		Points:   checked,
		Changed:  !curve.EqualData(p.Points, checked),
	}
	if *colors {
		for _, q := range points {
			r.Colors = append(r.Colors, pointColor{X: q.X, Color: colorutil.Hex(q.Color)})
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode report: %v\n", err)
		os.Exit(1)
	}

	if *write != "" {
		p.Points = checked
		if err := p.Save(*write); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write preset: %v\n", err)
			os.Exit(1)
		}
	}
}
