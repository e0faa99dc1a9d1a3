package colorutil

import (
	"sort"
)

// Named holds the built-in colormaps, each a list of evenly spaced stops.
var Named = map[string][]string{
	"viridis": {
		"#440154", "#482374", "#404387", "#345e8d", "#29788e", "#20908c",
		"#22a784", "#44be70", "#79d151", "#bdde26", "#fde725",
	},
	"plasma": {
		"#0d0887", "#41049d", "#6a00a8", "#8f0da4", "#b12a90", "#cc4778",
		"#e16462", "#f2844b", "#fca636", "#fcce25", "#f0f921",
	},
	"inferno": {
		"#000004", "#160b39", "#420a68", "#6a176e", "#932667", "#bc3754",
		"#dd513a", "#f37819", "#fca50a", "#f6d746", "#fcffa4",
	},
	"magma": {
		"#000004", "#140e36", "#3b0f70", "#641a80", "#8c2981", "#b73779",
		"#de4968", "#f7705c", "#fe9f6d", "#fecf92", "#fcfdbf",
	},
	"grayscale": {"#000000", "#ffffff"},
	"hot":       {"#0b0000", "#ff0000", "#ffff00", "#ffffff"},
	"cool":      {"#00ffff", "#ff00ff"},
}

// DefaultColormap is the name used when nothing else is configured.
const DefaultColormap = "viridis"

// NamedColormap returns a copy of the named colormap.
func NamedColormap(name string) ([]string, bool) {
	stops, ok := Named[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), stops...), true
}

// ColormapNames returns the built-in colormap names in sorted order.
func ColormapNames() []string {
	names := make([]string, 0, len(Named))
	for name := range Named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
