package preset

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"tfeditor/pkg/colorutil"
)

// Colormap is either the name of a built-in palette or an explicit list of
// colors. On disk it is a string or a list of strings.
type Colormap struct {
	Name   string
	Colors []string
}

// Entries resolves the colormap to its color list. Unknown names resolve to
// nothing, which the color scale treats as black to white.
func (c Colormap) Entries() []string {
	if c.Name != "" {
		entries, _ := colorutil.NamedColormap(c.Name)
		return entries
	}
	return c.Colors
}

// String returns the palette name, or "custom" for explicit lists.
func (c Colormap) String() string {
	if c.Name != "" {
		return c.Name
	}
	return "custom"
}

func (c Colormap) MarshalJSON() ([]byte, error) {
	if c.Name != "" {
		return json.Marshal(c.Name)
	}
	return json.Marshal(c.Colors)
}

func (c *Colormap) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*c = Colormap{Name: name}
		return nil
	}
	var colors []string
	if err := json.Unmarshal(data, &colors); err != nil {
		return fmt.Errorf("colormap: expected a name or a list of colors: %w", err)
	}
	*c = Colormap{Colors: colors}
	return nil
}

func (c Colormap) MarshalYAML() (any, error) {
	if c.Name != "" {
		return c.Name, nil
	}
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, s := range c.Colors {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s, Style: yaml.DoubleQuotedStyle})
	}
	return n, nil
}

func (c *Colormap) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		*c = Colormap{Name: n.Value}
		return nil
	case yaml.SequenceNode:
		var colors []string
		if err := n.Decode(&colors); err != nil {
			return err
		}
		*c = Colormap{Colors: colors}
		return nil
	}
	return fmt.Errorf("colormap: line %d: expected a name or a list of colors", n.Line)
}
