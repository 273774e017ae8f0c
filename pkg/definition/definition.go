package definition

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition describes one route in declarative form. Exactly one of Path
// or Regex may be set; a definition with neither defaults its path to
// "/" + name at build time.
type Definition struct {
	// Name is the route name, unique across the whole forest.
	Name string `json:"name" yaml:"name"`

	// Path is the path template (Literal or Segment, by content).
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Regex is a regular expression matcher instead of a template.
	Regex string `json:"regex,omitempty" yaml:"regex,omitempty"`

	// Reverse is an assembly template for a Regex definition.
	Reverse string `json:"reverse,omitempty" yaml:"reverse,omitempty"`

	// Defaults are fallback parameter values.
	Defaults map[string]string `json:"defaults,omitempty" yaml:"defaults,omitempty"`

	// Constraints restrict parameters to regular expressions.
	Constraints map[string]string `json:"constraints,omitempty" yaml:"constraints,omitempty"`

	// Children are nested definitions; their paths extend this one's.
	Children Definitions `json:"children,omitempty" yaml:"children,omitempty"`
}

// Validate checks structural rules that the decoders cannot express.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("definition: route name must not be empty")
	}
	if d.Path != "" && d.Regex != "" {
		return fmt.Errorf("definition %q: path and regex are mutually exclusive", d.Name)
	}
	if d.Reverse != "" && d.Regex == "" {
		return fmt.Errorf("definition %q: reverse requires regex", d.Name)
	}
	for i := range d.Children {
		if err := d.Children[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Definitions is an ordered list of definitions. It decodes from both the
// list form and the name-keyed mapping form.
type Definitions []Definition

// UnmarshalYAML accepts a sequence of definitions or a mapping from name
// to definition. Mapping order is preserved as registration order.
func (ds *Definitions) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		out := make(Definitions, 0, len(node.Content))
		for _, item := range node.Content {
			var d Definition
			if err := item.Decode(&d); err != nil {
				return err
			}
			out = append(out, d)
		}
		*ds = out
		return nil

	case yaml.MappingNode:
		out := make(Definitions, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			var name string
			if err := node.Content[i].Decode(&name); err != nil {
				return err
			}
			var d Definition
			if err := node.Content[i+1].Decode(&d); err != nil {
				return err
			}
			d.Name = name
			out = append(out, d)
		}
		*ds = out
		return nil

	default:
		return fmt.Errorf("definition: line %d: expected a sequence or mapping of routes", node.Line)
	}
}

// UnmarshalJSON accepts an array of definitions or an object keyed by name.
// JSON objects are unordered, so the object form registers in sorted name
// order.
func (ds *Definitions) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var out []Definition
		if err := json.Unmarshal(data, &out); err != nil {
			return err
		}
		*ds = out
		return nil
	}

	var byName map[string]Definition
	if err := json.Unmarshal(data, &byName); err != nil {
		return err
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(Definitions, 0, len(byName))
	for _, name := range names {
		d := byName[name]
		d.Name = name
		out = append(out, d)
	}
	*ds = out
	return nil
}

// Validate validates every definition in the list.
func (ds Definitions) Validate() error {
	for i := range ds {
		if err := ds[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ParseYAML decodes a YAML definition document.
func ParseYAML(data []byte) (Definitions, error) {
	var ds Definitions
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("definition: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// ParseJSON decodes a JSON definition document.
func ParseJSON(data []byte) (Definitions, error) {
	var ds Definitions
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("definition: %w", err)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return ds, nil
}

// Parse decodes data, picking the decoder from the document name's
// extension. Unknown extensions fall back to YAML, which is a superset of
// JSON.
func Parse(data []byte, name string) (Definitions, error) {
	if strings.HasSuffix(name, ".json") {
		return ParseJSON(data)
	}
	return ParseYAML(data)
}
