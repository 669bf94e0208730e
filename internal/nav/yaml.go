package nav

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseTree decodes a navigation tree from YAML. The document is a mapping
// from top-level key to section; key order is kept.
//
//	learn:
//	  name: Learn
//	  pages:
//	    - name: Intro
//	      link: /intro
func ParseTree(data []byte) (*Tree, error) {
	var t Tree
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decoding navigation tree: %w", err)
	}
	return &t, nil
}

// UnmarshalYAML implements yaml.Unmarshaler, reading the mapping pair by
// pair so insertion order survives.
func (t *Tree) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: navigation tree must be a mapping", value.Line)
	}
	t.Sections = make([]Entry, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key := value.Content[i].Value
		var n Node
		if err := value.Content[i+1].Decode(&n); err != nil {
			return fmt.Errorf("section %q: %w", key, err)
		}
		t.Sections = append(t.Sections, Entry{Key: key, Node: n})
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The node kind is settled here:
// a "pages" key makes a section, otherwise a "link" key makes a leaf. A node
// with neither becomes an empty section and is reported by Lint.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: navigation node must be a mapping", value.Line)
	}

	var (
		name, link        string
		hasLink, hasPages bool
		pages             []Node
	)
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i], value.Content[i+1]
		switch k.Value {
		case "name":
			if err := v.Decode(&name); err != nil {
				return fmt.Errorf("line %d: name: %w", v.Line, err)
			}
		case "link":
			if err := v.Decode(&link); err != nil {
				return fmt.Errorf("line %d: link: %w", v.Line, err)
			}
			hasLink = true
		case "pages":
			hasPages = true
			if v.Tag == "!!null" {
				continue
			}
			if err := v.Decode(&pages); err != nil {
				return err
			}
		}
	}

	switch {
	case hasPages:
		*n = Section(name, pages...)
		n.ambiguous = hasLink
	case hasLink:
		*n = Leaf(name, link)
	default:
		*n = Section(name)
		n.degenerate = true
	}
	return nil
}
