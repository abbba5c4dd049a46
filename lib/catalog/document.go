package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk shape of a catalog.
type Document struct {
	Components []Entry `yaml:"components" msgpack:"components" validate:"required,min=1,dive"`
}

// Entry declares one component.
//
// An entry is built from scratch unless it names a parent:
//   - extends: Extend(parent, class, variants), class and variants combine
//   - from: WithVariants(parent, variants), same-named variants replace
//
// In both cases a non-empty element re-types the result with As.
type Entry struct {
	Name        string      `yaml:"name" msgpack:"name" validate:"required,ident"`
	DisplayName string      `yaml:"displayName,omitempty" msgpack:"displayName,omitempty"`
	Element     string      `yaml:"element,omitempty" msgpack:"element,omitempty" validate:"omitempty,element"`
	Class       any         `yaml:"class,omitempty" msgpack:"class,omitempty"`
	Variants    VariantList `yaml:"variants,omitempty" msgpack:"variants,omitempty" validate:"dive"`
	Extends     string      `yaml:"extends,omitempty" msgpack:"extends,omitempty" validate:"omitempty,ident,excluded_with=From"`
	From        string      `yaml:"from,omitempty" msgpack:"from,omitempty" validate:"omitempty,ident"`
}

// Parent returns the entry this one derives from, or "".
func (e Entry) Parent() string {
	if e.Extends != "" {
		return e.Extends
	}
	return e.From
}

// VariantEntry is one named variant class.
type VariantEntry struct {
	Name  string `yaml:"name" msgpack:"name" validate:"required"`
	Class any    `yaml:"class" msgpack:"class"`
}

// VariantList keeps variants in the order they are written.
//
// In YAML it is a mapping of name to class value; the mapping order is
// preserved. A sequence of {name, class} items is accepted as well.
type VariantList []VariantEntry

// UnmarshalYAML decodes a mapping node pair by pair so order survives.
func (v *VariantList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		out := make(VariantList, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			var class any
			if err := value.Decode(&class); err != nil {
				return fmt.Errorf("variant %q: %w", key.Value, err)
			}
			out = append(out, VariantEntry{Name: key.Value, Class: class})
		}
		*v = out
		return nil
	case yaml.SequenceNode:
		var items []VariantEntry
		if err := node.Decode(&items); err != nil {
			return err
		}
		*v = items
		return nil
	}
	return fmt.Errorf("line %d: variants must be a mapping", node.Line)
}

// MarshalYAML writes the list back as an ordered mapping.
func (v VariantList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range v {
		var value yaml.Node
		if err := value.Encode(entry.Class); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: entry.Name},
			&value,
		)
	}
	return node, nil
}
