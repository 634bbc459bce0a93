package apischema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML reads a definition written in YAML:
//
//	name: string
//	tags: [string]
//	age:
//	  type: integer
//	  required: true
//	  min: 0
//	address:
//	  city: string
//
// Scalars are type names (see [TypeByName]), one-element sequences declare
// arrays, and mappings become a [Prop].
func ParseYAML(data []byte) (Definition, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDefinition, err)
	}
	if len(doc.Content) == 0 {
		return nil, definitionError(nil, "empty document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, definitionError(nil, "expected a mapping at line %d", root.Line)
	}

	def := Definition{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i].Value
		spec, err := yamlSpec(root.Content[i+1], Path{key})
		if err != nil {
			return nil, err
		}
		def[key] = spec
	}
	return def, nil
}

func yamlSpec(n *yaml.Node, path Path) (Spec, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return yamlType(n, path)
	case yaml.SequenceNode:
		l := make(List, 0, len(n.Content))
		for i, item := range n.Content {
			s, err := yamlSpec(item, append(path.clone(), fmt.Sprint(i)))
			if err != nil {
				return nil, err
			}
			l = append(l, s)
		}
		return l, nil
	case yaml.MappingNode:
		p := Prop{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, value := n.Content[i].Value, n.Content[i+1]
			switch {
			case key == keyType:
				s, err := yamlSpec(value, path)
				if err != nil {
					return nil, err
				}
				p[key] = s
			case isKeyword(key):
				var config any
				if err := value.Decode(&config); err != nil {
					return nil, definitionError(path, "%s: %v", key, err)
				}
				p[key] = config
			default:
				s, err := yamlSpec(value, append(path.clone(), key))
				if err != nil {
					return nil, err
				}
				p[key] = s
			}
		}
		return p, nil
	case yaml.AliasNode:
		return yamlSpec(n.Alias, path)
	}
	return nil, definitionError(path, "unsupported node at line %d", n.Line)
}

func yamlType(n *yaml.Node, path Path) (*Type, error) {
	t, ok := TypeByName(n.Value)
	if !ok {
		return nil, definitionError(path, "unknown type %q at line %d", n.Value, n.Line)
	}
	return t, nil
}
