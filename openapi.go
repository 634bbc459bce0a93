package apischema

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// typeSchema returns the schema of a single value of t.
func typeSchema(t *Type) *openapi3.Schema {
	s := &openapi3.Schema{}
	if t == nil || t.oaType == "" {
		return s
	}
	s.Type = &openapi3.Types{t.oaType}
	s.Format = t.oaFmt
	return s
}

func propertySchema(t CanonicalType) *openapi3.SchemaRef {
	if t.ArrayOf {
		return openapi3.NewSchemaRef("", openapi3.NewArraySchema().WithItems(typeSchema(t.Type)))
	}
	return openapi3.NewSchemaRef("", typeSchema(t.Type))
}

// OpenAPI describes the schema as an OpenAPI object schema. Nested
// properties become nested object schemas.
func (s *Schema) OpenAPI() (*openapi3.SchemaRef, error) {
	root := openapi3.NewObjectSchema()

	for _, p := range s.properties {
		parent := root
		for _, key := range p.path[:len(p.path)-1] {
			child, ok := parent.Properties[key]
			if !ok {
				child = openapi3.NewSchemaRef("", openapi3.NewObjectSchema())
				parent.WithPropertyRef(key, child)
			}
			if child.Value == nil || !child.Value.Type.Is(openapi3.TypeObject) {
				return nil, fmt.Errorf("%s: %s is not an object", p.path, key)
			}
			parent = child.Value
		}

		name := p.path[len(p.path)-1]
		ref := propertySchema(p.typ)
		parent.WithPropertyRef(name, ref)
		for _, doc := range p.docs {
			if err := doc(name, parent, ref); err != nil {
				return nil, fmt.Errorf("%s: %w", p.path, err)
			}
		}
	}

	return openapi3.NewSchemaRef("", root), nil
}
