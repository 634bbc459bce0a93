package openapi

import (
	"errors"

	"github.com/Gobd/apischema"
	"github.com/getkin/kin-openapi/openapi3"
)

// SchemaRef describes s as an OpenAPI object schema.
func SchemaRef(s *apischema.Schema) (*openapi3.SchemaRef, error) {
	if s == nil {
		return nil, errors.New("nil schema")
	}
	return s.OpenAPI()
}
