package apischema

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/spf13/cast"
)

// descriptionDoc appends the "description" keyword to the schema description.
func descriptionDoc(_ CanonicalType, config any) describer {
	desc := cast.ToString(config)
	return func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
		appendDescription(ref, desc)
		return nil
	}
}
