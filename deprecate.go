package apischema

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/spf13/cast"
)

// deprecatedDoc marks the field as deprecated in the schema.
func deprecatedDoc(_ CanonicalType, config any) describer {
	deprecated := cast.ToBool(config)
	return func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
		ref.Value.Deprecated = deprecated
		return nil
	}
}
