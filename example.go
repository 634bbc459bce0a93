package apischema

import (
	"github.com/getkin/kin-openapi/openapi3"
)

func exampleDoc(_ CanonicalType, config any) describer {
	return func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
		ref.Value.Example = config
		return nil
	}
}
