package apischema

import (
	"context"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/cast"
)

// dateLayout reads the layout of the "date" keyword. true selects RFC 3339.
func dateLayout(config any) (string, error) {
	if b, ok := config.(bool); ok {
		if b {
			return time.RFC3339, nil
		}
		return "", nil
	}
	return cast.ToStringE(config)
}

// dateValidator checks that strings parse with the configured layout. It is
// meant for string properties; Time properties are already parsed by "type".
func dateValidator(t CanonicalType, config any) (ValidatorFunc, error) {
	layout, err := dateLayout(config)
	if err != nil {
		return nil, err
	}
	if layout == "" {
		return func(_ context.Context, _ any, _ Params) error { return nil }, nil
	}
	return each(t, validation.Date(layout)), nil
}

func dateDoc(t CanonicalType, config any) describer {
	layout, _ := dateLayout(config)
	return func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
		switch layout {
		case "":
		case time.DateOnly:
			itemSchema(t, ref).Format = "date"
		case time.RFC3339:
			itemSchema(t, ref).Format = "date-time"
		default:
			appendDescription(ref, "layout "+layout)
		}
		return nil
	}
}
