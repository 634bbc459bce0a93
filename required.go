package apischema

import (
	"context"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/cast"
)

// requiredValidator fails for missing values, empty strings and empty
// collections. Zero numbers and false are present values.
func requiredValidator(_ CanonicalType, config any) (ValidatorFunc, error) {
	required, err := cast.ToBoolE(config)
	if err != nil {
		return nil, err
	}
	return func(_ context.Context, value any, _ Params) error {
		if required && isBlank(value) {
			return validation.ErrRequired
		}
		return nil
	}, nil
}

func isBlank(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func requiredDoc(_ CanonicalType, config any) describer {
	required := cast.ToBool(config)
	return func(name string, parent *openapi3.Schema, _ *openapi3.SchemaRef) error {
		if required {
			parent.Required = append(parent.Required, name)
		}
		return nil
	}
}
