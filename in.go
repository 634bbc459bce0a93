package apischema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// enumValues reads the allowed values, cast to the property type so that
// they compare equal to sanitized input.
func enumValues(t CanonicalType, config any) ([]any, error) {
	items, ok := asSlice(config)
	if !ok || len(items) == 0 {
		return nil, errors.New("expected a non-empty list of values")
	}
	values := make([]any, len(items))
	for i, item := range items {
		values[i] = item
		if t.Type != nil {
			if values[i] = t.Type.Cast(item); values[i] == nil {
				return nil, fmt.Errorf("value %v is not a %s", item, t.Type.name)
			}
		}
	}
	return values, nil
}

// inRule checks membership in a fixed list of values.
type inRule struct {
	validation.InRule
}

func (r inRule) Validate(value any) error {
	err := r.InRule.Validate(value)
	if err != nil {
		return fmt.Errorf("%s got '%v'", err, value)
	}
	return nil
}

func enumValidator(t CanonicalType, config any) (ValidatorFunc, error) {
	values, err := enumValues(t, config)
	if err != nil {
		return nil, err
	}
	want := make([]string, len(values))
	for i := range values {
		want[i] = fmt.Sprintf("'%v'", values[i])
	}
	rule := inRule{validation.In(values...).Error(fmt.Sprintf("must be one of %s", strings.Join(want, ", ")))}
	return each(t, rule), nil
}

func enumDoc(t CanonicalType, config any) describer {
	values, _ := enumValues(t, config)
	return func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
		itemSchema(t, ref).Enum = values
		return nil
	}
}
