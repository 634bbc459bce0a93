package apischema

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/cast"
)

var errNotNumber = validation.NewError("validation_is_number", "must be a number")

type thresholdRule struct {
	validation.ThresholdRule
}

// Validate compares numbers and numeric strings against the threshold as
// float64. Empty values pass.
func (r thresholdRule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil || validation.IsEmpty(value) {
		return nil
	}
	f, err := castNumber(value)
	if err != nil {
		return errNotNumber
	}
	return r.ThresholdRule.Validate(f)
}

func threshold(config any, min bool) (thresholdRule, float64, error) {
	f, err := cast.ToFloat64E(config)
	if err != nil {
		return thresholdRule{}, 0, err
	}
	if min {
		return thresholdRule{validation.Min(f)}, f, nil
	}
	return thresholdRule{validation.Max(f)}, f, nil
}

func minValidator(t CanonicalType, config any) (ValidatorFunc, error) {
	r, _, err := threshold(config, true)
	if err != nil {
		return nil, err
	}
	return each(t, r), nil
}

func maxValidator(t CanonicalType, config any) (ValidatorFunc, error) {
	r, _, err := threshold(config, false)
	if err != nil {
		return nil, err
	}
	return each(t, r), nil
}

func minDoc(t CanonicalType, config any) describer {
	_, f, _ := threshold(config, true)
	return func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
		itemSchema(t, ref).Min = &f
		return nil
	}
}

func maxDoc(t CanonicalType, config any) describer {
	_, f, _ := threshold(config, false)
	return func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
		itemSchema(t, ref).Max = &f
		return nil
	}
}

// itemSchema returns the schema constraints of a single value apply to: the
// items schema for array properties, the property schema otherwise.
func itemSchema(t CanonicalType, ref *openapi3.SchemaRef) *openapi3.Schema {
	if t.ArrayOf && ref.Value.Items != nil && ref.Value.Items.Value != nil {
		return ref.Value.Items.Value
	}
	return ref.Value
}
