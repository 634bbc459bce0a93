package apischema

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// keyInRule ensures that the keys of an object are in the allowed values.
type keyInRule struct {
	values []string
}

func newKeyInRule(config any) (keyInRule, error) {
	values, err := cast.ToStringSliceE(config)
	if err != nil {
		return keyInRule{}, err
	}
	if len(values) == 0 {
		return keyInRule{}, errors.New("expected a non-empty list of keys")
	}
	return keyInRule{values: values}, nil
}

func (r keyInRule) Validate(value any) error {
	value, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	valid := map[string]bool{}
	for _, v := range r.values {
		valid[v] = true
	}

	m, ok := value.(map[string]any)
	if !ok {
		b, err := json.Marshal(value)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(b, &m); err != nil {
			return validation.NewError("validation_is_object", "must be an object")
		}
	}

	keys := sortedKeys(m)
	for _, k := range keys {
		if !valid[k] {
			return fmt.Errorf("key '%s' not allowed", k)
		}
	}
	return nil
}

// keysValidator restricts the keys an object value may hold.
func keysValidator(t CanonicalType, config any) (ValidatorFunc, error) {
	r, err := newKeyInRule(config)
	if err != nil {
		return nil, err
	}
	return each(t, r), nil
}

func keysDoc(_ CanonicalType, config any) describer {
	r, _ := newKeyInRule(config)
	values := append([]string(nil), r.values...)
	sort.Strings(values)
	return func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
		appendDescription(ref, fmt.Sprintf("keys must be in (%s)", strings.Join(values, ",")))
		return nil
	}
}
