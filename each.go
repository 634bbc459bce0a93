package apischema

import (
	"context"
	"fmt"
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var errNotArray = validation.NewError("validation_is_array", "must be an array")

// asSlice returns the elements of a slice or array value as []any.
func asSlice(value any) ([]any, bool) {
	if items, ok := value.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items[i] = rv.Index(i).Interface()
		}
		return items, true
	}
	return nil, false
}

// toSlice returns a fresh []any holding the elements of value, or value itself
// as the only element when it is not a slice.
func toSlice(value any) []any {
	if value == nil {
		return []any{}
	}
	items, ok := asSlice(value)
	if !ok {
		return []any{value}
	}
	return append([]any(nil), items...)
}

// fromSlice returns the first element of items, or nil when it is empty.
func fromSlice(items []any) any {
	if len(items) == 0 {
		return nil
	}
	return items[0]
}

// each applies rule to value, or to every element of value when the property
// is an array. Element failures are reported with their index.
func each(t CanonicalType, rule validation.Rule) ValidatorFunc {
	if !t.ArrayOf {
		return Rule(rule)
	}
	return func(_ context.Context, value any, _ Params) error {
		if value == nil {
			return nil
		}
		items, ok := asSlice(value)
		if !ok {
			return errNotArray
		}
		for i, item := range items {
			if err := rule.Validate(item); err != nil {
				return fmt.Errorf("item %d %w", i, err)
			}
		}
		return nil
	}
}
