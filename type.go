package apischema

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// typeSanitizer casts values to the property type. Array properties wrap a
// single value into a slice and cast every element.
func typeSanitizer(t CanonicalType, _ any) (SanitizerFunc, error) {
	return func(_ context.Context, value any, _ Params) (any, error) {
		return castTo(t, value), nil
	}, nil
}

func castTo(t CanonicalType, value any) any {
	if !t.ArrayOf {
		if t.Type == nil {
			return value
		}
		return t.Type.Cast(value)
	}
	if value == nil {
		return nil
	}
	items := toSlice(value)
	if t.Type != nil {
		for i := range items {
			items[i] = t.Type.Cast(items[i])
		}
	}
	return items
}

// typeValidator rejects non-nil values that are not of the property type.
func typeValidator(t CanonicalType, _ any) (ValidatorFunc, error) {
	if t.Type == nil {
		return func(context.Context, any, Params) error { return nil }, nil
	}
	msg := "must be a " + t.Type.name
	if t.ArrayOf {
		msg = fmt.Sprintf("must be an array of %s", t.Type.name)
	}
	errType := validation.NewError("validation_type", msg)
	return each(t, validation.By(func(value any) error {
		if !t.Type.Is(value) {
			return errType
		}
		return nil
	})), nil
}
