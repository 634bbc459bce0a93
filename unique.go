package apischema

import (
	"context"
	"errors"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/cast"
)

var errNotUnique = validation.NewError("validation_unique", "must not contain duplicates")

// uniqueValidator rejects arrays holding the same element twice.
func uniqueValidator(t CanonicalType, config any) (ValidatorFunc, error) {
	unique, err := cast.ToBoolE(config)
	if err != nil {
		return nil, err
	}
	if unique && !t.ArrayOf {
		return nil, errors.New("only applies to array properties")
	}
	return func(_ context.Context, value any, _ Params) error {
		if !unique || value == nil {
			return nil
		}
		items, ok := asSlice(value)
		if !ok {
			return errNotArray
		}
		if hasDuplicates(items) {
			return errNotUnique
		}
		return nil
	}, nil
}

func hasDuplicates(items []any) bool {
	seen := make(map[any]struct{}, len(items))
	var other []any
	for _, item := range items {
		if item == nil || hashable(reflect.ValueOf(item)) {
			if _, ok := seen[item]; ok {
				return true
			}
			seen[item] = struct{}{}
			continue
		}
		for _, o := range other {
			if reflect.DeepEqual(o, item) {
				return true
			}
		}
		other = append(other, item)
	}
	return false
}

// hashable reports whether v can be a map key without panicking. Arrays,
// structs and interfaces are only as hashable as the values they hold.
func hashable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.Ptr, reflect.Chan, reflect.UnsafePointer:
		return true
	case reflect.Interface:
		return v.IsNil() || hashable(v.Elem())
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !hashable(v.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !hashable(v.Field(i)) {
				return false
			}
		}
		return true
	}
	return false
}

func uniqueDoc(_ CanonicalType, config any) describer {
	unique := cast.ToBool(config)
	return func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
		ref.Value.UniqueItems = unique
		return nil
	}
}
