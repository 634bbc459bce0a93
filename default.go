package apischema

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// defaultValue reads the "default" configuration: a value of the property
// type, or a func(Params) any / func() any computing one per call. For array
// properties a single value is wrapped into a slice, and a slice whose first
// element is a function uses that function.
func defaultValue(t CanonicalType, config any) (func(Params) any, error) {
	if t.ArrayOf {
		if items := toSlice(config); len(items) > 0 {
			if f := defaultFunc(items[0]); f != nil {
				return f, nil
			}
		}
	}
	if f := defaultFunc(config); f != nil {
		return f, nil
	}

	if !t.ArrayOf {
		v, err := castDefault(t, config)
		if err != nil {
			return nil, fmt.Errorf("default value must be a %s", t.Type.name)
		}
		return func(Params) any { return v }, nil
	}

	items := toSlice(config)
	for i, item := range items {
		v, err := castDefault(t, item)
		if err != nil {
			return nil, fmt.Errorf("default value must be an array of %s", t.Type.name)
		}
		items[i] = v
	}
	return func(Params) any { return append([]any(nil), items...) }, nil
}

func defaultFunc(config any) func(Params) any {
	switch f := config.(type) {
	case func(Params) any:
		return f
	case func(map[string]any) any:
		return func(p Params) any { return f(p) }
	case func() any:
		return func(Params) any { return f() }
	}
	return nil
}

func castDefault(t CanonicalType, v any) (any, error) {
	if t.Type == nil || v == nil {
		return v, nil
	}
	if c := t.Type.Cast(v); c != nil && t.Type.Is(c) {
		return c, nil
	}
	return nil, errUncastable
}

// defaultSanitizer replaces nil values and empty arrays with the default.
func defaultSanitizer(t CanonicalType, config any) (SanitizerFunc, error) {
	get, err := defaultValue(t, config)
	if err != nil {
		return nil, err
	}
	return func(_ context.Context, value any, params Params) (any, error) {
		if value == nil {
			return get(params), nil
		}
		if items, ok := asSlice(value); ok && len(items) == 0 {
			return get(params), nil
		}
		return value, nil
	}, nil
}

func defaultDoc(t CanonicalType, config any) describer {
	return func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
		if defaultFunc(config) != nil {
			return nil
		}
		if t.ArrayOf {
			if items := toSlice(config); len(items) > 0 && defaultFunc(items[0]) != nil {
				return nil
			}
		}
		get, err := defaultValue(t, config)
		if err != nil {
			return err
		}
		ref.Value.Default = get(nil)
		return nil
	}
}
