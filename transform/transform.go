package transform

import (
	"reflect"
	"strings"
)

// TrimSpace runs [strings.TrimSpace] on every string in v.
func TrimSpace(v any) any {
	return StringFunc(v, strings.TrimSpace)
}

// ToLower runs [strings.ToLower] on every string in v.
func ToLower(v any) any {
	return StringFunc(v, strings.ToLower)
}

// ToUpper runs [strings.ToUpper] on every string in v.
func ToUpper(v any) any {
	return StringFunc(v, strings.ToUpper)
}

// Multi chains fns into one normalizer, applied left to right.
func Multi(fns ...func(any) any) func(any) any {
	return func(v any) any {
		for _, f := range fns {
			v = f(v)
		}
		return v
	}
}

// StringFunc applies f to every string in v, recursing into slices and maps.
// Other values are returned as they are.
func StringFunc(v any, f func(string) string) any { //nolint:revive // reflection walker is inherently complex
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		return f(x)
	case []string:
		out := make([]string, len(x))
		for i := range x {
			out[i] = f(x[i])
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = StringFunc(x[i], f)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = StringFunc(val, f)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		// Named string types keep their type.
		out := reflect.New(rv.Type()).Elem()
		out.SetString(f(rv.String()))
		return out.Interface()
	case reflect.Ptr:
		if !rv.IsNil() && rv.Elem().Kind() == reflect.String {
			s := f(rv.Elem().String())
			return &s
		}
	}
	return v
}
