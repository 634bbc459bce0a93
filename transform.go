package apischema

import (
	"context"

	"github.com/Gobd/apischema/transform"
	"github.com/spf13/cast"
)

// stringSanitizer builds the sanitizer of a boolean string transform
// keyword. Slices and maps are copied, never modified in place.
func stringSanitizer(f func(any) any) SanitizerFactory {
	return func(_ CanonicalType, config any) (SanitizerFunc, error) {
		enabled, err := cast.ToBoolE(config)
		if err != nil {
			return nil, err
		}
		return func(_ context.Context, value any, _ Params) (any, error) {
			if !enabled {
				return value, nil
			}
			return f(value), nil
		}, nil
	}
}

var (
	trimSanitizer      = stringSanitizer(transform.TrimSpace)
	lowercaseSanitizer = stringSanitizer(transform.ToLower)
	uppercaseSanitizer = stringSanitizer(transform.ToUpper)
)
