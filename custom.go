package apischema

import (
	"context"
)

// Custom returns a validator that uses f for validation. f sees the value
// only; use a [ValidatorFunc] directly when params or the context matter.
func Custom(f func(any) error) ValidatorFunc {
	return func(_ context.Context, value any, _ Params) error {
		return f(value)
	}
}

// Transform returns a sanitizer that replaces the value with f(value).
func Transform(f func(any) any) SanitizerFunc {
	return func(_ context.Context, value any, _ Params) (any, error) {
		return f(value), nil
	}
}
