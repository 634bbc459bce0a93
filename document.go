package apischema

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type (
	// Params is the per-call context handed unchanged to every sanitizer and
	// validator. The engines never read or write it.
	Params map[string]any

	// SanitizerFunc transforms a value. Returning an error aborts the whole
	// Sanitize call.
	SanitizerFunc func(ctx context.Context, value any, params Params) (any, error)

	// ValidatorFunc checks a value. A nil return means the value passed. Any
	// other error is recorded as the property's validation failure, except a
	// [validation.InternalError] (see [Fault]) which aborts the Validate call.
	ValidatorFunc func(ctx context.Context, value any, params Params) error

	// SanitizerFactory builds the runtime sanitizer for one property. It is
	// called once at compile time with the property's canonical type and the
	// configuration given for its keyword.
	SanitizerFactory func(t CanonicalType, config any) (SanitizerFunc, error)

	// ValidatorFactory builds the runtime validator for one property.
	ValidatorFactory func(t CanonicalType, config any) (ValidatorFunc, error)
)

// Fault wraps err so that a validator returning it aborts validation instead
// of reporting a failed value. The result is a [validation.InternalError]
// that unwraps to err.
func Fault(err error) error {
	if err == nil {
		return nil
	}
	return fault{err}
}

type fault struct {
	error
}

func (f fault) InternalError() error { return f.error }

func (f fault) Unwrap() error { return f.error }

// isFault reports whether err was produced by [Fault] or is otherwise an ozzo
// internal error.
func isFault(err error) bool {
	var ie validation.InternalError
	return errors.As(err, &ie)
}

// Rule adapts an ozzo-validation rule into a ValidatorFunc.
func Rule(r validation.Rule) ValidatorFunc {
	return func(_ context.Context, value any, _ Params) error {
		return r.Validate(value)
	}
}
