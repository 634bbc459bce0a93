package apischema

import (
	"errors"

	"github.com/rs/zerolog"
)

type options struct {
	fillPatchData     bool
	canSkipValidation func(Params) bool
	logger            zerolog.Logger
}

func defaultOptions() options {
	return options{
		canSkipValidation: func(Params) bool { return false },
		logger:            zerolog.Nop(),
	}
}

// Option configures a Schema.
type Option func(*options) error

// WithFillPatchData records whether patch requests should have their missing
// fields filled before validation. The engines only store the flag.
func WithFillPatchData(fill bool) Option {
	return func(o *options) error {
		o.fillPatchData = fill
		return nil
	}
}

// WithSkipValidation is WithCanSkipValidation with a predicate that always
// returns skip.
func WithSkipValidation(skip bool) Option {
	return WithCanSkipValidation(func(Params) bool { return skip })
}

// WithCanSkipValidation stores a predicate telling collaborators whether
// validation may be skipped for a call.
func WithCanSkipValidation(fn func(Params) bool) Option {
	return func(o *options) error {
		if fn == nil {
			return errors.New("canSkipValidation predicate is nil")
		}
		o.canSkipValidation = fn
		return nil
	}
}

// WithLogger sets the logger used for compile and run diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}
