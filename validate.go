package apischema

import (
	"context"
	"fmt"
)

// Validate runs every validator of every property against the raw value at
// its path. Failures are collected into a nested ValidationErrors keyed by
// path, the last failure of a property winning; the map is nil when nothing
// failed. A validator returning a [Fault] aborts the call with that error.
func (s *Schema) Validate(ctx context.Context, data map[string]any, params Params) (ValidationErrors, error) {
	log := s.opts.logger
	var errs ValidationErrors

	for _, p := range s.properties {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		value, _ := GetIn(data, p.path)

		var failure error
		for _, validator := range p.validators {
			err := validator(ctx, value, params)
			if err == nil {
				continue
			}
			if isFault(err) {
				log.Debug().Str("path", p.path.String()).Err(err).Msg("validate aborted")
				return nil, fmt.Errorf("validate %s: %w", p.path, err)
			}
			failure = err
		}

		if failure != nil {
			if errs == nil {
				errs = ValidationErrors{}
			}
			setErrorIn(errs, p.path, failure)
		}
	}

	log.Debug().Int("properties", len(s.properties)).Int("failed", countErrors(errs)).Msg("validated")
	return errs, nil
}

func countErrors(errs ValidationErrors) int {
	n := 0
	for _, err := range errs {
		if nested, ok := err.(ValidationErrors); ok {
			n += countErrors(nested)
			continue
		}
		n++
	}
	return n
}
