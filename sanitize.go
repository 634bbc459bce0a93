package apischema

import (
	"context"
	"fmt"
)

// Sanitize runs every property's sanitizer chain and returns a fresh map
// holding exactly the declared paths. Absent values and empty strings enter
// the chain as nil. data is never modified. A sanitizer error aborts the call
// and no partial output is returned.
func (s *Schema) Sanitize(ctx context.Context, data map[string]any, params Params) (map[string]any, error) {
	log := s.opts.logger
	out := make(map[string]any, len(s.properties))

	for _, p := range s.properties {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		value, ok := GetIn(data, p.path)
		if !ok || value == "" {
			value = nil
		}
		result, err := runChain(ctx, value, params, p.sanitizers)
		if err != nil {
			log.Debug().Str("path", p.path.String()).Err(err).Msg("sanitize aborted")
			return nil, fmt.Errorf("sanitize %s: %w", p.path, err)
		}
		SetIn(out, p.path, result)
	}

	log.Debug().Int("properties", len(s.properties)).Msg("sanitized")
	return out, nil
}
