package apischema

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// ServicesParam is the params key the "service" sanitizer reads its
// [ServiceProvider] from.
const ServicesParam = "services"

// Service looks up records by id.
type Service interface {
	// FindIDs returns the subset of ids that exist, in any order.
	FindIDs(ctx context.Context, ids []any) ([]any, error)
}

// ServiceProvider resolves services by name.
type ServiceProvider interface {
	Service(name string) (Service, bool)
}

// ServiceMap is a ServiceProvider backed by a map.
type ServiceMap map[string]Service

func (m ServiceMap) Service(name string) (Service, bool) {
	s, ok := m[name]
	return s, ok
}

// serviceSanitizer keeps only the ids the named service knows about. Without
// a provider in params, or for nil values, the input passes unchanged.
func serviceSanitizer(t CanonicalType, config any) (SanitizerFunc, error) {
	name, err := cast.ToStringE(config)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errors.New("service name is required")
	}

	return func(ctx context.Context, value any, params Params) (any, error) {
		if value == nil {
			return nil, nil
		}
		provider, ok := params[ServicesParam].(ServiceProvider)
		if !ok {
			return value, nil
		}
		service, ok := provider.Service(name)
		if !ok {
			return nil, fmt.Errorf("service %q is not registered", name)
		}

		ids := toSlice(value)
		found, err := service.FindIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("service %q: %w", name, err)
		}
		all := make([]any, len(found))
		for i := range found {
			all[i] = castTo(CanonicalType{Type: t.Type}, found[i])
		}

		output := make([]any, 0, len(ids))
		for _, id := range ids {
			i := indexOf(id, all)
			if i < 0 {
				continue
			}
			// each found record matches one input id at most
			all = append(all[:i], all[i+1:]...)
			output = append(output, id)
		}

		if t.ArrayOf {
			return output, nil
		}
		return fromSlice(output), nil
	}, nil
}

func indexOf(id any, all []any) int {
	for i := range all {
		if reflect.DeepEqual(id, all[i]) {
			return i
		}
	}
	return -1
}
