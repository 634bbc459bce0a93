package apischema

import (
	"strconv"
	"strings"
)

// Path addresses a property inside nested data, one key per level.
type Path []string

func (p Path) String() string {
	return strings.Join(p, ".")
}

// clone returns a copy that shares no backing array with p.
func (p Path) clone() Path {
	return append(Path(nil), p...)
}

// GetIn walks path through nested maps and returns the value found there.
// Slices are walked when the segment is an integer index. The second return is
// false as soon as any level is missing; GetIn never panics on absent data.
func GetIn(container any, path Path) (any, bool) {
	current := container
	for _, key := range path {
		switch level := current.(type) {
		case map[string]any:
			v, ok := level[key]
			if !ok {
				return nil, false
			}
			current = v
		case Params:
			v, ok := level[key]
			if !ok {
				return nil, false
			}
			current = v
		case []any:
			i, err := strconv.Atoi(key)
			if err != nil || i < 0 || i >= len(level) {
				return nil, false
			}
			current = level[i]
		default:
			return nil, false
		}
	}
	return current, true
}

// SetIn assigns value at path inside container, creating missing levels.
// Missing levels are always created as map[string]any, even for integer-like
// segments. An existing []any level is written in place when the segment is an
// in-range index; any other non-map level is replaced by a fresh map.
func SetIn(container map[string]any, path Path, value any) {
	if len(path) == 0 {
		return
	}
	level := container
	for i, key := range path[:len(path)-1] {
		switch next := level[key].(type) {
		case map[string]any:
			level = next
		case []any:
			idx, err := strconv.Atoi(path[i+1])
			if err == nil && idx >= 0 && idx < len(next) {
				if i+2 == len(path) {
					next[idx] = value
					return
				}
				m, ok := next[idx].(map[string]any)
				if !ok {
					m = map[string]any{}
					next[idx] = m
				}
				SetIn(m, path[i+2:], value)
				return
			}
			m := map[string]any{}
			level[key] = m
			level = m
		default:
			m := map[string]any{}
			level[key] = m
			level = m
		}
	}
	level[path[len(path)-1]] = value
}

// setErrorIn is SetIn for nested ValidationErrors. A later error at the same
// path replaces the earlier one.
func setErrorIn(errs ValidationErrors, path Path, err error) {
	if len(path) == 0 {
		return
	}
	level := errs
	for _, key := range path[:len(path)-1] {
		next, ok := level[key].(ValidationErrors)
		if !ok {
			next = ValidationErrors{}
			level[key] = next
		}
		level = next
	}
	level[path[len(path)-1]] = err
}
