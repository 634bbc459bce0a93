package apischema

// UndeclaredPaths returns the paths of data that no property covers, in
// sorted order. Sanitize drops exactly these. A path is covered when it is a
// property path or lies below one. An undeclared map is reported once, at
// its own path.
//
// Use in tests to catch payload fields a schema forgot:
//
//	assert.Empty(t, schema.UndeclaredPaths(payload))
func (s *Schema) UndeclaredPaths(data map[string]any) []Path {
	var missing []Path
	s.collectUndeclared(data, nil, &missing)
	return missing
}

func (s *Schema) collectUndeclared(level map[string]any, prefix Path, missing *[]Path) {
	for _, key := range sortedKeys(level) {
		path := append(prefix.clone(), key)
		switch {
		case s.covers(path):
		case s.isParent(path):
			if m, ok := level[key].(map[string]any); ok {
				s.collectUndeclared(m, path, missing)
				continue
			}
			*missing = append(*missing, path)
		default:
			*missing = append(*missing, path)
		}
	}
}

// covers reports whether path is a property path or lies below one.
func (s *Schema) covers(path Path) bool {
	for _, p := range s.properties {
		if len(p.path) <= len(path) && hasPrefix(path, p.path) {
			return true
		}
	}
	return false
}

// isParent reports whether some property lies strictly below path.
func (s *Schema) isParent(path Path) bool {
	for _, p := range s.properties {
		if len(p.path) > len(path) && hasPrefix(p.path, path) {
			return true
		}
	}
	return false
}

func hasPrefix(path, prefix Path) bool {
	if len(prefix) > len(path) {
		return false
	}
	for i := range prefix {
		if path[i] != prefix[i] {
			return false
		}
	}
	return true
}
