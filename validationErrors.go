package apischema

import validation "github.com/go-ozzo/ozzo-validation/v4"

// ValidationErrors maps property keys to their validation failures. Nested
// properties nest another ValidationErrors under their parent key. It is an
// alias for [validation.Errors] and marshals to JSON as a plain object.
type ValidationErrors = validation.Errors

// ErrorAt returns the failure recorded at path, or nil.
func ErrorAt(errs ValidationErrors, path Path) error {
	if len(errs) == 0 {
		return nil
	}
	var current error = errs
	for _, key := range path {
		level, ok := current.(ValidationErrors)
		if !ok {
			return nil
		}
		current = level[key]
	}
	return current
}
