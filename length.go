package apischema

import (
	"errors"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/cast"
)

// parseBounds reads a length configuration: either a maximum, or a [min, max]
// pair where a max of 0 means unbounded.
func parseBounds(config any) (lo, hi int, err error) {
	if items, ok := asSlice(config); ok {
		if len(items) != 2 {
			return 0, 0, errors.New("expected [min, max]")
		}
		if lo, err = cast.ToIntE(items[0]); err != nil {
			return 0, 0, err
		}
		if hi, err = cast.ToIntE(items[1]); err != nil {
			return 0, 0, err
		}
	} else if hi, err = cast.ToIntE(config); err != nil {
		return 0, 0, err
	}
	if lo < 0 || hi < 0 || (hi != 0 && lo > hi) {
		return 0, 0, errors.New("invalid bounds")
	}
	return lo, hi, nil
}

// lengthValidator checks the rune length of strings, or the item count of
// array properties.
func lengthValidator(t CanonicalType, config any) (ValidatorFunc, error) {
	lo, hi, err := parseBounds(config)
	if err != nil {
		return nil, err
	}
	if t.ArrayOf {
		return Rule(validation.Length(lo, hi)), nil
	}
	return Rule(validation.RuneLength(lo, hi)), nil
}

func lengthDoc(t CanonicalType, config any) describer {
	lo, hi, _ := parseBounds(config)
	return func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
		var max *uint64
		if hi > 0 {
			h := uint64(hi)
			max = &h
		}
		if t.ArrayOf {
			ref.Value.MinItems = uint64(lo)
			ref.Value.MaxItems = max
		} else {
			ref.Value.MinLength = uint64(lo)
			ref.Value.MaxLength = max
		}
		return nil
	}
}
