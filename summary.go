package apischema

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Summary renders the documented constraints of the property as one line,
// e.g. "number, required, min 0, max 10".
func (p Property) Summary() (string, error) {
	name := p.path[len(p.path)-1]
	parent := openapi3.NewObjectSchema()
	ref := propertySchema(p.typ)

	for _, doc := range p.docs {
		if err := doc(name, parent, ref); err != nil {
			return "", err
		}
	}

	parts := []string{p.typ.String()}
	value := itemSchema(p.typ, ref)

	if len(parent.Required) > 0 {
		parts = append(parts, "required")
	}
	if value.Min != nil {
		parts = append(parts, fmt.Sprintf("min %g", *value.Min))
	}
	if value.Max != nil {
		parts = append(parts, fmt.Sprintf("max %g", *value.Max))
	}
	if ref.Value.MinLength > 0 || ref.Value.MaxLength != nil {
		parts = append(parts, "length "+bounds(ref.Value.MinLength, ref.Value.MaxLength))
	}
	if ref.Value.MinItems > 0 || ref.Value.MaxItems != nil {
		parts = append(parts, "items "+bounds(ref.Value.MinItems, ref.Value.MaxItems))
	}
	if len(value.Enum) > 0 {
		vals := make([]string, len(value.Enum))
		for i, v := range value.Enum {
			vals[i] = fmt.Sprint(v)
		}
		parts = append(parts, "one of ["+strings.Join(vals, ", ")+"]")
	}
	if value.Pattern != "" {
		parts = append(parts, "matches "+value.Pattern)
	}
	if ref.Value.UniqueItems {
		parts = append(parts, "unique")
	}
	if ref.Value.Default != nil {
		parts = append(parts, fmt.Sprintf("default %v", ref.Value.Default))
	}
	if ref.Value.Deprecated {
		parts = append(parts, "deprecated")
	}
	if ref.Value.Description != "" {
		parts = append(parts, ref.Value.Description)
	}

	return strings.Join(parts, ", "), nil
}

func bounds(lo uint64, hi *uint64) string {
	if hi == nil {
		return fmt.Sprintf("%d..", lo)
	}
	return fmt.Sprintf("%d..%d", lo, *hi)
}
