package apischema

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

// Schema is a compiled definition: a flat, ordered list of properties plus
// the options it was built with. A Schema is read-only and safe for
// concurrent use.
type Schema struct {
	properties []Property
	opts       options
}

// New compiles def. Top-level keys are compiled in sorted order, nested keys
// likewise, and any definition error aborts construction.
func New(def Definition, opts ...Option) (*Schema, error) {
	if def == nil {
		return nil, fmt.Errorf("%w: schema: definition is nil", ErrDefinition)
	}
	o := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&o); err != nil {
			return nil, fmt.Errorf("%w: schema: %v", ErrDefinition, err)
		}
	}

	c := &compiler{}
	for _, key := range sortedKeys(def) {
		spec := def[key]
		if spec == nil {
			return nil, definitionError(Path{key}, "nil spec")
		}
		if err := c.compile(spec, Path{key}); err != nil {
			return nil, err
		}
	}
	if len(c.properties) == 0 {
		return nil, definitionError(nil, "definition passed with no properties")
	}

	s := &Schema{properties: c.properties, opts: o}
	if e := o.logger.Debug(); e.Enabled() {
		arr := zerolog.Arr()
		for _, p := range s.properties {
			arr.Dict(zerolog.Dict().
				Str("path", p.path.String()).
				Str("notation", p.kind.String()).
				Str("type", p.typ.String()).
				Strs("sanitizers", p.sanitizerKeys).
				Strs("validators", p.validatorKeys))
		}
		e.Int("properties", len(s.properties)).Array("compiled", arr).Msg("schema compiled")
	}
	return s, nil
}

// NewMust is like [New] but panics on error.
func NewMust(def Definition, opts ...Option) *Schema {
	s, err := New(def, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Properties returns the compiled properties in evaluation order.
func (s *Schema) Properties() []Property {
	return append([]Property(nil), s.properties...)
}

// Property returns the compiled property at path.
func (s *Schema) Property(path Path) (Property, bool) {
	for _, p := range s.properties {
		if slices.Equal(p.path, path) {
			return p, true
		}
	}
	return Property{}, false
}

// FillPatchData reports the fillPatchData option.
func (s *Schema) FillPatchData() bool { return s.opts.fillPatchData }

// CanSkipValidation evaluates the canSkipValidation predicate for params.
func (s *Schema) CanSkipValidation(params Params) bool {
	return s.opts.canSkipValidation(params)
}
