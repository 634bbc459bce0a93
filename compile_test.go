package apischema_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Gobd/apischema"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paths(s *apischema.Schema) []string {
	var out []string
	for _, p := range s.Properties() {
		out = append(out, p.Path().String())
	}
	return out
}

func TestNewNestedGrouping(t *testing.T) {
	s, err := apischema.New(apischema.Definition{
		"address": apischema.Prop{"city": apischema.String, "zip": apischema.String},
	})
	require.NoError(t, err)

	props := s.Properties()
	require.Len(t, props, 2)
	assert.Equal(t, apischema.Path{"address", "city"}, props[0].Path())
	assert.Equal(t, apischema.Path{"address", "zip"}, props[1].Path())
	assert.Equal(t, apischema.CanonicalType{Type: apischema.String}, props[0].Type())
}

func TestNewOrder(t *testing.T) {
	s := apischema.NewMust(apischema.Definition{
		"z": apischema.String,
		"a": apischema.Prop{
			"y": apischema.Number,
			"b": apischema.Prop{"deep": apischema.Boolean},
		},
		"m": apischema.List{apischema.Integer},
	})
	assert.Equal(t, []string{"a.b.deep", "a.y", "m", "z"}, paths(s))
}

func TestNotationEquivalence(t *testing.T) {
	type record struct {
		typ        apischema.CanonicalType
		sanitizers []string
		validators []string
	}
	compile := func(spec apischema.Spec) record {
		s, err := apischema.New(apischema.Definition{"x": spec})
		require.NoError(t, err)
		p, ok := s.Property(apischema.Path{"x"})
		require.True(t, ok)
		return record{p.Type(), p.SanitizerKeys(), p.ValidatorKeys()}
	}

	t.Run("single", func(t *testing.T) {
		bare := compile(apischema.Number)
		assert.Equal(t, bare, compile(apischema.Prop{"type": apischema.Number}))
		assert.Equal(t, bare, compile(apischema.Prop{"type": apischema.CanonicalType{Type: apischema.Number}}))
		assert.Equal(t, []string{"type"}, bare.sanitizers)
		assert.Equal(t, []string{"type"}, bare.validators)
	})

	t.Run("array", func(t *testing.T) {
		wrapped := compile(apischema.List{apischema.String})
		assert.Equal(t, apischema.CanonicalType{Type: apischema.String, ArrayOf: true}, wrapped.typ)
		assert.Equal(t, wrapped, compile(apischema.Prop{"type": apischema.CanonicalType{Type: apischema.String, ArrayOf: true}}))
		assert.Equal(t, wrapped, compile(apischema.Prop{"type": apischema.List{apischema.String}}))
		assert.Equal(t, wrapped, compile(apischema.List{apischema.Prop{"type": apischema.String}}))
	})
}

func TestChainOrder(t *testing.T) {
	noop := apischema.Custom(func(any) error { return nil })
	s := apischema.NewMust(apischema.Definition{
		"x": apischema.Prop{
			"validate":  noop,
			"validates": []apischema.ValidatorFunc{noop, noop},
			"max":       10,
			"required":  true,
			"type":      apischema.Number,
			"default":   1,
			"sanitize":  apischema.Transform(func(v any) any { return v }),
		},
	})
	p := s.Properties()[0]
	assert.Equal(t, []string{"required", "type", "max", "validates", "validates", "validate"}, p.ValidatorKeys())
	assert.Equal(t, []string{"type", "default", "sanitize"}, p.SanitizerKeys())
}

func TestCustomForms(t *testing.T) {
	var seen []string
	fn := func(name string) apischema.ValidatorFunc {
		return func(context.Context, any, apischema.Params) error {
			seen = append(seen, name)
			return nil
		}
	}
	factory := apischema.ValidatorFactory(func(ct apischema.CanonicalType, config any) (apischema.ValidatorFunc, error) {
		assert.Equal(t, apischema.Number, ct.Type)
		assert.Nil(t, config)
		return fn("factory"), nil
	})

	s := apischema.NewMust(apischema.Definition{
		"x": apischema.Prop{
			"type":      apischema.Number,
			"validates": []any{fn("func"), factory, validation.Required},
			"validate":  func(context.Context, any, apischema.Params) error { seen = append(seen, "raw"); return nil },
		},
	})
	errs, err := s.Validate(context.Background(), map[string]any{"x": 1}, nil)
	require.NoError(t, err)
	assert.Nil(t, errs)
	assert.Equal(t, []string{"func", "factory", "raw"}, seen)
}

func TestDefinitionErrors(t *testing.T) {
	tests := []struct {
		name string
		def  apischema.Definition
		msg  string
	}{
		{"two element list", apischema.Definition{"x": apischema.List{apischema.String, apischema.Number}}, "x: arrayOf should contain a single element, got 2"},
		{"empty list", apischema.Definition{"x": apischema.List{}}, "arrayOf should contain a single element, got 0"},
		{"empty prop", apischema.Definition{"x": apischema.Prop{}}, "x: definition passed with no properties"},
		{"nil spec", apischema.Definition{"x": nil}, "x: nil spec"},
		{"nil type", apischema.Definition{"x": (*apischema.Type)(nil)}, "x: nil type"},
		{"nested array of properties", apischema.Definition{"x": apischema.List{apischema.Prop{"a": apischema.String}}}, "nesting arrays of properties not yet implemented"},
		{"unknown key with functions", apischema.Definition{"x": apischema.Prop{"type": apischema.String, "colour": "red"}}, `unknown keyword "colour"`},
		{"keywords mixed with children", apischema.Definition{"x": apischema.Prop{"description": "d", "a": apischema.String}}, "cannot be mixed with nested properties"},
		{"child not a spec", apischema.Definition{"x": apischema.Prop{"a": 5}}, "x.a: unsupported notation int"},
		{"bad type", apischema.Definition{"x": apischema.Prop{"type": "string"}}, "type must be"},
		{"bad list type", apischema.Definition{"x": apischema.Prop{"type": apischema.List{apischema.String, apischema.String}}}, "arrayOf should contain a single element"},
		{"bad stock config", apischema.Definition{"x": apischema.Prop{"type": apischema.String, "required": "maybe"}}, "x: required:"},
		{"bad custom", apischema.Definition{"x": apischema.Prop{"validates": 5}}, "unsupported validator int"},
		{"nested custom list", apischema.Definition{"x": apischema.Prop{"sanitizes": []any{[]any{}}}}, "cannot nest"},
		{"failing factory", apischema.Definition{"x": apischema.Prop{"validates": apischema.ValidatorFactory(func(apischema.CanonicalType, any) (apischema.ValidatorFunc, error) {
			return nil, errors.New("boom")
		})}}, "boom"},
		{"deep error path", apischema.Definition{"a": apischema.Prop{"b": apischema.Prop{"c": apischema.List{}}}}, "a.b.c:"},
		{"empty definition", apischema.Definition{}, "schema: definition passed with no properties"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := apischema.New(tt.def)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, apischema.ErrDefinition)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	_, err := apischema.New(nil)
	assert.ErrorIs(t, err, apischema.ErrDefinition)
	assert.Panics(t, func() { apischema.NewMust(apischema.Definition{"x": apischema.List{}}) })
}

func TestOptions(t *testing.T) {
	s := apischema.NewMust(apischema.Definition{"x": apischema.String})
	assert.False(t, s.FillPatchData())
	assert.False(t, s.CanSkipValidation(nil))

	s = apischema.NewMust(apischema.Definition{"x": apischema.String},
		apischema.WithFillPatchData(true),
		apischema.WithSkipValidation(true),
	)
	assert.True(t, s.FillPatchData())
	assert.True(t, s.CanSkipValidation(nil))

	s = apischema.NewMust(apischema.Definition{"x": apischema.String},
		apischema.WithCanSkipValidation(func(p apischema.Params) bool { return p["internal"] == true }),
	)
	assert.True(t, s.CanSkipValidation(apischema.Params{"internal": true}))
	assert.False(t, s.CanSkipValidation(apischema.Params{}))

	_, err := apischema.New(apischema.Definition{"x": apischema.String}, apischema.WithCanSkipValidation(nil))
	assert.ErrorIs(t, err, apischema.ErrDefinition)
}

func TestPropertiesAreCopies(t *testing.T) {
	s := apischema.NewMust(apischema.Definition{"a": apischema.Prop{"b": apischema.String}})
	props := s.Properties()
	props[0] = apischema.Property{}
	p := s.Properties()[0].Path()
	p[0] = "changed"
	assert.Equal(t, []string{"a.b"}, paths(s))
}

func TestDefinitionNotModified(t *testing.T) {
	inner := apischema.Prop{"type": apischema.List{apischema.String}, "required": true}
	def := apischema.Definition{"x": inner}
	apischema.NewMust(def)
	assert.Equal(t, apischema.List{apischema.String}, inner["type"])
	assert.Len(t, inner, 2)
}
