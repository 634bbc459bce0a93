package apischema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIn(t *testing.T) {
	data := map[string]any{
		"a":    map[string]any{"b": map[string]any{"c": 1}},
		"list": []any{"x", map[string]any{"y": true}},
		"nil":  nil,
		"leaf": "v",
	}

	tests := []struct {
		name  string
		path  Path
		want  any
		found bool
	}{
		{"nested", Path{"a", "b", "c"}, 1, true},
		{"intermediate", Path{"a", "b"}, map[string]any{"c": 1}, true},
		{"slice index", Path{"list", "0"}, "x", true},
		{"through slice", Path{"list", "1", "y"}, true, true},
		{"explicit nil", Path{"nil"}, nil, true},
		{"missing", Path{"nope"}, nil, false},
		{"missing below", Path{"a", "x", "c"}, nil, false},
		{"below leaf", Path{"leaf", "x"}, nil, false},
		{"bad index", Path{"list", "x"}, nil, false},
		{"index out of range", Path{"list", "5"}, nil, false},
		{"negative index", Path{"list", "-1"}, nil, false},
		{"empty path", Path{}, data, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := GetIn(data, tt.path)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}

	_, found := GetIn(nil, Path{"a"})
	assert.False(t, found)
	v, found := GetIn(Params{"x": 1}, Path{"x"})
	assert.True(t, found)
	assert.Equal(t, 1, v)
}

func TestSetIn(t *testing.T) {
	out := map[string]any{}
	SetIn(out, Path{"a", "b"}, 1)
	SetIn(out, Path{"a", "c"}, 2)
	SetIn(out, Path{"top"}, nil)
	SetIn(out, Path{"n", "0"}, "int-like keys make maps")
	SetIn(out, Path{}, "ignored")
	assert.Equal(t, map[string]any{
		"a":   map[string]any{"b": 1, "c": 2},
		"top": nil,
		"n":   map[string]any{"0": "int-like keys make maps"},
	}, out)

	// an existing slice is written in place
	out = map[string]any{"list": []any{"x", map[string]any{}}}
	SetIn(out, Path{"list", "0"}, "y")
	SetIn(out, Path{"list", "1", "k"}, "v")
	assert.Equal(t, map[string]any{"list": []any{"y", map[string]any{"k": "v"}}}, out)

	// a scalar level is replaced by a map
	out = map[string]any{"a": "scalar"}
	SetIn(out, Path{"a", "b"}, 1)
	assert.Equal(t, map[string]any{"a": map[string]any{"b": 1}}, out)
}

func TestSetErrorIn(t *testing.T) {
	errs := ValidationErrors{}
	first, second := errors.New("first"), errors.New("second")
	setErrorIn(errs, Path{"address", "city"}, first)
	setErrorIn(errs, Path{"address", "zip"}, first)
	setErrorIn(errs, Path{"address", "city"}, second)
	setErrorIn(errs, Path{"age"}, first)

	require.Len(t, errs, 2)
	assert.Equal(t, second, ErrorAt(errs, Path{"address", "city"}))
	assert.Equal(t, first, ErrorAt(errs, Path{"address", "zip"}))
	assert.Equal(t, first, ErrorAt(errs, Path{"age"}))
	assert.Nil(t, ErrorAt(errs, Path{"age", "x"}))
	assert.Nil(t, ErrorAt(errs, Path{"missing"}))
	assert.Nil(t, ErrorAt(nil, Path{"age"}))
}

func TestPathString(t *testing.T) {
	assert.Equal(t, "a.b.c", Path{"a", "b", "c"}.String())
	assert.Equal(t, "", Path{}.String())

	p := Path{"a"}
	c := p.clone()
	c[0] = "b"
	assert.Equal(t, "a", p[0])
}
