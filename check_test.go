package apischema_test

import (
	"testing"

	"github.com/Gobd/apischema"
	"github.com/stretchr/testify/assert"
)

func TestUndeclaredPaths(t *testing.T) {
	s := apischema.NewMust(apischema.Definition{
		"name": apischema.String,
		"meta": apischema.Object,
		"address": apischema.Prop{
			"city": apischema.String,
		},
	})

	missing := s.UndeclaredPaths(map[string]any{
		"name":    "ann",
		"admin":   true,
		"meta":    map[string]any{"anything": "goes"},
		"address": map[string]any{"city": "Oslo", "street": "Main", "geo": map[string]any{"lat": 1}},
		"extra":   map[string]any{"a": 1},
	})
	assert.Equal(t, []apischema.Path{
		{"address", "geo"},
		{"address", "street"},
		{"admin"},
		{"extra"},
	}, missing)

	assert.Equal(t, []apischema.Path{{"address"}}, s.UndeclaredPaths(map[string]any{"name": "ann", "address": "not a map"}))
	assert.Empty(t, s.UndeclaredPaths(map[string]any{"name": "ann", "address": map[string]any{}}))
	assert.Empty(t, s.UndeclaredPaths(nil))
}
