package apischema_test

import (
	"strings"
	"testing"

	"github.com/Gobd/apischema"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var describedSchema = apischema.NewMust(apischema.Definition{
	"name": apischema.Prop{
		"type":        apischema.String,
		"required":    true,
		"length":      []any{2, 10},
		"description": "display name",
	},
	"age":   apischema.Prop{"type": apischema.Integer, "min": 0, "max": 130},
	"tags":  apischema.Prop{"type": apischema.List{apischema.String}, "unique": true, "length": 3},
	"role":  apischema.Prop{"type": apischema.String, "enum": []any{"admin", "user"}, "default": "user"},
	"email": apischema.Prop{"type": apischema.String, "format": "email", "deprecated": true},
	"address": apischema.Prop{
		"city": apischema.String,
	},
})

func TestOpenAPI(t *testing.T) {
	ref, err := describedSchema.OpenAPI()
	require.NoError(t, err)
	root := ref.Value
	require.NotNil(t, root)

	assert.True(t, root.Type.Is(openapi3.TypeObject))
	assert.Equal(t, []string{"name"}, root.Required)
	assert.Len(t, root.Properties, 6)

	name := root.Properties["name"].Value
	assert.True(t, name.Type.Is(openapi3.TypeString))
	assert.Equal(t, uint64(2), name.MinLength)
	require.NotNil(t, name.MaxLength)
	assert.Equal(t, uint64(10), *name.MaxLength)
	assert.Equal(t, "display name", name.Description)

	age := root.Properties["age"].Value
	assert.True(t, age.Type.Is(openapi3.TypeInteger))
	assert.Equal(t, "int64", age.Format)
	require.NotNil(t, age.Min)
	require.NotNil(t, age.Max)
	assert.Equal(t, 0.0, *age.Min)
	assert.Equal(t, 130.0, *age.Max)

	tags := root.Properties["tags"].Value
	assert.True(t, tags.Type.Is(openapi3.TypeArray))
	assert.True(t, tags.Items.Value.Type.Is(openapi3.TypeString))
	assert.True(t, tags.UniqueItems)
	require.NotNil(t, tags.MaxItems)
	assert.Equal(t, uint64(3), *tags.MaxItems)

	role := root.Properties["role"].Value
	assert.Equal(t, []any{"admin", "user"}, role.Enum)
	assert.Equal(t, "user", role.Default)

	email := root.Properties["email"].Value
	assert.Equal(t, "email", email.Format)
	assert.True(t, email.Deprecated)
	assert.Equal(t, "must be a valid email address", email.Description)

	address := root.Properties["address"].Value
	assert.True(t, address.Type.Is(openapi3.TypeObject))
	assert.True(t, address.Properties["city"].Value.Type.Is(openapi3.TypeString))
}

func TestOpenAPIArrayConstraintsOnItems(t *testing.T) {
	s := apischema.NewMust(apischema.Definition{
		"scores": apischema.Prop{"type": apischema.List{apischema.Number}, "min": 1, "max": 5, "match": "^\\d$"},
	})
	ref, err := s.OpenAPI()
	require.NoError(t, err)

	scores := ref.Value.Properties["scores"].Value
	assert.Nil(t, scores.Min)
	require.NotNil(t, scores.Items.Value.Min)
	assert.Equal(t, 1.0, *scores.Items.Value.Min)
	assert.Equal(t, 5.0, *scores.Items.Value.Max)
	assert.Equal(t, "^\\d$", scores.Items.Value.Pattern)
}

func TestOpenAPIDate(t *testing.T) {
	s := apischema.NewMust(apischema.Definition{
		"born":    apischema.Prop{"type": apischema.String, "date": "2006-01-02"},
		"seen":    apischema.Prop{"type": apischema.String, "date": true},
		"logged":  apischema.Prop{"type": apischema.String, "date": "02 Jan 06"},
		"ignored": apischema.Prop{"type": apischema.String, "date": false},
	})
	ref, err := s.OpenAPI()
	require.NoError(t, err)

	props := ref.Value.Properties
	assert.Equal(t, "date", props["born"].Value.Format)
	assert.Equal(t, "date-time", props["seen"].Value.Format)
	assert.Equal(t, "layout 02 Jan 06", props["logged"].Value.Description)
	assert.Empty(t, props["ignored"].Value.Format)
}

func TestSummary(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"name", "string, required, length 2..10, display name"},
		{"age", "integer, min 0, max 130"},
		{"tags", "[string], items 0..3, unique"},
		{"role", "string, one of [admin, user], default user"},
		{"email", "string, deprecated, must be a valid email address"},
		{"address.city", "string"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p, ok := describedSchema.Property(strings.Split(tt.path, "."))
			require.True(t, ok)
			got, err := p.Summary()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPropertyLookup(t *testing.T) {
	_, ok := describedSchema.Property(apischema.Path{"address"})
	assert.False(t, ok)

	p, ok := describedSchema.Property(apischema.Path{"address", "city"})
	require.True(t, ok)
	assert.Equal(t, apischema.String, p.Type().Type)
}
