package apischema

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	for _, config := range []any{`^[a-z]+$`, regexp.MustCompile(`^[a-z]+$`)} {
		v, err := matchValidator(CanonicalType{Type: String}, config)
		require.NoError(t, err)
		assert.NoError(t, v(context.Background(), "abc", nil))
		assert.NoError(t, v(context.Background(), "", nil))
		assert.EqualError(t, v(context.Background(), "ab1", nil), "must be in a valid format")
	}

	_, err := matchValidator(CanonicalType{Type: String}, "(")
	assert.Error(t, err)
	_, err = matchValidator(CanonicalType{Type: String}, "")
	assert.Error(t, err)
	_, err = matchValidator(CanonicalType{Type: String}, (*regexp.Regexp)(nil))
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		format string
		good   string
		bad    string
	}{
		{"email", "ann@example.com", "ann"},
		{"url", "https://example.com/x", "not a url"},
		{"uuid", "9b2f4c1e-8a57-4d2c-9c55-0f9d8f7c1a11", "9b2f"},
		{"ip", "10.0.0.1", "10.0.0"},
		{"alpha", "abc", "ab1"},
		{"alphanumeric", "ab1", "ab-1"},
		{"hexcolor", "#fff", "#ggg"},
		{"semver", "v1.2.3", "1.2"},
		{"hasalpha", "4 Main St", "1234 5678"},
		{"noncreditcard", "12345", "4111 1111 1111 1111"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			v, err := formatValidator(CanonicalType{Type: String}, tt.format)
			require.NoError(t, err)
			assert.NoError(t, v(context.Background(), tt.good, nil))
			assert.Error(t, v(context.Background(), tt.bad, nil))
		})
	}

	_, err := formatValidator(CanonicalType{Type: String}, "zipcode")
	assert.EqualError(t, err, `unknown format "zipcode"`)
	assert.Contains(t, Formats(), "email")

	v, err := formatValidator(CanonicalType{Type: String}, "hasalpha")
	require.NoError(t, err)
	assert.NoError(t, v(context.Background(), "   ", nil))
	assert.NoError(t, v(context.Background(), "42b", nil))
	assert.EqualError(t, v(context.Background(), "42", nil), "must contain at least one alphabetic character")

	v, err = formatValidator(CanonicalType{Type: String}, "noncreditcard")
	require.NoError(t, err)
	assert.NoError(t, v(context.Background(), "card 4111111111111111", nil))
	assert.NoError(t, v(context.Background(), "411111111111111", nil))
}

func TestDate(t *testing.T) {
	v, err := dateValidator(CanonicalType{Type: String}, "2006-01-02")
	require.NoError(t, err)
	assert.NoError(t, v(context.Background(), "2024-02-29", nil))
	assert.EqualError(t, v(context.Background(), "2024-02-30", nil), "must be a valid date")

	v, err = dateValidator(CanonicalType{Type: String}, true)
	require.NoError(t, err)
	assert.NoError(t, v(context.Background(), "2024-02-29T10:00:00Z", nil))
	assert.Error(t, v(context.Background(), "2024-02-29", nil))

	v, err = dateValidator(CanonicalType{Type: String}, false)
	require.NoError(t, err)
	assert.NoError(t, v(context.Background(), "whenever", nil))
}
