package apischema

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/cast"
)

// appendDescription adds desc to the schema description, space separated.
func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if desc == "" {
		return
	}
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}

func compilePattern(config any) (*regexp.Regexp, error) {
	switch p := config.(type) {
	case *regexp.Regexp:
		if p == nil {
			return nil, errors.New("nil pattern")
		}
		return p, nil
	}
	s, err := cast.ToStringE(config)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, errors.New("empty pattern")
	}
	return regexp.Compile(s)
}

// matchValidator checks strings against a regular expression given as a
// pattern string or a *regexp.Regexp.
func matchValidator(t CanonicalType, config any) (ValidatorFunc, error) {
	re, err := compilePattern(config)
	if err != nil {
		return nil, err
	}
	return each(t, validation.Match(re)), nil
}

func matchDoc(t CanonicalType, config any) describer {
	re, _ := compilePattern(config)
	return func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
		if re != nil {
			itemSchema(t, ref).Pattern = re.String()
		}
		return nil
	}
}

type stringFormat struct {
	check func(string) bool
	desc  string
}

var stringFormats = map[string]stringFormat{
	"email":         {govalidator.IsEmail, "must be a valid email address"},
	"url":           {govalidator.IsURL, "must be a valid URL"},
	"uuid":          {govalidator.IsUUID, "must be a valid UUID"},
	"ip":            {govalidator.IsIP, "must be a valid IP address"},
	"ipv4":          {govalidator.IsIPv4, "must be a valid IPv4 address"},
	"ipv6":          {govalidator.IsIPv6, "must be a valid IPv6 address"},
	"alpha":         {govalidator.IsAlpha, "must contain English letters only"},
	"alphanumeric":  {govalidator.IsAlphanumeric, "must contain English letters and digits only"},
	"numeric":       {govalidator.IsNumeric, "must contain digits only"},
	"hexcolor":      {govalidator.IsHexcolor, "must be a valid hex color code"},
	"hexadecimal":   {govalidator.IsHexadecimal, "must be a valid hexadecimal number"},
	"base64":        {govalidator.IsBase64, "must be encoded in Base64"},
	"dns":           {govalidator.IsDNSName, "must be a valid DNS name"},
	"host":          {govalidator.IsHost, "must be a valid IP address or DNS name"},
	"mac":           {govalidator.IsMAC, "must be a valid MAC address"},
	"semver":        {govalidator.IsSemver, "must be a valid semantic version"},
	"creditcard":    {govalidator.IsCreditCard, "must be a valid credit card number"},
	"json":          {govalidator.IsJSON, "must be in valid JSON format"},
	"hasalpha":      {hasAlphabetic, "must contain at least one alphabetic character"},
	"noncreditcard": {notCreditCardNumber, "must not be a credit card number"},
}

const creditCardNumberLength = 16

var (
	nonAlphaRegexp = regexp.MustCompile(`[^[:alpha:]]`)
	nonDigitRegexp = regexp.MustCompile(`\D`)
)

// hasAlphabetic reports whether s holds a letter. Blank strings pass.
func hasAlphabetic(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	return nonAlphaRegexp.ReplaceAllString(s, "") != ""
}

// notCreditCardNumber accepts strings with a letter in them, and strings
// whose digits do not count up to a card number.
func notCreditCardNumber(s string) bool {
	if hasAlphabetic(s) {
		return true
	}
	return len(nonDigitRegexp.ReplaceAllString(s, "")) != creditCardNumberLength
}

// Formats returns the names accepted by the "format" keyword, sorted.
func Formats() []string {
	return sortedKeys(stringFormats)
}

func lookupFormat(config any) (string, stringFormat, error) {
	name, err := cast.ToStringE(config)
	if err != nil {
		return "", stringFormat{}, err
	}
	name = strings.ToLower(strings.TrimSpace(name))
	f, ok := stringFormats[name]
	if !ok {
		return "", stringFormat{}, fmt.Errorf("unknown format %q", name)
	}
	return name, f, nil
}

// formatValidator checks strings against one of the govalidator formats.
func formatValidator(t CanonicalType, config any) (ValidatorFunc, error) {
	name, f, err := lookupFormat(config)
	if err != nil {
		return nil, err
	}
	rule := validation.NewStringRuleWithError(f.check, validation.NewError("validation_is_"+name, f.desc))
	return each(t, rule), nil
}

func formatDoc(t CanonicalType, config any) describer {
	name, f, _ := lookupFormat(config)
	return func(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
		s := itemSchema(t, ref)
		if s.Format == "" {
			s.Format = name
		}
		appendDescription(ref, f.desc)
		return nil
	}
}
