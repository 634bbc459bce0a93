package apischema

import "github.com/getkin/kin-openapi/openapi3"

// StockSanitizer binds a definition keyword to the factory that builds its
// sanitizer.
type StockSanitizer struct {
	Keyword string
	Factory SanitizerFactory
}

// StockValidator binds a definition keyword to the factory that builds its
// validator.
type StockValidator struct {
	Keyword string
	Factory ValidatorFactory
}

// describer documents one keyword of a property on its OpenAPI schema. parent
// is the enclosing object schema and ref the property's own schema.
type describer func(name string, parent *openapi3.Schema, ref *openapi3.SchemaRef) error

// describerFactory builds the describer of a keyword from its configuration.
// Configuration has already been checked by the keyword's function factory.
type describerFactory func(t CanonicalType, config any) describer

// Sanitizers run in this order, stock first, then custom ones.
var stockSanitizers = []StockSanitizer{
	{"type", typeSanitizer},
	{"trim", trimSanitizer},
	{"lowercase", lowercaseSanitizer},
	{"uppercase", uppercaseSanitizer},
	{"default", defaultSanitizer},
	{"service", serviceSanitizer},
}

// Validators run in this order, stock first, then custom ones.
var stockValidators = []StockValidator{
	{"required", requiredValidator},
	{"type", typeValidator},
	{"length", lengthValidator},
	{"min", minValidator},
	{"max", maxValidator},
	{"enum", enumValidator},
	{"match", matchValidator},
	{"format", formatValidator},
	{"date", dateValidator},
	{"unique", uniqueValidator},
	{"keys", keysValidator},
}

var stockDescribers = map[string]describerFactory{
	"required":    requiredDoc,
	"length":      lengthDoc,
	"min":         minDoc,
	"max":         maxDoc,
	"enum":        enumDoc,
	"match":       matchDoc,
	"format":      formatDoc,
	"date":        dateDoc,
	"unique":      uniqueDoc,
	"keys":        keysDoc,
	"default":     defaultDoc,
	"description": descriptionDoc,
	"example":     exampleDoc,
	"deprecated":  deprecatedDoc,
}

// StockSanitizers returns the stock sanitizer registry in application order.
func StockSanitizers() []StockSanitizer {
	return append([]StockSanitizer(nil), stockSanitizers...)
}

// StockValidators returns the stock validator registry in application order.
func StockValidators() []StockValidator {
	return append([]StockValidator(nil), stockValidators...)
}

// isKeyword reports whether key configures a property rather than naming a
// nested one.
func isKeyword(key string) bool {
	switch key {
	case keyType, keyValidates, keyValidate, keySanitizes, keySanitize:
		return true
	}
	if _, ok := stockDescribers[key]; ok {
		return true
	}
	for _, s := range stockSanitizers {
		if s.Keyword == key {
			return true
		}
	}
	for _, v := range stockValidators {
		if v.Keyword == key {
			return true
		}
	}
	return false
}
