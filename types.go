package apischema

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// Type describes the target type of a property. Use one of the predefined
// types or build one with [NewType].
type Type struct {
	name   string
	oaType string
	oaFmt  string
	castFn func(any) (any, error)
	isFn   func(any) bool
}

// NewType returns a custom Type. castFn converts an arbitrary non-nil value
// into the type and returns an error when it cannot; isFn reports whether a
// non-nil value already belongs to the type.
func NewType(name string, castFn func(any) (any, error), isFn func(any) bool) *Type {
	return &Type{name: name, castFn: castFn, isFn: isFn}
}

// WithOpenAPI sets the OpenAPI type and format used when describing
// properties of t.
func (t *Type) WithOpenAPI(typ, format string) *Type {
	t.oaType = typ
	t.oaFmt = format
	return t
}

// Name returns the type name.
func (t *Type) Name() string { return t.name }

func (t *Type) String() string { return t.name }

// Cast converts v into t. Values that cannot be converted become nil, which
// is a legal value unless a required validator says otherwise.
func (t *Type) Cast(v any) any {
	if v == nil || t.castFn == nil {
		return v
	}
	out, err := t.castFn(v)
	if err != nil {
		return nil
	}
	return out
}

// Is reports whether v belongs to t. nil belongs to every type.
func (t *Type) Is(v any) bool {
	if v == nil || t.isFn == nil {
		return true
	}
	return t.isFn(v)
}

func (*Type) spec() {}

// CanonicalType is the normalized form of a property's type: the element type
// and whether the property holds a slice of it. Type is nil for properties
// declared without one.
type CanonicalType struct {
	Type    *Type
	ArrayOf bool
}

func (c CanonicalType) String() string {
	name := "untyped"
	if c.Type != nil {
		name = c.Type.name
	}
	if c.ArrayOf {
		return "[" + name + "]"
	}
	return name
}

var errUncastable = errors.New("uncastable")

// Predefined types.
var (
	String  = (&Type{name: "string", castFn: castString, isFn: isKind(reflect.String)}).WithOpenAPI("string", "")
	Number  = (&Type{name: "number", castFn: castNumber, isFn: isNumber}).WithOpenAPI("number", "")
	Integer = (&Type{name: "integer", castFn: castInteger, isFn: isInteger}).WithOpenAPI("integer", "int64")
	Boolean = (&Type{name: "boolean", castFn: castBoolean, isFn: isKind(reflect.Bool)}).WithOpenAPI("boolean", "")
	Time    = (&Type{name: "time", castFn: castTime, isFn: isTime}).WithOpenAPI("string", "date-time")
	UUID    = (&Type{name: "uuid", castFn: castUUID, isFn: isUUID}).WithOpenAPI("string", "uuid")
	Object  = (&Type{name: "object", castFn: castObject, isFn: isObject}).WithOpenAPI("object", "")
	Any     = &Type{name: "any"}
)

var typesByName = map[string]*Type{
	"string":  String,
	"number":  Number,
	"float":   Number,
	"integer": Integer,
	"int":     Integer,
	"boolean": Boolean,
	"bool":    Boolean,
	"time":    Time,
	"date":    Time,
	"uuid":    UUID,
	"object":  Object,
	"any":     Any,
}

// TypeByName looks up a predefined type by name (case-insensitive).
func TypeByName(name string) (*Type, bool) {
	t, ok := typesByName[strings.ToLower(strings.TrimSpace(name))]
	return t, ok
}

func isKind(k reflect.Kind) func(any) bool {
	return func(v any) bool {
		return reflect.ValueOf(v).Kind() == k
	}
}

func isNumber(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isInteger(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == math.Trunc(f) && !math.IsInf(f, 0)
	}
	return false
}

func isTime(v any) bool {
	_, ok := v.(time.Time)
	return ok
}

func isUUID(v any) bool {
	_, ok := v.(uuid.UUID)
	return ok
}

func isObject(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

func castString(v any) (any, error) {
	switch v.(type) {
	case map[string]any, []any:
		return nil, errUncastable
	}
	if u, ok := v.(uuid.UUID); ok {
		return u.String(), nil
	}
	return cast.ToStringE(v)
}

func castNumber(v any) (any, error) {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
		if v == "" {
			return nil, errUncastable
		}
	}
	if _, ok := v.(bool); ok {
		return nil, errUncastable
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errUncastable
	}
	return f, nil
}

func castInteger(v any) (any, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if rv.Uint() > math.MaxInt64 {
			return nil, errUncastable
		}
		return int64(rv.Uint()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	}
	f, err := castNumber(v)
	if err != nil {
		return nil, err
	}
	n := f.(float64)
	if n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
		return nil, errUncastable
	}
	return int64(n), nil
}

func castBoolean(v any) (any, error) {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	return cast.ToBoolE(v)
}

func castTime(v any) (any, error) {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	return cast.ToTimeE(v)
}

func castUUID(v any) (any, error) {
	switch u := v.(type) {
	case uuid.UUID:
		return u, nil
	case string:
		return uuid.Parse(strings.TrimSpace(u))
	case []byte:
		return uuid.FromBytes(u)
	}
	return nil, fmt.Errorf("%w: %T", errUncastable, v)
}

func castObject(v any) (any, error) {
	if m, ok := v.(map[string]any); ok {
		return m, nil
	}
	return nil, errUncastable
}
