package apischema

import (
	"context"
	"errors"
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrDefinition is wrapped by every error returned for a malformed schema
// definition.
var ErrDefinition = errors.New("malformed definition")

func definitionError(path Path, format string, args ...any) error {
	where := path.String()
	if where == "" {
		where = "schema"
	}
	return fmt.Errorf("%w: %s: %s", ErrDefinition, where, fmt.Sprintf(format, args...))
}

// Property is one compiled, addressable field of a Schema. It is read-only.
type Property struct {
	path          Path
	kind          nodeKind
	typ           CanonicalType
	sanitizers    []SanitizerFunc
	sanitizerKeys []string
	validators    []ValidatorFunc
	validatorKeys []string
	docs          []describer
}

// Path returns the location of the property.
func (p Property) Path() Path { return p.path.clone() }

// Type returns the canonical type of the property.
func (p Property) Type() CanonicalType { return p.typ }

// SanitizerKeys names the keywords that contributed sanitizers, in chain
// order. Custom sanitizers are named by the keyword they were given under.
func (p Property) SanitizerKeys() []string {
	return append([]string(nil), p.sanitizerKeys...)
}

// ValidatorKeys names the keywords that contributed validators, in chain
// order.
func (p Property) ValidatorKeys() []string {
	return append([]string(nil), p.validatorKeys...)
}

// node is a definition node reduced to the explicit notation.
type node struct {
	kind    nodeKind
	typ     CanonicalType
	props   Prop
	arrayOf bool
}

// normalize reduces any accepted notation of spec to a node whose props hold
// "type" as a CanonicalType when a type was declared. The caller's maps are
// never modified.
func normalize(spec any, path Path) (node, error) {
	n := node{kind: kindExplicit}

	if l, ok := spec.(List); ok {
		if len(l) != 1 {
			return n, definitionError(path, "arrayOf should contain a single element, got %d", len(l))
		}
		n.kind = kindArrayWrapped
		n.arrayOf = true
		spec = l[0]
	}

	switch s := spec.(type) {
	case *Type:
		if s == nil {
			return n, definitionError(path, "nil type")
		}
		if !n.arrayOf {
			n.kind = kindBare
		}
		n.typ = CanonicalType{Type: s, ArrayOf: n.arrayOf}
		n.props = Prop{keyType: n.typ}
		return n, nil
	case Prop:
		n.props = make(Prop, len(s))
		for k, v := range s {
			n.props[k] = v
		}
		n.typ = CanonicalType{ArrayOf: n.arrayOf}
		if raw, ok := s[keyType]; ok {
			ct, err := canonicalType(raw, n.arrayOf, path)
			if err != nil {
				return n, err
			}
			n.typ = ct
			n.props[keyType] = ct
		}
		return n, nil
	}
	return n, definitionError(path, "unsupported notation %T", spec)
}

// canonicalType resolves the value of a "type" keyword.
func canonicalType(raw any, arrayOf bool, path Path) (CanonicalType, error) {
	switch t := raw.(type) {
	case *Type:
		if t != nil {
			return CanonicalType{Type: t, ArrayOf: arrayOf}, nil
		}
	case CanonicalType:
		if t.Type != nil {
			t.ArrayOf = t.ArrayOf || arrayOf
			return t, nil
		}
	case List:
		if len(t) != 1 {
			return CanonicalType{}, definitionError(path, "arrayOf should contain a single element, got %d", len(t))
		}
		if inner, ok := t[0].(*Type); ok && inner != nil {
			return CanonicalType{Type: inner, ArrayOf: true}, nil
		}
	}
	return CanonicalType{}, definitionError(path, "type must be a *Type, a List of one *Type or a CanonicalType, got %T", raw)
}

type compiler struct {
	properties []Property
}

// compile turns the node at path into a property, or recurses into its
// children when it declares no functions.
func (c *compiler) compile(spec any, path Path) error {
	n, err := normalize(spec, path)
	if err != nil {
		return err
	}

	p := Property{path: path.clone(), kind: n.kind, typ: n.typ}

	for _, stock := range stockValidators {
		config, ok := n.props[stock.Keyword]
		if !ok {
			continue
		}
		fn, err := stock.Factory(n.typ, config)
		if err != nil {
			return definitionError(path, "%s: %v", stock.Keyword, err)
		}
		p.validators = append(p.validators, fn)
		p.validatorKeys = append(p.validatorKeys, stock.Keyword)
	}
	for _, key := range []string{keyValidates, keyValidate} {
		raw, ok := n.props[key]
		if !ok {
			continue
		}
		fns, err := customValidators(n.typ, raw)
		if err != nil {
			return definitionError(path, "%s: %v", key, err)
		}
		for _, fn := range fns {
			p.validators = append(p.validators, fn)
			p.validatorKeys = append(p.validatorKeys, key)
		}
	}

	for _, stock := range stockSanitizers {
		config, ok := n.props[stock.Keyword]
		if !ok {
			continue
		}
		fn, err := stock.Factory(n.typ, config)
		if err != nil {
			return definitionError(path, "%s: %v", stock.Keyword, err)
		}
		p.sanitizers = append(p.sanitizers, fn)
		p.sanitizerKeys = append(p.sanitizerKeys, stock.Keyword)
	}
	for _, key := range []string{keySanitizes, keySanitize} {
		raw, ok := n.props[key]
		if !ok {
			continue
		}
		fns, err := customSanitizers(n.typ, raw)
		if err != nil {
			return definitionError(path, "%s: %v", key, err)
		}
		for _, fn := range fns {
			p.sanitizers = append(p.sanitizers, fn)
			p.sanitizerKeys = append(p.sanitizerKeys, key)
		}
	}

	var children, keywords []string
	for key := range n.props {
		if isKeyword(key) {
			keywords = append(keywords, key)
		} else {
			children = append(children, key)
		}
	}
	sort.Strings(children)

	noFuncs := len(p.sanitizers)+len(p.validators) == 0
	switch {
	case noFuncs && len(children) > 0 && n.arrayOf:
		return definitionError(path, "nesting arrays of properties not yet implemented")
	case noFuncs && len(children) > 0:
		if len(keywords) > 0 {
			sort.Strings(keywords)
			return definitionError(path, "keywords %v cannot be mixed with nested properties", keywords)
		}
		for _, key := range children {
			child, ok := n.props[key].(Spec)
			if !ok {
				return definitionError(append(path.clone(), key), "unsupported notation %T", n.props[key])
			}
			if err := c.compile(child, append(path.clone(), key)); err != nil {
				return err
			}
		}
		return nil
	case noFuncs:
		return definitionError(path, "definition passed with no properties")
	case len(children) > 0:
		return definitionError(path, "unknown keyword %q alongside property functions", children[0])
	}

	for _, key := range sortedKeys(n.props) {
		if df, ok := stockDescribers[key]; ok {
			p.docs = append(p.docs, df(n.typ, n.props[key]))
		}
	}

	c.properties = append(c.properties, p)
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// customValidators accepts a ValidatorFunc, a ValidatorFactory, an ozzo
// validation.Rule, or a slice of any of those.
func customValidators(t CanonicalType, raw any) ([]ValidatorFunc, error) {
	switch v := raw.(type) {
	case ValidatorFunc:
		if v != nil {
			return []ValidatorFunc{v}, nil
		}
	case func(context.Context, any, Params) error:
		if v != nil {
			return []ValidatorFunc{v}, nil
		}
	case ValidatorFactory:
		return validatorFromFactory(t, v)
	case func(CanonicalType, any) (ValidatorFunc, error):
		return validatorFromFactory(t, v)
	case validation.Rule:
		if v != nil {
			return []ValidatorFunc{Rule(v)}, nil
		}
	case []ValidatorFunc:
		return flattenCustom(t, len(v), func(i int) any { return v[i] }, customValidators)
	case []validation.Rule:
		return flattenCustom(t, len(v), func(i int) any { return v[i] }, customValidators)
	case []any:
		return flattenCustom(t, len(v), func(i int) any { return v[i] }, customValidators)
	}
	return nil, fmt.Errorf("unsupported validator %T", raw)
}

func validatorFromFactory(t CanonicalType, f ValidatorFactory) ([]ValidatorFunc, error) {
	if f == nil {
		return nil, errors.New("nil validator factory")
	}
	fn, err := f(t, nil)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, errors.New("validator factory returned nil")
	}
	return []ValidatorFunc{fn}, nil
}

// customSanitizers accepts a SanitizerFunc, a SanitizerFactory, or a slice of
// either.
func customSanitizers(t CanonicalType, raw any) ([]SanitizerFunc, error) {
	switch v := raw.(type) {
	case SanitizerFunc:
		if v != nil {
			return []SanitizerFunc{v}, nil
		}
	case func(context.Context, any, Params) (any, error):
		if v != nil {
			return []SanitizerFunc{v}, nil
		}
	case SanitizerFactory:
		return sanitizerFromFactory(t, v)
	case func(CanonicalType, any) (SanitizerFunc, error):
		return sanitizerFromFactory(t, v)
	case []SanitizerFunc:
		return flattenCustom(t, len(v), func(i int) any { return v[i] }, customSanitizers)
	case []any:
		return flattenCustom(t, len(v), func(i int) any { return v[i] }, customSanitizers)
	}
	return nil, fmt.Errorf("unsupported sanitizer %T", raw)
}

func sanitizerFromFactory(t CanonicalType, f SanitizerFactory) ([]SanitizerFunc, error) {
	if f == nil {
		return nil, errors.New("nil sanitizer factory")
	}
	fn, err := f(t, nil)
	if err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, errors.New("sanitizer factory returned nil")
	}
	return []SanitizerFunc{fn}, nil
}

// flattenCustom resolves each element of a custom list. Lists may not nest.
func flattenCustom[F any](t CanonicalType, n int, at func(int) any, resolve func(CanonicalType, any) ([]F, error)) ([]F, error) {
	out := make([]F, 0, n)
	for i := 0; i < n; i++ {
		item := at(i)
		if _, nested := item.([]any); nested {
			return nil, fmt.Errorf("item %d: lists of functions cannot nest", i)
		}
		fns, err := resolve(t, item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, fns...)
	}
	return out, nil
}
