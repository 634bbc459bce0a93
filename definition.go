package apischema

// Spec is one node of a schema definition. It is implemented by:
//
//   - *Type: a bare type, e.g. Number
//   - List: a one-element list meaning "array of", e.g. List{String}
//   - Prop: a keyword map such as Prop{"type": Number, "required": true}, or a
//     group of nested specs such as Prop{"city": String, "zip": String}
type Spec interface {
	spec()
}

// Definition maps top-level property names to their specs.
type Definition map[string]Spec

// List wraps a single spec to declare an array of it. Lists with any other
// number of elements are rejected when the schema is built.
type List []Spec

func (List) spec() {}

// Prop is the keyword (explicit) notation of a property, or a group of
// nested properties when it holds no keywords.
//
// Recognised keys are "type", the stock keywords (see [StockSanitizers] and
// [StockValidators]), the documentation keywords "description", "example" and
// "deprecated", and the custom hooks "validates"/"validate" and
// "sanitizes"/"sanitize". Every other key names a nested property whose value
// must be a Spec.
type Prop map[string]any

func (Prop) spec() {}

// Keywords for custom functions.
const (
	keyType      = "type"
	keyValidates = "validates"
	keyValidate  = "validate"
	keySanitizes = "sanitizes"
	keySanitize  = "sanitize"
)

// nodeKind tags the notation a definition node was written in.
type nodeKind int

const (
	kindBare nodeKind = iota
	kindArrayWrapped
	kindExplicit
	kindNested
)

func (k nodeKind) String() string {
	switch k {
	case kindBare:
		return "bare"
	case kindArrayWrapped:
		return "arrayOf"
	case kindExplicit:
		return "explicit"
	case kindNested:
		return "nested"
	}
	return "unknown"
}
