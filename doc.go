// Package apischema compiles declarative, nested data definitions into
// schemas that sanitize and validate map[string]any payloads, and describe
// them as OpenAPI 3 schemas.
//
// A definition maps property names to specs written in any of four
// equivalent notations:
//
//	schema, err := apischema.New(apischema.Definition{
//	    "name":  apischema.String,                              // bare type
//	    "tags":  apischema.List{apischema.String},              // array of
//	    "age":   apischema.Prop{"type": apischema.Integer, "min": 0},
//	    "address": apischema.Prop{                               // nested
//	        "city": apischema.Prop{"type": apischema.String, "required": true},
//	    },
//	})
//
// [Schema.Sanitize] casts and normalizes values, applies defaults and drops
// every undeclared field. [Schema.Validate] returns the failures as a nested
// [ValidationErrors], or nil:
//
//	clean, err := schema.Sanitize(ctx, payload, nil)
//	errs, err := schema.Validate(ctx, clean, nil)
//
// Sub-packages:
//   - openapi – endpoint helpers building OpenAPI documents from schemas
//   - sqlservice – a SQL backed [ServiceProvider] for the "service" keyword
//   - transform – recursive string normalizers
package apischema
