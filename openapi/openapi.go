package openapi

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/Gobd/apischema"
	"github.com/getkin/kin-openapi/openapi3"
)

// Response describes one status of an operation: a description and the
// schemas its body may take.
type Response struct {
	Desc   string
	Bodies []*apischema.Schema
}

// Endpoint describes a single API operation for [Get], [Post], [Put],
// [Patch] and [Delete].
type Endpoint struct {
	Summary     string
	Description string
	Request     *apischema.Schema   // single request body
	Requests    []*apischema.Schema // several request bodies, as oneOf
	Response    *apischema.Schema   // single 200 response
	Responses   map[string]Response // keyed by status code, e.g. "200" or "4xx"; wins over Response

	// Validated adds a "400" response carrying the validation error map,
	// unless Responses already has one.
	Validated bool
}

// jsonBody describes schemas as one body: the schema itself when there is
// one, a oneOf of them otherwise. It returns nil for no schemas.
func jsonBody(schemas []*apischema.Schema) (*openapi3.SchemaRef, error) {
	refs := make(openapi3.SchemaRefs, 0, len(schemas))
	for i, s := range schemas {
		ref, err := SchemaRef(s)
		if err != nil {
			return nil, fmt.Errorf("body %d: %w", i, err)
		}
		refs = append(refs, ref)
	}
	switch len(refs) {
	case 0:
		return nil, nil
	case 1:
		return refs[0], nil
	}
	return openapi3.NewSchemaRef("", &openapi3.Schema{OneOf: refs}), nil
}

// NewRequest builds a required JSON request body from schemas. More than one
// schema yields a oneOf body.
func NewRequest(schemas ...*apischema.Schema) (*openapi3.RequestBodyRef, error) {
	if len(schemas) == 0 {
		return nil, errors.New("no request schemas given")
	}
	ref, err := jsonBody(schemas)
	if err != nil {
		return nil, err
	}
	body := openapi3.NewRequestBody().WithRequired(true).WithJSONSchemaRef(ref)
	return &openapi3.RequestBodyRef{Value: body}, nil
}

// NewResponse builds the responses of an operation. Responses without
// bodies carry only their description.
func NewResponse(responses map[string]Response) (*openapi3.Responses, error) {
	if len(responses) == 0 {
		return nil, errors.New("no responses given")
	}

	codes := make([]string, 0, len(responses))
	for code := range responses {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	out := openapi3.NewResponsesWithCapacity(len(codes))
	for _, code := range codes {
		r := responses[code]
		resp := openapi3.NewResponse().WithDescription(r.Desc)
		ref, err := jsonBody(r.Bodies)
		if err != nil {
			return nil, fmt.Errorf("response %s: %w", code, err)
		}
		if ref != nil {
			resp.WithJSONSchemaRef(ref)
		}
		out.Set(code, &openapi3.ResponseRef{Value: resp})
	}
	return out, nil
}

// ValidationErrorsSchema describes a marshaled [apischema.ValidationErrors]:
// an object whose values are messages or nested objects of the same shape.
func ValidationErrorsSchema() *openapi3.SchemaRef {
	nested := openapi3.NewObjectSchema().WithAnyAdditionalProperties()
	value := openapi3.NewOneOfSchema(openapi3.NewStringSchema(), nested)
	return openapi3.NewSchemaRef("", openapi3.NewObjectSchema().WithAdditionalProperties(value))
}

// DocBase returns an empty OpenAPI 3.0.3 document.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: openapi3.NewPaths(),
	}
}

// AddPath sets op as the method operation of path, replacing any previous one.
func AddPath(doc *openapi3.T, path, method string, op *openapi3.Operation) error {
	method = strings.ToUpper(method)
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodHead, http.MethodOptions:
	default:
		return fmt.Errorf("unsupported method %q", method)
	}

	if doc.Paths == nil {
		doc.Paths = openapi3.NewPaths()
	}
	item := doc.Paths.Value(path)
	if item == nil {
		item = &openapi3.PathItem{}
	}
	item.SetOperation(method, op)
	doc.Paths.Set(path, item)
	return nil
}

// NewOperation builds the operation described by ep.
func NewOperation(operationID string, ep Endpoint) (*openapi3.Operation, error) {
	op := &openapi3.Operation{
		OperationID: operationID,
		Summary:     ep.Summary,
		Description: ep.Description,
	}

	var err error
	switch {
	case len(ep.Requests) > 0:
		op.RequestBody, err = NewRequest(ep.Requests...)
	case ep.Request != nil:
		op.RequestBody, err = NewRequest(ep.Request)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: request: %w", operationID, err)
	}

	responses := ep.Responses
	if responses == nil && ep.Response != nil {
		responses = map[string]Response{
			"200": {Desc: "OK", Bodies: []*apischema.Schema{ep.Response}},
		}
	}
	if len(responses) == 0 {
		op.Responses = openapi3.NewResponses()
	} else if op.Responses, err = NewResponse(responses); err != nil {
		return nil, fmt.Errorf("%s: %w", operationID, err)
	}

	if ep.Validated && op.Responses.Value("400") == nil {
		invalid := openapi3.NewResponse().
			WithDescription("Validation failed").
			WithJSONSchemaRef(ValidationErrorsSchema())
		op.Responses.Set("400", &openapi3.ResponseRef{Value: invalid})
	}
	return op, nil
}

func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) error {
	op, err := NewOperation(operationID, ep)
	if err != nil {
		return err
	}
	return AddPath(doc, path, method, op)
}

// Get registers a GET endpoint on doc.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodPost, operationID, ep)
}

// Put registers a PUT endpoint on doc.
func Put(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodPut, operationID, ep)
}

// Patch registers a PATCH endpoint on doc.
func Patch(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodPatch, operationID, ep)
}

// Delete registers a DELETE endpoint on doc.
func Delete(doc *openapi3.T, path, operationID string, ep Endpoint) error {
	return addEndpoint(doc, path, http.MethodDelete, operationID, ep)
}
