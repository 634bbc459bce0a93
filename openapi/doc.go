// Package openapi builds OpenAPI 3 documents whose request and response
// bodies are described by [apischema.Schema] values.
//
// Create a document with [DocBase] and register endpoints with [Get], [Post],
// [Put], [Patch] or [Delete]:
//
//	doc := openapi.DocBase("my-api", "My API", "1.0")
//	err := openapi.Post(doc, "/orders", "createOrder", openapi.Endpoint{
//	    Request:   orderSchema,
//	    Response:  orderSchema,
//	    Validated: true,
//	})
package openapi
