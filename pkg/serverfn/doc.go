// Package serverfn exposes named Go functions over HTTP so browser code can
// call them like local functions.
//
// Functions are registered on a Registry and served under /api/{name}:
//
//	reg := serverfn.NewRegistry()
//	serverfn.Handle(reg, "hello_world", func(ctx context.Context, _ struct{}) (string, error) {
//	    return "Hey.", nil
//	})
//	r.Handle("/api/{fn}", serverfn.NewHandler(reg))
//
// Arguments arrive as JSON (POST body or ?args=) or as form/query values.
// A successful call answers 200 with the JSON encoding of the result. A
// failed call answers with a plain-text body "Kind|message" which Client
// decodes back into an *Error.
package serverfn
