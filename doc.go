// Package bindkit normalizes request-payload decoding errors at the
// boundary of an HTTP service.
//
// Every request body passes through the same pipeline: decode into the
// handler's typed payload, classify any failure into a closed set of
// kinds, and project the classified failure into a uniform wire error
// record. Handlers never leak raw decoder text or invent ad-hoc error
// shapes.
//
// The module is split along that pipeline:
//
//   - binder decodes bodies (JSON, YAML, optional JSON Schema validation)
//     with a size cap enforced before parsing
//   - failure reduces any binding error to one of six failure kinds
//   - wire defines the error contract and the projection policies
//   - handler wires the pipeline into generic, type-safe HTTP handlers
//
// Typical usage:
//
//	type CreateUserRequest struct {
//		Name string `json:"name"`
//		Age  int    `json:"age"`
//	}
//
//	h := handler.HandlerFunc[handler.Context, CreateUserRequest](
//		func(ctx handler.Context, req CreateUserRequest) handler.Response {
//			return handler.JSON(createUser(req))
//		},
//	)
//
//	mux.Handle("POST /users", handler.Wrap(h))
//
// A malformed body never reaches the handler: the caller receives a JSON
// record such as
//
//	{"status_code":400,"error_code":"malformed_body","message":"Request body is not well-formed."}
//
// with stable error codes safe for programmatic branching. Handlers that
// need custom error shaping declare their payload as
// handler.Intercepted[T] and project the failure themselves.
package bindkit
