package handler

import (
	"github.com/dmitrymomot/bindkit/failure"
)

// Intercepted is the escape hatch from automatic error projection. A
// handler that declares its request type as Intercepted[T] receives the
// raw binding failure in Err instead of a short-circuited wire response,
// and is responsible for classifying and projecting it itself, typically
// to attach context only the handler knows, such as a request ID.
//
//	h := handler.HandlerFunc[handler.Context, handler.Intercepted[CreateUserRequest]](
//		func(ctx handler.Context, req handler.Intercepted[CreateUserRequest]) handler.Response {
//			if f, failed := req.Classify(); failed {
//				rec := wire.Project(f, myPolicy)
//				rec.Details = map[string]any{"request_id": requestid.FromContext(ctx)}
//				return rec
//			}
//			return handler.JSON(createUser(req.Value))
//		},
//	)
type Intercepted[T any] struct {
	// Value holds the decoded payload. Only meaningful when Err is nil.
	Value T
	// Err is the raw binding failure, nil on success.
	Err error
}

// Failed reports whether binding produced an error.
func (p Intercepted[T]) Failed() bool { return p.Err != nil }

// Classify reduces the raw binding failure to its failure kind.
// The second return is false when binding succeeded.
func (p Intercepted[T]) Classify() (failure.Failure, bool) {
	if p.Err == nil {
		return failure.Failure{}, false
	}
	return failure.Classify(p.Err), true
}

// rawCapture is implemented by *Intercepted[T] so Wrap can divert binding
// failures to the handler instead of the error handler.
type rawCapture interface {
	bindTarget() any
	captureBindError(error)
}

func (p *Intercepted[T]) bindTarget() any            { return &p.Value }
func (p *Intercepted[T]) captureBindError(err error) { p.Err = err }
