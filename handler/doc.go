// Package handler provides the reusable typed wrapper that applies the
// decode → classify → project pipeline to every HTTP handler.
//
// Wrap converts a generic HandlerFunc[C, R] into an http.HandlerFunc. The
// request body is bound into R before the handler body runs; on a binding
// failure the classified failure is projected with the policy bound to R
// and the resulting wire error is rendered instead of invoking the
// handler. Handlers therefore never see a Result type: they receive the
// plain decoded value or nothing at all.
//
// Policies attach to request types at startup via RegisterPolicy, so many
// handlers share one projection without repeating it, and a single call
// site can still override with WithPolicy. Handlers that need custom,
// context-dependent error shaping declare their request type as
// Intercepted[T] and receive the raw binding failure instead.
//
// The pipeline holds no shared mutable state: binders, policies, and the
// wrap configuration are read-only after construction and safe for
// concurrent requests.
package handler
