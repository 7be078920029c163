// Package binder decodes HTTP request bodies into typed Go values.
//
// Binders are plain functions with the signature
// func(r *http.Request, v any) error, constructed once with options and
// safe for concurrent use. On failure they return an error chain that
// preserves the underlying decoder error (json syntax errors, unmarshal
// type errors, yaml type errors, schema violations) together with a
// package sentinel, so the failure package can reduce any binding error
// to a stable failure kind without string matching at call sites.
//
// The size cap is enforced before the decoder runs: a declared
// Content-Length over the limit fails without reading the body, and
// streaming bodies are read through a limited reader. An oversized body
// therefore always reports ErrBodyTooLarge even when its bytes are also
// malformed.
//
// Basic usage:
//
//	bind := binder.JSON(binder.WithMaxBodySize(1 << 20))
//
//	var req CreateUserRequest
//	if err := bind(r, &req); err != nil {
//		rec := wire.Project(failure.Classify(err), nil)
//		_ = rec.Render(w, r)
//		return
//	}
package binder
