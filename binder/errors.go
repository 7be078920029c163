package binder

import (
	"errors"
	"fmt"
)

// Common binding errors
var (
	// ErrMissingContentType indicates the request lacks a Content-Type header
	// when one is required for parsing.
	ErrMissingContentType = errors.New("missing content type")

	// ErrUnsupportedMediaType indicates the Content-Type header specifies a media
	// type the binder does not support (e.g., text/plain for the JSON binder).
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrBodyTooLarge indicates the request body exceeds the configured size cap.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrDecode indicates the request body could not be decoded into the target
	// value. The underlying decoder error is preserved in the chain so callers
	// can distinguish syntax-level failures from schema-level ones.
	ErrDecode = errors.New("failed to decode request body")

	// ErrSchemaViolation indicates the body is well-formed but does not conform
	// to the expected shape (missing required field, wrong type, extra field).
	ErrSchemaViolation = errors.New("request body does not match schema")

	// ErrBinderNotApplicable indicates the binder cannot process the request
	// and should be skipped when binders are chained.
	ErrBinderNotApplicable = errors.New("binder not applicable for this request")
)

// MediaTypeError reports a missing or unexpected Content-Type header.
// An empty Got means the header was absent entirely.
type MediaTypeError struct {
	Got  string // media type from the request, without parameters
	Want string // media type the binder expects
}

func (e *MediaTypeError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("%v: expected %s", ErrMissingContentType, e.Want)
	}
	return fmt.Sprintf("%v: got %s, expected %s", ErrUnsupportedMediaType, e.Got, e.Want)
}

func (e *MediaTypeError) Unwrap() error {
	if e.Got == "" {
		return ErrMissingContentType
	}
	return ErrUnsupportedMediaType
}

// SizeError reports a request body that exceeds the configured limit.
type SizeError struct {
	Limit int64 // configured cap in bytes
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%v: max %d bytes", ErrBodyTooLarge, e.Limit)
}

func (e *SizeError) Unwrap() error { return ErrBodyTooLarge }

// SchemaError reports a structural schema violation with the offending
// field path when the validator supplies one.
type SchemaError struct {
	Field  string // offending field path, may be empty
	Reason string // validator description, safe to surface to API consumers
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %s", ErrSchemaViolation, e.Reason)
	}
	return fmt.Sprintf("%v: field %q: %s", ErrSchemaViolation, e.Field, e.Reason)
}

func (e *SchemaError) Unwrap() error { return ErrSchemaViolation }
