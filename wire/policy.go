package wire

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/bindkit/failure"
)

// Policy maps a classified failure to a wire error record. Policies are
// stateless pure functions owned by the application; the same policy value
// may be shared by any number of concurrent requests.
type Policy func(f failure.Failure) Error

// invalidPolicyOutput replaces any policy result whose status code falls
// outside the valid error range.
var invalidPolicyOutput = Error{
	StatusCode: http.StatusInternalServerError,
	ErrorCode:  "invalid_policy_output",
	Message:    "The service produced an invalid error response.",
}

// Project applies the policy to a classified failure and validates the
// result. A nil policy falls back to DefaultPolicy. A record with a status
// code outside [400,599] is replaced by the fixed invalid_policy_output
// record so a broken policy can never emit a success status for a failure.
func Project(f failure.Failure, p Policy) Error {
	if p == nil {
		p = DefaultPolicy
	}
	rec := p(f)
	if rec.StatusCode < 400 || rec.StatusCode > 599 {
		return invalidPolicyOutput
	}
	return rec
}

// DefaultPolicy is the projection used when no custom policy is bound.
//
// 400-class records carry actionable field-level detail, 415-class records
// name the expected media type, the 413 record states the configured
// limit, and unclassified failures map to a detail-free 500 so internal
// decoder text never reaches the wire.
func DefaultPolicy(f failure.Failure) Error {
	switch f.Kind {
	case failure.KindMalformedSyntax:
		rec := Error{
			StatusCode: http.StatusBadRequest,
			ErrorCode:  "malformed_body",
			Message:    "Request body is not well-formed.",
		}
		details := map[string]any{}
		if f.Detail != "" {
			details["reason"] = f.Detail
		}
		if f.Offset > 0 {
			details["offset"] = f.Offset
		}
		if len(details) > 0 {
			rec.Details = details
		}
		return rec

	case failure.KindSchemaMismatch:
		rec := Error{
			StatusCode: http.StatusBadRequest,
			ErrorCode:  "invalid_payload",
			Message:    "Request body does not match the expected schema.",
		}
		details := map[string]any{}
		if f.Field != "" {
			details["field"] = f.Field
		}
		if f.Detail != "" {
			details["reason"] = f.Detail
		}
		if len(details) > 0 {
			rec.Details = details
		}
		return rec

	case failure.KindMissingContentType:
		return Error{
			StatusCode: http.StatusUnsupportedMediaType,
			ErrorCode:  "missing_content_type",
			Message:    fmt.Sprintf("Content-Type header is required: %s.", f.Detail),
		}

	case failure.KindUnsupportedMediaType:
		return Error{
			StatusCode: http.StatusUnsupportedMediaType,
			ErrorCode:  "unsupported_content_type",
			Message:    fmt.Sprintf("Unsupported media type: %s.", f.Detail),
		}

	case failure.KindBodyTooLarge:
		msg := "Request body exceeds the allowed size."
		if f.Limit > 0 {
			msg = fmt.Sprintf("Request body exceeds the allowed size of %d bytes.", f.Limit)
		}
		return Error{
			StatusCode: http.StatusRequestEntityTooLarge,
			ErrorCode:  "payload_too_large",
			Message:    msg,
		}

	default:
		// Unclassified failures stay generic to avoid leaking internals.
		return Error{
			StatusCode: http.StatusInternalServerError,
			ErrorCode:  "internal_error",
			Message:    "An unexpected error occurred while processing the request body.",
		}
	}
}
