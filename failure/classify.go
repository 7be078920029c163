package failure

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/bindkit/binder"
)

// Classify reduces a raw binding error to exactly one Failure. It is a
// pure function: no I/O, deterministic, and total. Every input maps to
// some Kind, with KindUnclassified catching whatever the rules below do
// not recognize.
//
// Rule order follows failure precedence, first match wins:
// content-type checks, then the size cap, then grammar-level parse
// failures, then schema-binding failures. A body that is both oversized
// and malformed reports KindBodyTooLarge because the size check runs
// before any parsing.
func Classify(err error) Failure {
	if err == nil {
		return Failure{Kind: KindUnclassified, Detail: "no failure information"}
	}

	// 1-2. Content-type preconditions
	var mediaErr *binder.MediaTypeError
	if errors.As(err, &mediaErr) {
		if mediaErr.Got == "" {
			return Failure{
				Kind:   KindMissingContentType,
				Detail: fmt.Sprintf("expected %s", mediaErr.Want),
				cause:  err,
			}
		}
		return Failure{
			Kind:      KindUnsupportedMediaType,
			Detail:    fmt.Sprintf("got %s, expected %s", mediaErr.Got, mediaErr.Want),
			MediaType: mediaErr.Got,
			cause:     err,
		}
	}
	if errors.Is(err, binder.ErrMissingContentType) {
		return Failure{Kind: KindMissingContentType, Detail: "content-type header is required", cause: err}
	}
	if errors.Is(err, binder.ErrUnsupportedMediaType) {
		return Failure{Kind: KindUnsupportedMediaType, Detail: "media type is not supported", cause: err}
	}

	// 3. Size cap, checked ahead of any parse result
	var sizeErr *binder.SizeError
	if errors.As(err, &sizeErr) {
		return Failure{
			Kind:   KindBodyTooLarge,
			Detail: fmt.Sprintf("body exceeds %d bytes", sizeErr.Limit),
			Limit:  sizeErr.Limit,
			cause:  err,
		}
	}
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return Failure{
			Kind:   KindBodyTooLarge,
			Detail: fmt.Sprintf("body exceeds %d bytes", maxBytesErr.Limit),
			Limit:  maxBytesErr.Limit,
			cause:  err,
		}
	}
	if errors.Is(err, binder.ErrBodyTooLarge) {
		return Failure{Kind: KindBodyTooLarge, Detail: "body exceeds the configured limit", cause: err}
	}

	// 4. Grammar-level parse failures
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return Failure{
			Kind:   KindMalformedSyntax,
			Detail: fmt.Sprintf("invalid syntax at offset %d", syntaxErr.Offset),
			Offset: syntaxErr.Offset,
			cause:  err,
		}
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return Failure{Kind: KindMalformedSyntax, Detail: "body is empty or truncated", cause: err}
	}

	// 5. Schema-binding failures
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return Failure{
			Kind:   KindSchemaMismatch,
			Detail: fmt.Sprintf("field %q expects %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value),
			Field:  typeErr.Field,
			cause:  err,
		}
	}
	var schemaErr *binder.SchemaError
	if errors.As(err, &schemaErr) {
		return Failure{
			Kind:   KindSchemaMismatch,
			Detail: schemaErr.Reason,
			Field:  schemaErr.Field,
			cause:  err,
		}
	}
	var yamlTypeErr *yaml.TypeError
	if errors.As(err, &yamlTypeErr) {
		return Failure{
			Kind:   KindSchemaMismatch,
			Detail: strings.Join(yamlTypeErr.Errors, "; "),
			cause:  err,
		}
	}
	if errors.Is(err, binder.ErrSchemaViolation) {
		return Failure{Kind: KindSchemaMismatch, Detail: "body does not match the expected schema", cause: err}
	}
	if msg := err.Error(); errors.Is(err, binder.ErrDecode) && strings.Contains(msg, "unknown field") {
		return Failure{
			Kind:   KindSchemaMismatch,
			Detail: "unknown field is not allowed",
			Field:  quotedToken(msg),
			cause:  err,
		}
	}

	// Remaining decode failures: trailing data and yaml parser errors are
	// grammar-level; anything else falls through to KindUnclassified.
	if errors.Is(err, binder.ErrDecode) {
		msg := err.Error()
		switch {
		case strings.Contains(msg, "unexpected data after"):
			return Failure{Kind: KindMalformedSyntax, Detail: "body must contain a single document", cause: err}
		case strings.Contains(msg, "yaml:"):
			return Failure{Kind: KindMalformedSyntax, Detail: "invalid document syntax", cause: err}
		}
	}

	// 6. Safety valve
	return Failure{Kind: KindUnclassified, Detail: "unclassified decode failure", cause: err}
}

// quotedToken extracts the first double-quoted token from a decoder
// message, e.g. the field name in `json: unknown field "age"`.
func quotedToken(msg string) string {
	i := strings.Index(msg, `"`)
	if i == -1 {
		return ""
	}
	j := strings.Index(msg[i+1:], `"`)
	if j == -1 {
		return ""
	}
	return msg[i+1 : i+1+j]
}
