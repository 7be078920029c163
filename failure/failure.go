package failure

import "fmt"

// Kind identifies one of the closed set of body-parsing failure modes.
// Every binding error reduces to exactly one Kind; anything the rules in
// Classify do not recognize lands in KindUnclassified, never in an
// unhandled case.
type Kind int

const (
	// KindUnclassified is the safety valve for decoder failures that match
	// no other kind. It must project to a generic 500-class record.
	KindUnclassified Kind = iota
	// KindMalformedSyntax means the body is not well-formed under the
	// expected serialization grammar.
	KindMalformedSyntax
	// KindSchemaMismatch means the body is well-formed but does not fit the
	// target type: missing required field, wrong field type, or a field the
	// schema forbids.
	KindSchemaMismatch
	// KindMissingContentType means the request carried no Content-Type header.
	KindMissingContentType
	// KindUnsupportedMediaType means the Content-Type names a media type the
	// binder does not accept.
	KindUnsupportedMediaType
	// KindBodyTooLarge means the body exceeds the configured size cap.
	KindBodyTooLarge
)

// String returns the kind's stable token, suitable for logs.
func (k Kind) String() string {
	switch k {
	case KindMalformedSyntax:
		return "malformed_syntax"
	case KindSchemaMismatch:
		return "schema_mismatch"
	case KindMissingContentType:
		return "missing_content_type"
	case KindUnsupportedMediaType:
		return "unsupported_media_type"
	case KindBodyTooLarge:
		return "body_too_large"
	default:
		return "unclassified"
	}
}

// Failure is a classified body-parsing failure. It carries only as much
// diagnostic detail as is safe to surface: Detail is written for API
// consumers, while the wrapped cause is for logging only.
type Failure struct {
	Kind      Kind
	Detail    string // human-readable detail, safe for the wire
	Field     string // offending field path (schema mismatch)
	Offset    int64  // byte offset of the syntax error, 0 if unknown
	Limit     int64  // configured size cap (body too large), 0 if unknown
	MediaType string // offending media type (unsupported media type)

	cause error
}

// Error implements the error interface.
func (f Failure) Error() string {
	if f.Detail == "" {
		return f.Kind.String()
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
}

// Unwrap exposes the underlying binding error for logging and errors.Is
// checks. Wire records must never include its text.
func (f Failure) Unwrap() error { return f.cause }
