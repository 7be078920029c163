package binder

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// DefaultMaxBodySize is the default maximum size for request bodies (1MB).
const DefaultMaxBodySize = 1 << 20 // 1 MB

// Bind represents a function that binds HTTP request data to a Go value.
// It provides a unified interface for decoding a request body into a
// strongly-typed Go structure.
type Bind func(r *http.Request, v any) error

// Option configures a binder at construction time. The resulting binder is
// immutable and safe for concurrent use across requests.
type Option func(*options)

type options struct {
	maxBodySize        int64
	mediaType          string
	allowUnknownFields bool
	schema             string
}

// WithMaxBodySize sets the maximum accepted body size in bytes.
// Non-positive values are ignored.
func WithMaxBodySize(n int64) Option {
	return func(o *options) {
		if n > 0 {
			o.maxBodySize = n
		}
	}
}

// WithMediaType overrides the media type the binder expects in the
// Content-Type header. Parameters (e.g. charset) are never compared.
func WithMediaType(mt string) Option {
	return func(o *options) {
		if mt != "" {
			o.mediaType = mt
		}
	}
}

// WithUnknownFields controls whether fields absent from the target struct
// are accepted. Binders reject unknown fields unless allow is true.
func WithUnknownFields(allow bool) Option {
	return func(o *options) {
		o.allowUnknownFields = allow
	}
}

// WithSchema attaches a JSON Schema document the decoded body must satisfy.
// The schema is compiled once when the binder is constructed; an invalid
// schema document panics to enforce fail-fast initialization, since a
// misconfigured binder should prevent startup rather than misclassify
// every request.
func WithSchema(schema string) Option {
	return func(o *options) {
		o.schema = schema
	}
}

func newOptions(opts ...Option) options {
	o := options{
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// compileSchema compiles the optional JSON Schema into a validation
// function. Returns nil when no schema is configured.
func (o options) compileSchema() func(body []byte) error {
	if o.schema == "" {
		return nil
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(o.schema))
	if err != nil {
		panic(fmt.Errorf("binder: invalid JSON schema document: %w", err))
	}

	return func(body []byte) error {
		result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
		if err != nil {
			return fmt.Errorf("%w: schema validation: %v", ErrDecode, err)
		}
		if result.Valid() {
			return nil
		}

		first := result.Errors()[0]
		field := first.Field()
		// Required-property violations report the parent context as the
		// field; the property name lives in the error details.
		if prop, ok := first.Details()["property"].(string); ok && prop != "" {
			if field == "" || field == "(root)" {
				field = prop
			} else {
				field = field + "." + prop
			}
		}
		if field == "(root)" {
			field = ""
		}
		return &SchemaError{Field: field, Reason: first.Description()}
	}
}

// checkMediaType verifies the Content-Type header against the expected
// media type, ignoring parameters after ";".
func checkMediaType(contentType, want string, accept ...string) error {
	if contentType == "" {
		return &MediaTypeError{Want: want}
	}

	mediaType := contentType
	if idx := strings.Index(contentType, ";"); idx != -1 {
		mediaType = strings.TrimSpace(contentType[:idx])
	}

	if mediaType == want {
		return nil
	}
	for _, mt := range accept {
		if mediaType == mt {
			return nil
		}
	}
	return &MediaTypeError{Got: mediaType, Want: want}
}
