package binder

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"gopkg.in/yaml.v3"
)

// YAML media types accepted by default.
var yamlMediaTypes = []string{"application/x-yaml", "text/yaml"}

// YAML creates a YAML body binder with the same contract as JSON:
// Content-Type check, size cap enforced before decoding, strict field
// matching, and a single document per body. Type and unknown-field
// violations surface as *yaml.TypeError so they classify as schema
// mismatches rather than syntax failures.
func YAML(opts ...Option) Bind {
	o := newOptions(opts...)
	accept := yamlMediaTypes
	if o.mediaType == "" {
		o.mediaType = "application/yaml"
	} else {
		accept = nil
	}

	return func(r *http.Request, v any) error {
		if err := checkMediaType(r.Header.Get("Content-Type"), o.mediaType, accept...); err != nil {
			return err
		}

		body, err := readBody(r, o.maxBodySize)
		if err != nil {
			return err
		}

		decoder := yaml.NewDecoder(bytes.NewReader(body))
		decoder.KnownFields(!o.allowUnknownFields)

		if err := decoder.Decode(v); err != nil {
			// An empty body yields io.EOF, kept in the chain like JSON.
			return fmt.Errorf("%w: %w", ErrDecode, err)
		}

		// Reject multi-document bodies
		var extra any
		if err := decoder.Decode(&extra); err != io.EOF {
			return fmt.Errorf("%w: unexpected data after YAML document", ErrDecode)
		}

		return nil
	}
}
