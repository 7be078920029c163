package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// JSON creates a JSON body binder.
//
// The binder checks the Content-Type header, enforces the configured body
// size cap before decoding, and decodes strictly: unknown fields and
// trailing data are rejected unless configured otherwise. Underlying
// decoder errors are preserved in the returned error chain so that
// failure.Classify can distinguish syntax-level from schema-level problems.
//
// Example:
//
//	h := handler.HandlerFunc[handler.Context, CreateUserRequest](
//		func(ctx handler.Context, req CreateUserRequest) handler.Response {
//			// req is populated from the JSON body
//			return handler.JSON(user)
//		},
//	)
//
//	http.HandleFunc("/users", handler.Wrap(h,
//		handler.WithBinder[handler.Context, CreateUserRequest](binder.JSON()),
//	))
func JSON(opts ...Option) Bind {
	o := newOptions(opts...)
	if o.mediaType == "" {
		o.mediaType = "application/json"
	}
	validate := o.compileSchema()

	return func(r *http.Request, v any) error {
		if err := checkMediaType(r.Header.Get("Content-Type"), o.mediaType); err != nil {
			return err
		}

		body, err := readBody(r, o.maxBodySize)
		if err != nil {
			return err
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		if !o.allowUnknownFields {
			decoder.DisallowUnknownFields() // Strict mode
		}

		if err := decoder.Decode(v); err != nil {
			// Keep the typed decoder error in the chain; empty body
			// surfaces as io.EOF.
			return fmt.Errorf("%w: %w", ErrDecode, err)
		}

		// Ensure the body holds exactly one JSON value
		var extra json.RawMessage
		if err := decoder.Decode(&extra); err != io.EOF {
			return fmt.Errorf("%w: unexpected data after JSON value", ErrDecode)
		}

		if validate != nil {
			if err := validate(body); err != nil {
				return err
			}
		}

		return nil
	}
}

// readBody consumes the request body while enforcing the size cap. The
// Content-Length fast path rejects oversized bodies without reading a
// single byte; streaming bodies are read through a limited reader so at
// most limit+1 bytes are ever buffered.
func readBody(r *http.Request, limit int64) ([]byte, error) {
	if r.ContentLength > limit {
		return nil, &SizeError{Limit: limit}
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, &SizeError{Limit: maxErr.Limit}
		}
		return nil, fmt.Errorf("%w: reading request body: %v", ErrDecode, err)
	}
	if int64(len(body)) > limit {
		return nil, &SizeError{Limit: limit}
	}
	return body, nil
}
