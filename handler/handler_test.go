package handler_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bindkit/binder"
	"github.com/dmitrymomot/bindkit/failure"
	"github.com/dmitrymomot/bindkit/handler"
	"github.com/dmitrymomot/bindkit/wire"
)

type createUserRequest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

var discard = slog.New(slog.DiscardHandler)

func postJSON(t *testing.T, h http.HandlerFunc, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(body))
	if len(header) == 0 {
		req.Header.Set("Content-Type", "application/json")
	} else if header[0] != "" {
		req.Header.Set("Content-Type", header[0])
	}
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func decodeWireError(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func echoHandler(invoked *bool) handler.HandlerFunc[handler.Context, createUserRequest] {
	return func(ctx handler.Context, req createUserRequest) handler.Response {
		if invoked != nil {
			*invoked = true
		}
		return handler.JSON(req)
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("well-formed body reaches the handler", func(t *testing.T) {
		t.Parallel()
		var invoked bool
		h := handler.Wrap(echoHandler(&invoked),
			handler.WithLogger[handler.Context, createUserRequest](discard),
		)

		w := postJSON(t, h, `{"name":"Ana","age":33}`)

		assert.True(t, invoked)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"Ana"`)
	})

	t.Run("empty body short-circuits as malformed_body", func(t *testing.T) {
		t.Parallel()
		var invoked bool
		h := handler.Wrap(echoHandler(&invoked),
			handler.WithLogger[handler.Context, createUserRequest](discard),
		)

		w := postJSON(t, h, "")

		assert.False(t, invoked, "handler body must not run on a binding failure")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeWireError(t, w)
		assert.Equal(t, "malformed_body", body["error_code"])
		assert.EqualValues(t, 400, body["status_code"])
	})

	t.Run("missing field against a schema yields invalid_payload", func(t *testing.T) {
		t.Parallel()
		const schema = `{"type":"object","required":["name","age"]}`
		var invoked bool
		h := handler.Wrap(echoHandler(&invoked),
			handler.WithBinder[handler.Context, createUserRequest](binder.JSON(binder.WithSchema(schema))),
			handler.WithLogger[handler.Context, createUserRequest](discard),
		)

		w := postJSON(t, h, `{"name":"Ana"}`)

		assert.False(t, invoked)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeWireError(t, w)
		assert.Equal(t, "invalid_payload", body["error_code"])
		assert.Equal(t, "age", body["details"].(map[string]any)["field"])
	})

	t.Run("absent content type yields missing_content_type", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(echoHandler(nil),
			handler.WithLogger[handler.Context, createUserRequest](discard),
		)

		w := postJSON(t, h, `{"name":"Ana","age":33}`, "")

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
		assert.Equal(t, "missing_content_type", decodeWireError(t, w)["error_code"])
	})

	t.Run("oversized body yields payload_too_large", func(t *testing.T) {
		t.Parallel()
		var invoked bool
		h := handler.Wrap(echoHandler(&invoked),
			handler.WithBinder[handler.Context, createUserRequest](binder.JSON(binder.WithMaxBodySize(16))),
			handler.WithLogger[handler.Context, createUserRequest](discard),
		)

		w := postJSON(t, h, `{"name":"`+strings.Repeat("a", 64)+`"}`)

		assert.False(t, invoked)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Equal(t, "payload_too_large", decodeWireError(t, w)["error_code"])
	})

	t.Run("per-call policy overrides the default", func(t *testing.T) {
		t.Parallel()
		policy := func(f failure.Failure) wire.Error {
			rec := wire.DefaultPolicy(f)
			if f.Kind == failure.KindSchemaMismatch {
				rec.StatusCode = http.StatusUnprocessableEntity
				rec.ErrorCode = "unprocessable_payload"
			}
			return rec
		}
		h := handler.Wrap(echoHandler(nil),
			handler.WithPolicy[handler.Context, createUserRequest](policy),
			handler.WithLogger[handler.Context, createUserRequest](discard),
		)

		w := postJSON(t, h, `{"age":"not a number"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "unprocessable_payload", decodeWireError(t, w)["error_code"])
	})

	t.Run("broken policy output is replaced", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(echoHandler(nil),
			handler.WithPolicy[handler.Context, createUserRequest](func(failure.Failure) wire.Error {
				return wire.Error{StatusCode: http.StatusOK, ErrorCode: "oops"}
			}),
			handler.WithLogger[handler.Context, createUserRequest](discard),
		)

		w := postJSON(t, h, "{")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "invalid_policy_output", decodeWireError(t, w)["error_code"])
	})

	t.Run("nil handler response maps to internal_error", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(
			handler.HandlerFunc[handler.Context, createUserRequest](
				func(ctx handler.Context, req createUserRequest) handler.Response { return nil },
			),
			handler.WithLogger[handler.Context, createUserRequest](discard),
		)

		w := postJSON(t, h, `{"name":"Ana","age":33}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal_error", decodeWireError(t, w)["error_code"])
	})

	t.Run("decorators wrap the handler", func(t *testing.T) {
		t.Parallel()
		var order []string
		dec := func(name string) handler.Decorator[handler.Context, createUserRequest] {
			return func(next handler.HandlerFunc[handler.Context, createUserRequest]) handler.HandlerFunc[handler.Context, createUserRequest] {
				return func(ctx handler.Context, req createUserRequest) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}
		h := handler.Wrap(echoHandler(nil),
			handler.WithDecorators(dec("outer"), dec("inner")),
			handler.WithLogger[handler.Context, createUserRequest](discard),
		)

		postJSON(t, h, `{"name":"Ana","age":33}`)

		assert.Equal(t, []string{"outer", "inner"}, order)
	})
}
