package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/bindkit/failure"
	"github.com/dmitrymomot/bindkit/handler"
	"github.com/dmitrymomot/bindkit/wire"
)

// Distinct request types per test: policy bindings are keyed by type and
// global to the process.
type registeredRequest struct {
	Name string `json:"name"`
}

type unregisteredRequest struct {
	Name string `json:"name"`
}

type overriddenRequest struct {
	Name string `json:"name"`
}

type interceptedPayloadRequest struct {
	Name string `json:"name"`
}

func teapotPolicy(code string) wire.Policy {
	return func(f failure.Failure) wire.Error {
		return wire.Error{StatusCode: http.StatusTeapot, ErrorCode: code, Message: "short and stout"}
	}
}

func TestRegisterPolicy(t *testing.T) {
	t.Parallel()

	t.Run("registered type picks up its policy", func(t *testing.T) {
		t.Parallel()
		handler.RegisterPolicy[registeredRequest](teapotPolicy("registered"))

		h := handler.Wrap(
			handler.HandlerFunc[handler.Context, registeredRequest](
				func(ctx handler.Context, req registeredRequest) handler.Response {
					return handler.JSON(req)
				},
			),
			handler.WithLogger[handler.Context, registeredRequest](discard),
		)

		w := postJSON(t, h, "{")

		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.Equal(t, "registered", decodeWireError(t, w)["error_code"])
	})

	t.Run("unregistered type falls back to the default policy", func(t *testing.T) {
		t.Parallel()
		h := handler.Wrap(
			handler.HandlerFunc[handler.Context, unregisteredRequest](
				func(ctx handler.Context, req unregisteredRequest) handler.Response {
					return handler.JSON(req)
				},
			),
			handler.WithLogger[handler.Context, unregisteredRequest](discard),
		)

		w := postJSON(t, h, "{")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "malformed_body", decodeWireError(t, w)["error_code"])
	})

	t.Run("intercepted wrapper inherits the payload's policy", func(t *testing.T) {
		t.Parallel()
		handler.RegisterPolicy[interceptedPayloadRequest](teapotPolicy("payload"))

		// Returning nil forces the wrapper's own error path, which must
		// project with the policy registered for the payload type.
		h := handler.Wrap(
			handler.HandlerFunc[handler.Context, handler.Intercepted[interceptedPayloadRequest]](
				func(ctx handler.Context, req handler.Intercepted[interceptedPayloadRequest]) handler.Response {
					return nil
				},
			),
			handler.WithLogger[handler.Context, handler.Intercepted[interceptedPayloadRequest]](discard),
		)

		w := postJSON(t, h, `{"name":"Ana"}`)

		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.Equal(t, "payload", decodeWireError(t, w)["error_code"])
	})

	t.Run("per-call option wins over the registry", func(t *testing.T) {
		t.Parallel()
		handler.RegisterPolicy[overriddenRequest](teapotPolicy("from_registry"))

		h := handler.Wrap(
			handler.HandlerFunc[handler.Context, overriddenRequest](
				func(ctx handler.Context, req overriddenRequest) handler.Response {
					return handler.JSON(req)
				},
			),
			handler.WithPolicy[handler.Context, overriddenRequest](teapotPolicy("from_option")),
			handler.WithLogger[handler.Context, overriddenRequest](discard),
		)

		w := postJSON(t, h, "{")

		assert.Equal(t, "from_option", decodeWireError(t, w)["error_code"])
	})
}
