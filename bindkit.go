package bindkit

import (
	"github.com/dmitrymomot/bindkit/binder"
	"github.com/dmitrymomot/bindkit/handler"
	"github.com/dmitrymomot/bindkit/wire"
)

// Aliases for the most commonly used types, so simple integrations only
// import the root package alongside handler.Wrap.
type (
	// Bind binds HTTP request data to a Go value.
	Bind = binder.Bind
	// Context is the per-request context passed to handlers.
	Context = handler.Context
	// Response renders itself to an http.ResponseWriter.
	Response = handler.Response
	// Policy maps a classified failure to a wire error record.
	Policy = wire.Policy
	// Error is the wire-level error record returned to API callers.
	Error = wire.Error
)
