package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/bindkit/binder"
	"github.com/dmitrymomot/bindkit/wire"
)

// HandlerFunc provides type-safe HTTP request handling with custom context
// support. C must implement the Context interface, R can be any request type.
//
// Example:
//
//	h := handler.HandlerFunc[handler.Context, CreateUserRequest](
//		func(ctx handler.Context, req CreateUserRequest) handler.Response {
//			user := createUser(req.Name, req.Email)
//			return handler.JSON(user)
//		},
//	)
//
//	http.HandleFunc("/users", handler.Wrap(h))
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter.
// Implementations should set headers, status code, and write body.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// ErrorHandler handles errors from binding or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc to add cross-cutting functionality.
// Decorators are applied in order, with the first decorator in the list
// being the outermost wrapper.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures the Wrap function.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

// wrapConfig holds configuration for Wrap.
type wrapConfig[C Context, R any] struct {
	binders        []binder.Bind
	policy         wire.Policy
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C, R]
	log            *slog.Logger
}

// WithBinder sets a single request binder, replacing any configured before it.
func WithBinder[C Context, R any](b binder.Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if b != nil {
			c.binders = []binder.Bind{b}
		}
	}
}

// WithBinders appends request binders that will be applied in order.
// A binder returning binder.ErrBinderNotApplicable is skipped.
func WithBinders[C Context, R any](binders ...binder.Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.binders = append(c.binders, binders...)
	}
}

// WithPolicy binds a projector policy to this handler, overriding any
// policy registered for the request type.
func WithPolicy[C Context, R any](p wire.Policy) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if p != nil {
			c.policy = p
		}
	}
}

// WithErrorHandler sets a custom error handler, replacing the default
// classify/project pipeline entirely.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets a custom context factory.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithDecorators adds decorators to wrap the handler.
// Decorators are applied in order, with the first decorator being the outermost.
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// WithLogger sets the logger used by the default error handler.
func WithLogger[C Context, R any](log *slog.Logger) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if log != nil {
			c.log = log
		}
	}
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
// Per request it binds the body into R, and on a binding failure runs the
// classify → project pipeline with the policy bound to R and renders the
// resulting wire error without ever invoking the handler body. On success
// the handler receives the plain decoded value. When R is an
// Intercepted[T] the short-circuit is disabled and the raw binding error
// is handed to the handler instead.
//
// Policy resolution order: WithPolicy option, then a policy registered for
// R via RegisterPolicy, then wire.DefaultPolicy.
//
//	http.HandleFunc("/users", handler.Wrap(h,
//		handler.WithBinder[handler.Context, CreateUserRequest](binder.JSON()),
//		handler.WithPolicy[handler.Context, CreateUserRequest](customPolicy),
//	))
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		log: slog.Default(),
	}

	// Default context factory for handlers using the plain Context.
	cfg.contextFactory = func(w http.ResponseWriter, r *http.Request) C {
		ctx := NewContext(w, r)
		if c, ok := any(ctx).(C); ok {
			return c
		}
		panic("cannot use default context factory with custom context type - provide WithContextFactory")
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.policy == nil {
		if p, ok := registeredPolicy[R](); ok {
			cfg.policy = p
		} else {
			cfg.policy = wire.DefaultPolicy
		}
	}
	if cfg.errorHandler == nil {
		cfg.errorHandler = projectingErrorHandler[C](cfg.policy, cfg.log)
	}
	if len(cfg.binders) == 0 {
		cfg.binders = []binder.Bind{binder.JSON()}
	}

	// Apply decorators in reverse order so first decorator is outermost
	finalHandler := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		finalHandler = cfg.decorators[i](finalHandler)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		var req R

		if ic, ok := any(&req).(rawCapture); ok {
			// Interception path: the handler owns failure shaping.
			bindInto(r, ic.bindTarget(), cfg.binders, ic.captureBindError)
		} else if err := bindInto(r, &req, cfg.binders, nil); err != nil {
			cfg.errorHandler(ctx, err)
			return
		}

		response := finalHandler(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}

// bindInto applies binders in order, skipping the ones that are not
// applicable to this request. When capture is non-nil the first failure is
// handed to it instead of being returned.
func bindInto(r *http.Request, v any, binders []binder.Bind, capture func(error)) error {
	for _, bind := range binders {
		err := bind(r, v)
		if err == nil {
			continue
		}
		if errors.Is(err, binder.ErrBinderNotApplicable) {
			continue
		}
		if capture != nil {
			capture(err)
			return nil
		}
		return err
	}
	return nil
}
