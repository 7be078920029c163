// Command example runs a small API demonstrating bindkit wiring: env
// configuration, request IDs, a registered projector policy, the default
// wrapper path, and the inline interception path.
package main

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/bindkit/binder"
	"github.com/dmitrymomot/bindkit/failure"
	"github.com/dmitrymomot/bindkit/handler"
	"github.com/dmitrymomot/bindkit/pkg/config"
	"github.com/dmitrymomot/bindkit/pkg/httpserver"
	"github.com/dmitrymomot/bindkit/pkg/logger"
	"github.com/dmitrymomot/bindkit/pkg/requestid"
	"github.com/dmitrymomot/bindkit/wire"
)

type CreateUserRequest struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

type CreateOrderRequest struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
}

type DeployRequest struct {
	Service  string `yaml:"service"`
	Replicas int    `yaml:"replicas"`
}

// userSchema enforces required fields the Go type system cannot express.
const userSchema = `{
	"type": "object",
	"required": ["name", "age"],
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer"}
	},
	"additionalProperties": false
}`

func main() {
	var logCfg logger.Config
	config.MustLoad(&logCfg)
	log := logger.NewFromConfig(logCfg)

	var bindCfg binder.Config
	config.MustLoad(&bindCfg)

	var srvCfg httpserver.Config
	config.MustLoad(&srvCfg)

	// Deployments project schema mismatches as 422 instead of 400; every
	// wrapped handler taking DeployRequest picks this up automatically.
	handler.RegisterPolicy[DeployRequest](func(f failure.Failure) wire.Error {
		rec := wire.DefaultPolicy(f)
		if f.Kind == failure.KindSchemaMismatch {
			rec.StatusCode = http.StatusUnprocessableEntity
		}
		return rec
	})

	r := chi.NewRouter()
	r.Use(requestid.Middleware)

	r.Post("/users", handler.Wrap(
		handler.HandlerFunc[handler.Context, CreateUserRequest](
			func(ctx handler.Context, req CreateUserRequest) handler.Response {
				return handler.JSON(map[string]any{"name": req.Name, "age": req.Age},
					handler.WithJSONStatus(http.StatusCreated))
			},
		),
		handler.WithBinder[handler.Context, CreateUserRequest](
			binder.JSONFromConfig(bindCfg, binder.WithSchema(userSchema)),
		),
		handler.WithLogger[handler.Context, CreateUserRequest](log),
	))

	r.Post("/orders", handler.Wrap(
		handler.HandlerFunc[handler.Context, handler.Intercepted[CreateOrderRequest]](
			func(ctx handler.Context, req handler.Intercepted[CreateOrderRequest]) handler.Response {
				if f, failed := req.Classify(); failed {
					// Custom shaping: attach the request ID to the record.
					rec := wire.Project(f, nil)
					rec.Details = map[string]any{
						"request_id": requestid.FromContext(ctx),
						"cause":      f.Detail,
					}
					return rec
				}
				return handler.JSON(map[string]any{"sku": req.Value.SKU, "quantity": req.Value.Quantity})
			},
		),
		handler.WithLogger[handler.Context, handler.Intercepted[CreateOrderRequest]](log),
	))

	r.Post("/deployments", handler.Wrap(
		handler.HandlerFunc[handler.Context, DeployRequest](
			func(ctx handler.Context, req DeployRequest) handler.Response {
				return handler.JSON(map[string]any{"service": req.Service, "replicas": req.Replicas})
			},
		),
		handler.WithBinder[handler.Context, DeployRequest](binder.YAMLFromConfig(bindCfg)),
		handler.WithLogger[handler.Context, DeployRequest](log),
	))

	srv := httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), r); err != nil {
		log.Error("server exited", logger.Error(err))
	}
}
