package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/bindkit/failure"
	"github.com/dmitrymomot/bindkit/pkg/requestid"
	"github.com/dmitrymomot/bindkit/wire"
)

// determineLogLevel maps HTTP status codes to appropriate log levels:
// client errors are expected noise, server errors are not.
func determineLogLevel(statusCode int) slog.Level {
	if statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// projectingErrorHandler is the default ErrorHandler: classify the raw
// failure, project it with the bound policy, log it, and render the wire
// record. The underlying error text goes to the log only, never to the
// response.
func projectingErrorHandler[C Context](policy wire.Policy, log *slog.Logger) ErrorHandler[C] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx C, err error) {
		f := failure.Classify(err)
		rec := wire.Project(f, policy)

		attrs := []slog.Attr{
			slog.String("error", err.Error()),
			slog.String("failure_kind", f.Kind.String()),
			slog.Int("status_code", rec.StatusCode),
			slog.String("error_code", rec.ErrorCode),
			slog.String("method", ctx.Request().Method),
			slog.String("path", ctx.Request().URL.Path),
		}
		if requestID := requestid.FromContext(ctx.Request().Context()); requestID != "" {
			attrs = append(attrs, slog.String("request_id", requestID))
		}
		log.LogAttrs(ctx.Request().Context(), determineLogLevel(rec.StatusCode), "request binding failed", attrs...)

		if renderErr := rec.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
			log.LogAttrs(ctx.Request().Context(), slog.LevelError, "failed to render wire error",
				slog.String("error", renderErr.Error()),
			)
		}
	}
}
