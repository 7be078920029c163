package httpserver

import "errors"

var (
	// ErrStart wraps failures to start or run the server.
	ErrStart = errors.New("failed to run http server")
	// ErrShutdown wraps failures during graceful shutdown.
	ErrShutdown = errors.New("failed to shut down http server")
)
