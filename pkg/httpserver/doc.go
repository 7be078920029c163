// Package httpserver runs an http.Server with env-driven configuration
// and graceful shutdown on context cancellation or OS signals.
package httpserver
