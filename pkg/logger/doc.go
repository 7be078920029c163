// Package logger builds slog loggers with consistent defaults and
// provides attribute helpers shared across the module.
package logger
