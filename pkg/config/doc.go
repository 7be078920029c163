// Package config loads environment-based configuration structs.
//
// Structs declare their settings with `env` tags; Load parses the
// environment (plus an optional .env file) into them and caches the
// result per type, so every package sees the same immutable settings.
package config
