package binder

// Config holds binder settings sourced from the environment.
type Config struct {
	MaxBodySize        int64  `env:"BINDER_MAX_BODY_SIZE" envDefault:"1048576"`      // MaxBodySize caps the request body in bytes.
	MediaType          string `env:"BINDER_MEDIA_TYPE" envDefault:""`                // MediaType overrides the expected Content-Type media type.
	AllowUnknownFields bool   `env:"BINDER_ALLOW_UNKNOWN_FIELDS" envDefault:"false"` // AllowUnknownFields relaxes strict field matching.
}

// JSONFromConfig creates a JSON binder from the provided Config.
// Only non-zero values from the config are applied.
func JSONFromConfig(cfg Config, opts ...Option) Bind {
	return JSON(append(configOptions(cfg), opts...)...)
}

// YAMLFromConfig creates a YAML binder from the provided Config.
// Only non-zero values from the config are applied.
func YAMLFromConfig(cfg Config, opts ...Option) Bind {
	return YAML(append(configOptions(cfg), opts...)...)
}

func configOptions(cfg Config) []Option {
	configOpts := make([]Option, 0, 3)

	if cfg.MaxBodySize > 0 {
		configOpts = append(configOpts, WithMaxBodySize(cfg.MaxBodySize))
	}
	if cfg.MediaType != "" {
		configOpts = append(configOpts, WithMediaType(cfg.MediaType))
	}
	if cfg.AllowUnknownFields {
		configOpts = append(configOpts, WithUnknownFields(true))
	}

	return configOpts
}
