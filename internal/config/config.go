// Package config defines service configuration and loading.
//
// Conventions:
//   - Defaults come from New; Load layers an optional YAML file and env vars
//     on top of them.
//   - External errors are wrapped with this package's sentinel kinds.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SeedPath optionally names a YAML file that replaces the built-in
	// activity seed.
	SeedPath string `koanf:"seed_path"`

	// EnforceCapacity makes signup reject once a roster reaches
	// max_participants. Disabled by default.
	EnforceCapacity bool `koanf:"enforce_capacity"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel: "info",
		Addr:     ":8000",
	}
}
