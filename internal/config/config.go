// Package config defines service configuration structures and loading
// hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Layer defaults, optional YAML file, then environment variables.
// - External errors are wrapped via this package's sentinel kinds.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9090".
	Addr string `koanf:"addr"`

	// MaxResultLimit caps every ?limit and body limit the API accepts.
	MaxResultLimit int `koanf:"max_result_limit"`

	// DefaultFeedLimit is used when a feed request leaves limit unset.
	DefaultFeedLimit int `koanf:"default_feed_limit"`

	// DefaultRecommendLimit is used when a recommendation request
	// leaves limit unset.
	DefaultRecommendLimit int `koanf:"default_recommend_limit"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:              "info",
		Addr:                  ":9090",
		MaxResultLimit:        100,
		DefaultFeedLimit:      20,
		DefaultRecommendLimit: 10,
	}
}
