package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env
// vars. Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if RABTAH_CONFIG is set
//  3. env (prefix RABTAH_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("RABTAH_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: RABTAH_ADDR, RABTAH_MAX_RESULT_LIMIT, ...
	// Map env keys like RABTAH_LOG_LEVEL -> log_level (flat keys);
	// underscores are preserved to match the koanf struct tags.
	envProvider := env.Provider("RABTAH_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "rabtah_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.MaxResultLimit < 1:
		return fmt.Errorf("%w: max_result_limit must be positive", ErrInvalidConfig)
	case c.DefaultFeedLimit < 1 || c.DefaultFeedLimit > c.MaxResultLimit:
		return fmt.Errorf("%w: default_feed_limit out of range", ErrInvalidConfig)
	case c.DefaultRecommendLimit < 1 || c.DefaultRecommendLimit > c.MaxResultLimit:
		return fmt.Errorf("%w: default_recommend_limit out of range", ErrInvalidConfig)
	}
	return nil
}
