package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Load parses environment variables into a fresh T using its `env` tags.
//
// Example:
//
//	type Config struct {
//	    Port     int    `env:"HTTP_PORT" envDefault:"8080"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//	cfg, err := config.Load[Config]()
func Load[T any]() (*T, error) {
	cfg := new(T)
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadWithPrefix behaves like Load but requires every env tag to resolve
// under the given prefix, e.g. prefix "STOREFRONT_" maps HTTP_PORT to
// STOREFRONT_HTTP_PORT.
func LoadWithPrefix[T any](prefix string) (*T, error) {
	cfg := new(T)
	opts := env.Options{Prefix: prefix}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config with prefix %q: %w", prefix, err)
	}
	return cfg, nil
}
