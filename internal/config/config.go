package config

import (
	"fmt"
	"time"

	pkgconfig "github.com/nithishkannan87/AIM-FOOTWEAR/pkg/config"
)

// Config holds all configuration for the storefront server. Empty backend
// addresses select the in-process fallbacks: no Redis address means the
// in-memory snapshot store, no Postgres DSN means the in-memory profile
// store, no Kafka brokers means no analytics producer.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// HTTP server
	HTTPPort int `env:"HTTP_PORT" envDefault:"8080"`

	// Redis (snapshot persistence)
	RedisAddr string `env:"REDIS_ADDR" envDefault:""`
	RedisPass string `env:"REDIS_PASSWORD" envDefault:""`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Postgres (profile documents)
	PostgresDSN string `env:"POSTGRES_DSN" envDefault:""`

	// Kafka (analytics events)
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"" envSeparator:","`

	// Identity tokens
	JWTSecret string        `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg, err := pkgconfig.Load[Config]()
	if err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Brokers returns the configured Kafka brokers with empty entries dropped.
// An unset KAFKA_BROKERS parses as a single empty string.
func (c *Config) Brokers() []string {
	brokers := make([]string, 0, len(c.KafkaBrokers))
	for _, b := range c.KafkaBrokers {
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive: %s", c.TokenTTL)
	}
	return nil
}
