package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every environment-driven setting of the server process.
type Config struct {
	HTTPAddr    string        `envconfig:"HTTP_ADDR" default:":8080"`
	PostgresDSN string        `envconfig:"POSTGRES_DSN" default:"host=localhost user=user password=password dbname=chatterboxdb port=5432 sslmode=disable"`
	RedisAddr   string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisDB     int           `envconfig:"REDIS_DB" default:"0"`
	JWTSecret   string        `envconfig:"JWT_SECRET" default:"dev-only-secret"`
	TokenTTL    time.Duration `envconfig:"TOKEN_TTL" default:"72h"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
