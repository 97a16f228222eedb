package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// ConfigServiceURL is the base URL of the remote configuration service
	// that serves shared parameters (EntityStatus, jwtSecretKey).
	ConfigServiceURL string `env:"CONFIG_SERVICE_URL, default=http://localhost:8081"`

	Mongo MongoConfig
	Redis RedisConfig
	Login LoginConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=auth_system"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type LoginConfig struct {
	MaxFailures   int `env:"LOGIN_MAX_FAILURES,   default=5"`
	WindowMinutes int `env:"LOGIN_WINDOW_MINUTES, default=15"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
