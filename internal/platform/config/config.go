// Package config builds process configuration from the environment so
// main stays lean.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string        `env:"SANTA_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SANTA_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogLevel        string        `env:"SANTA_LOG_LEVEL" envDefault:"info"`
}

// FromEnv parses a Server config from environment variables.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
