package config

import (
	"log/slog"
	"time"
)

type App struct {
	Name    string `env:"APP_NAME" envDefault:"gamedeals"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

type Log struct {
	Level slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

type HTTP struct {
	Address         string        `env:"HTTP_ADDRESS" envDefault:":8080" validate:"required"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	// SessionTimeout bounds one page load, fallback included.
	SessionTimeout time.Duration `env:"HTTP_SESSION_TIMEOUT" envDefault:"25s" validate:"gt=0"`
}

type Probe struct {
	Address string `env:"PROBE_ADDRESS" envDefault:":8081" validate:"required"`
}

type Metrics struct {
	Address string `env:"METRICS_ADDRESS" envDefault:":9090" validate:"required"`
}
