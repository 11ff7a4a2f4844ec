package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // skip

type Config struct {
	App      App
	Log      Log
	Upstream Upstream
	Locale   Locale
	Stores   Stores
	HTTP     HTTP
	Probe    Probe
	Metrics  Metrics
	Cache    Cache
	Redis    Redis
	Bot      Bot
}

func Load() (Config, error) {
	_ = godotenv.Load()

	return Parse()
}

// Parse reads the process environment without looking for a .env file.
func Parse() (Config, error) {
	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("validate.Struct: %w", err)
	}

	if !config.Locale.Rate.IsPositive() {
		return Config{}, errors.New("EXCHANGE_RATE must be positive")
	}

	return config, nil
}
