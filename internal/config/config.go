package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port          string `env:"PORT" envDefault:"8080"`
	APIBaseURL    string `env:"API_BASE_URL" envDefault:"http://localhost:3000"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"a-very-secret-key"`
}

// Load reads the .env file if present, then the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
