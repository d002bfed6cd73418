package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	PostgresURL string `env:"POSTGRES_URL,required"`
	GinMode     string `env:"GIN_MODE" envDefault:"debug"`

	// SeedCatalogs loads the reference data (questions, fares, hotels,
	// meals, destinations) on startup when the tables are empty.
	SeedCatalogs bool `env:"SEED_CATALOGS" envDefault:"false"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
