package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Material Trade API"`
		Port int    `envconfig:"PORT" default:"3000"`
	}

	DB struct {
		URL      string `envconfig:"DATABASE_URL" default:""`
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"materialtrade"`
		SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
	}

	Limiter struct {
		Max    int           `envconfig:"RATE_LIMIT_MAX" default:"100"`
		Window time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"15m"`
	}
}

// DSN returns the Postgres connection string, preferring DATABASE_URL when set.
func (c *Config) DSN() string {
	if c.DB.URL != "" {
		return c.DB.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.DB.Host, c.DB.User, c.DB.Password, c.DB.Name, c.DB.Port, c.DB.SSLMode,
	)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
