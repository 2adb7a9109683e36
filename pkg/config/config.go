package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the full startup configuration. Every setting has a default so a
// bare `go run` works: no TMDB key means the client serves the bundled sample
// catalog, and no DB_HOST means a local sqlite file.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	// TMDB credential; empty enables fallback mode, never a startup failure.
	TMDBAPIKey string `envconfig:"TMDB_API_KEY"`

	// sqlite file path, used unless DBHost selects postgres.
	DBPath string `envconfig:"DB_PATH" default:"movies.db"`

	DBHost     string `envconfig:"DB_HOST"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"program"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"test"`
	DBName     string `envconfig:"DB_NAME" default:"movies"`
}

// Load reads .env if present, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// UsePostgres reports whether a postgres host was configured.
func (c *Config) UsePostgres() bool {
	return c.DBHost != ""
}
