package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all runtime settings, populated from the environment.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Catalog persistence. When DatabaseDSN is set the MySQL stores are
	// used for both coins and auction lots; otherwise coins live in
	// CoinDataFile and lots are in-memory only.
	CoinDataFile string `env:"COIN_DATA_FILE" envDefault:"data/coins.json"`
	DatabaseDSN  string `env:"DATABASE_DSN"`

	AdminUsername     string        `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
	JWTSecret         string        `env:"JWT_SECRET"`
	TokenTTL          time.Duration `env:"ADMIN_TOKEN_TTL" envDefault:"12h"`

	// Five-field cron expression for the lot expiry sweep.
	SweepSchedule string `env:"SWEEP_SCHEDULE" envDefault:"* * * * *"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}
