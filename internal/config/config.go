// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/xtding233/skyblock-rng/internal/dropsim"
)

// Config holds the settings shared by the CLI and the server.
type Config struct {
	LogLevel      string        `env:"SKYBLOCK_LOG_LEVEL" envDefault:"info"`
	CatalogPath   string        `env:"SKYBLOCK_CATALOG"`
	Seed          uint64        `env:"SKYBLOCK_SEED" envDefault:"0"` // 0: draw a random seed
	Generator     string        `env:"SKYBLOCK_RNG" envDefault:"pcg"`
	QuietAbove    int           `env:"SKYBLOCK_QUIET_ABOVE" envDefault:"10000"`
	MaxRolls      int           `env:"SKYBLOCK_MAX_ROLLS" envDefault:"10000000"`
	HTTPAddr      string        `env:"SKYBLOCK_HTTP_ADDR" envDefault:":8080"`
	GRPCAddr      string        `env:"SKYBLOCK_GRPC_ADDR" envDefault:":9090"`
	AuctionURL    string        `env:"SKYBLOCK_AUCTION_URL" envDefault:"https://api.slothpixel.me/api/skyblock/auctions"`
	HTTPTimeout   time.Duration `env:"SKYBLOCK_HTTP_TIMEOUT" envDefault:"10s"`
	WatchInterval time.Duration `env:"SKYBLOCK_WATCH_INTERVAL" envDefault:"2s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env parsing cannot.
func (c Config) Validate() error {
	switch c.Generator {
	case dropsim.GeneratorPCG, dropsim.GeneratorJava:
	default:
		return fmt.Errorf("SKYBLOCK_RNG must be %q or %q, got %q", dropsim.GeneratorPCG, dropsim.GeneratorJava, c.Generator)
	}
	if c.MaxRolls < 0 {
		return fmt.Errorf("SKYBLOCK_MAX_ROLLS must be >= 0, got %d", c.MaxRolls)
	}
	if c.WatchInterval <= 0 {
		return fmt.Errorf("SKYBLOCK_WATCH_INTERVAL must be > 0, got %s", c.WatchInterval)
	}
	return nil
}
