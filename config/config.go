package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string        `env:"REVSHARE_ADDR" envDefault:":8080"`
	RedisAddr       string        `env:"REVSHARE_REDIS_ADDR"`
	CacheTTL        time.Duration `env:"REVSHARE_CACHE_TTL" envDefault:"24h"`
	DBPath          string        `env:"REVSHARE_DB_PATH"`
	RBOCatalogPath  string        `env:"REVSHARE_RBO_CATALOG"`
	SeedPath        string        `env:"REVSHARE_SEED_PATH"`
	RateLimit       int           `env:"REVSHARE_RATE_LIMIT" envDefault:"60"`
	RateWindow      time.Duration `env:"REVSHARE_RATE_WINDOW" envDefault:"1m"`
	ShutdownTimeout time.Duration `env:"REVSHARE_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads envFile into the process environment when it exists, then parses
// REVSHARE_* variables. Variables already set win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return errors.New("REVSHARE_ADDR must not be empty")
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("REVSHARE_RATE_LIMIT must be positive, got %d", c.RateLimit)
	}
	if c.RateWindow <= 0 {
		return fmt.Errorf("REVSHARE_RATE_WINDOW must be positive, got %s", c.RateWindow)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("REVSHARE_CACHE_TTL must not be negative, got %s", c.CacheTTL)
	}
	return nil
}
