package config

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration, read from BOXDROP_*
// environment variables.
type Config struct {
	Port string `default:"8080"`

	// HashSecret keys every MAC the service produces. The process must
	// refuse to serve without it.
	HashSecret string `split_words:"true"`
	RedisURL   string `split_words:"true" default:"redis://localhost:6379/0"`

	// Admin credentials: username plus a bcrypt hash of the password.
	// Both empty disables the admin login.
	AdminUser         string `split_words:"true"`
	AdminPasswordHash string `split_words:"true"`

	ReadTimeout       time.Duration `split_words:"true" default:"15s"`
	ReadHeaderTimeout time.Duration `split_words:"true" default:"5s"`
	WriteTimeout      time.Duration `split_words:"true" default:"60s"`
	IdleTimeout       time.Duration `split_words:"true" default:"120s"`
	ShutdownTimeout   time.Duration `split_words:"true" default:"5s"`
}

// Load reads configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("boxdrop", &cfg); err != nil {
		return Config{}, err
	}
	if cfg.HashSecret == "" {
		return Config{}, errors.New("BOXDROP_HASH_SECRET is required")
	}
	if cfg.RedisURL == "" {
		return Config{}, errors.New("BOXDROP_REDIS_URL is required")
	}
	return cfg, nil
}

// ListenAddr returns the address string for the HTTP server.
func (c Config) ListenAddr() string {
	return ":" + c.Port
}
