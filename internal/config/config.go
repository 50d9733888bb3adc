// Package config reads server settings from the environment, loading a .env
// file first when one exists.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	CertFile        string
	KeyFile         string
	DatabaseURL     string
	TokenKey        string
	LogLevel        string
	RateLimit       float64
	RateBurst       int
	ShutdownTimeout time.Duration
}

var ErrMissingTokenKey = errors.New("TOKEN_KEY environment variable is not set")

func Default() Config {
	return Config{
		Addr:            ":8080",
		LogLevel:        "info",
		RateLimit:       1,
		RateBurst:       3,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Load reads the given env files (".env" when none are named) and then the
// process environment. Variables already set in the environment win.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Default()

	if v := os.Getenv("ADDR"); v != "" {
		cfg.Addr = v
	}
	cfg.CertFile = os.Getenv("TLS_CERT")
	cfg.KeyFile = os.Getenv("TLS_KEY")
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.TokenKey = os.Getenv("TOKEN_KEY")
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("RATE_LIMIT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return Config{}, fmt.Errorf("RATE_LIMIT: invalid value %q", v)
		}
		cfg.RateLimit = f
	}
	if v := os.Getenv("RATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("RATE_BURST: invalid value %q", v)
		}
		cfg.RateBurst = n
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: invalid value %q", v)
		}
		cfg.ShutdownTimeout = d
	}

	if cfg.TokenKey == "" {
		return Config{}, ErrMissingTokenKey
	}
	if (cfg.CertFile == "") != (cfg.KeyFile == "") {
		return Config{}, errors.New("TLS_CERT and TLS_KEY must be set together")
	}
	return cfg, nil
}

func (c Config) TLS() bool {
	return c.CertFile != "" && c.KeyFile != ""
}
