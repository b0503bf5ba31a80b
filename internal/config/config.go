// Package config loads runtime settings from the environment, with an
// optional .env file in the working directory.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"vitacoach/internal/storage"
)

type Config struct {
	DBPath    string
	LogLevel  string
	Addr      string
	JWTSecret string
	JWTTTL    time.Duration
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DBPath:    strings.TrimSpace(os.Getenv(storage.DBPathEnv)),
		LogLevel:  fallback(os.Getenv("VITACOACH_LOG_LEVEL"), "warn"),
		Addr:      fallback(os.Getenv("VITACOACH_ADDR"), ":8080"),
		JWTSecret: strings.TrimSpace(os.Getenv("VITACOACH_JWT_SECRET")),
		JWTTTL:    60 * time.Minute,
	}

	if v := strings.TrimSpace(os.Getenv("VITACOACH_JWT_TTL_MINUTES")); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			cfg.JWTTTL = time.Duration(minutes) * time.Minute
		}
	}

	if cfg.DBPath == "" {
		p, err := storage.DefaultDBPath()
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = p
	}

	return cfg, nil
}

// ValidateServer checks the settings only the HTTP server needs.
func (c Config) ValidateServer() error {
	if c.JWTSecret == "" {
		return errors.New("VITACOACH_JWT_SECRET is required")
	}
	return nil
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}
