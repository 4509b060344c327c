package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Port           string
	Env            string
	DefaultLength  int
	MaxLength      int
	RateLimitRPS   float64
	RateLimitBurst int
	DatabaseDSN    string
}

func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
	}

	var err error
	if cfg.DefaultLength, err = getEnvInt("DEFAULT_LENGTH", 20); err != nil {
		return Config{}, err
	}
	if cfg.MaxLength, err = getEnvInt("MAX_LENGTH", 4096); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", 20); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitRPS, err = getEnvFloat("RATE_LIMIT_RPS", 10); err != nil {
		return Config{}, err
	}

	if cfg.DefaultLength < 0 || cfg.MaxLength < 1 {
		return Config{}, fmt.Errorf("DEFAULT_LENGTH must be >= 0 and MAX_LENGTH >= 1")
	}
	if cfg.DefaultLength > cfg.MaxLength {
		return Config{}, fmt.Errorf("DEFAULT_LENGTH %d exceeds MAX_LENGTH %d", cfg.DefaultLength, cfg.MaxLength)
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst < 1 {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
