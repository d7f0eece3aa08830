package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr             string
	LogLevel             slog.Level
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
	MaxSessions          int
	RateLimitRPS         float64
	RateLimitBurst       int
}

func Load() (Config, error) {
	c := Config{
		HTTPAddr:             envOr("HTTP_ADDR", ":8080"),
		SessionTTL:           2 * time.Hour,
		SessionSweepInterval: time.Minute,
		MaxSessions:          10000,
		RateLimitRPS:         20,
		RateLimitBurst:       40,
	}

	var err error
	if c.SessionTTL, err = durationEnv("SESSION_TTL", c.SessionTTL); err != nil {
		return Config{}, err
	}
	if c.SessionSweepInterval, err = durationEnv("SESSION_SWEEP_INTERVAL", c.SessionSweepInterval); err != nil {
		return Config{}, err
	}
	if c.MaxSessions, err = intEnv("MAX_SESSIONS", c.MaxSessions); err != nil {
		return Config{}, err
	}
	if c.RateLimitBurst, err = intEnv("RATE_LIMIT_BURST", c.RateLimitBurst); err != nil {
		return Config{}, err
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT_RPS %q", v)
		}
		c.RateLimitRPS = f
	}

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when rate limiting is on")
	}

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s %q: must not be negative", key, v)
	}
	return d, nil
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return n, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
