// Package config holds the runtime settings shared by the CLI commands.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variables read by FromEnv.
const (
	EnvHTTPAddr   = "LOAN_HTTP_ADDR"
	EnvRedisAddr  = "LOAN_REDIS_ADDR"
	EnvCacheTTL   = "LOAN_CACHE_TTL"
	EnvRateLimit  = "LOAN_RATE_LIMIT"
	EnvRateWindow = "LOAN_RATE_WINDOW"
	EnvCurrency   = "LOAN_CURRENCY"
)

type Config struct {
	HTTPAddr string
	// RedisAddr selects the Redis comparison cache; empty keeps it in memory.
	RedisAddr  string
	CacheTTL   time.Duration
	RateLimit  int
	RateWindow time.Duration
	Currency   string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

func Default() Config {
	return Config{
		HTTPAddr:        ":8080",
		CacheTTL:        10 * time.Minute,
		RateLimit:       5,
		RateWindow:      time.Minute,
		Currency:        "USD",
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// FromEnv returns Default overridden by any LOAN_* variables that are set.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvHTTPAddr); ok {
		cfg.HTTPAddr = v
	}
	if v, ok := lookup(EnvRedisAddr); ok {
		cfg.RedisAddr = v
	}
	if v, ok := lookup(EnvCurrency); ok && v != "" {
		cfg.Currency = v
	}
	if v, ok := lookup(EnvRateLimit); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvRateLimit, err)
		}
		cfg.RateLimit = n
	}
	for env, dst := range map[string]*time.Duration{
		EnvCacheTTL:   &cfg.CacheTTL,
		EnvRateWindow: &cfg.RateWindow,
	} {
		v, ok := lookup(env)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", env, err)
		}
		*dst = d
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.RateLimit <= 0 {
		return fmt.Errorf("rate limit must be positive, got %d", c.RateLimit)
	}
	if c.RateWindow <= 0 {
		return fmt.Errorf("rate window must be positive, got %v", c.RateWindow)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache ttl must not be negative, got %v", c.CacheTTL)
	}
	return nil
}
