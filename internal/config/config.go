package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppPort string

	RedisAddr    string
	RedisDB      int
	CacheTTLSecs int

	CORSAllowOrigins []string

	// AIEnabled records whether an assistant key was present at startup.
	// The calculator receives the flag explicitly; business logic never
	// probes the environment itself.
	AIEnabled bool
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort: getenv("APP_PORT", "8080"),

		// Empty REDIS_ADDR disables the response cache.
		RedisAddr:    getenv("REDIS_ADDR", ""),
		CacheTTLSecs: 300,

		CORSAllowOrigins: []string{"*"},
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	if v := os.Getenv("CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.CacheTTLSecs = n
		}
	}
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		c.CORSAllowOrigins = strings.Split(v, ",")
	}
	if _, ok := os.LookupEnv("OPENAI_API_KEY"); ok {
		c.AIEnabled = true
	}
	return c
}

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if _, err := net.LookupPort("tcp", c.AppPort); err != nil {
		return fmt.Errorf("invalid APP_PORT %q: %w", c.AppPort, err)
	}
	if c.CacheTTLSecs <= 0 {
		return errors.New("CACHE_TTL_SECONDS must be positive")
	}
	if len(c.CORSAllowOrigins) == 0 {
		return errors.New("missing CORS_ALLOW_ORIGINS")
	}
	return nil
}
