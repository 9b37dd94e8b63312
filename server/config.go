package server

import (
	"fmt"
	"os"
	"time"
)

// Config describes the HTTP-layer configuration.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LoadConfig builds the server config from environment variables.
func LoadConfig() (*Config, error) {
	c := &Config{
		Addr:         getEnv("STKS_ADDR", ":8080"),
		ReadTimeout:  getDuration("STKS_READ_TIMEOUT", 10*time.Second),
		WriteTimeout: getDuration("STKS_WRITE_TIMEOUT", 30*time.Second),
	}

	if c.ReadTimeout <= 0 {
		return nil, fmt.Errorf("STKS_READ_TIMEOUT must be positive")
	}
	if c.WriteTimeout <= 0 {
		return nil, fmt.Errorf("STKS_WRITE_TIMEOUT must be positive")
	}

	return c, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
