package server

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// Config holds the daemon settings read from the environment.
type Config struct {
	Port     string
	LogLevel log.Level
}

// ConfigFromEnv reads PORT (default 8080) and LOG_LEVEL (default info).
func ConfigFromEnv() (Config, error) {
	c := Config{Port: os.Getenv("PORT"), LogLevel: log.InfoLevel}
	if c.Port == "" {
		c.Port = "8080"
		log.Printf("Defaulting to port %s", c.Port)
	}
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		parsed, err := log.ParseLevel(lvl)
		if err != nil {
			return Config{}, fmt.Errorf("server: LOG_LEVEL: %w", err)
		}
		c.LogLevel = parsed
	}
	return c, nil
}

// Addr is the listen address for Port.
func (c Config) Addr() string { return ":" + c.Port }
