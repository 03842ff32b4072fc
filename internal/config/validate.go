package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateSeed()
}

func (c *Config) validateServer() error {
	if _, _, err := net.SplitHostPort(c.Server.Bind); err != nil {
		return fmt.Errorf("server.bind must be host:port: %w", err)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	if !validLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	for component, level := range c.Logging.ComponentLevels {
		if component == "" {
			return errors.New("logging.component_levels keys must not be blank")
		}
		if !validLevel(level) {
			return fmt.Errorf("logging.component_levels.%s: unknown level %q", component, level)
		}
	}
	return nil
}

func (c *Config) validateSeed() error {
	seen := make(map[int64]struct{}, len(c.Seed.Movies))
	for i, m := range c.Seed.Movies {
		if m.ID <= 0 {
			return fmt.Errorf("seed.movies[%d].id must be positive", i)
		}
		if _, dup := seen[m.ID]; dup {
			return fmt.Errorf("seed.movies[%d].id duplicates id %d", i, m.ID)
		}
		seen[m.ID] = struct{}{}
		if strings.TrimSpace(m.Title) == "" {
			return fmt.Errorf("seed.movies[%d].title must not be blank", i)
		}
	}
	return nil
}

func validLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}
