package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// normalize expands paths and fills blanks. Relative seed files resolve
// against baseDir, the directory holding the config file.
func (c *Config) normalize(baseDir string) error {
	c.normalizeServer()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	return c.normalizeSeed(baseDir)
}

func (c *Config) normalizeServer() {
	c.Server.Bind = strings.TrimSpace(c.Server.Bind)
	if c.Server.Bind == "" {
		c.Server.Bind = defaultBind
	}
	c.Server.BaseURL = strings.TrimSpace(c.Server.BaseURL)
	c.Server.APIToken = strings.TrimSpace(c.Server.APIToken)
	if value, ok := os.LookupEnv(apiTokenEnv); ok && strings.TrimSpace(value) != "" {
		c.Server.APIToken = strings.TrimSpace(value)
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		var err error
		if c.Logging.File, err = expandPath(strings.TrimSpace(c.Logging.File)); err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
	}
	if len(c.Logging.ComponentLevels) > 0 {
		levels := make(map[string]string, len(c.Logging.ComponentLevels))
		for component, level := range c.Logging.ComponentLevels {
			levels[strings.TrimSpace(component)] = strings.ToLower(strings.TrimSpace(level))
		}
		c.Logging.ComponentLevels = levels
	}
	return nil
}

func (c *Config) normalizeSeed(baseDir string) error {
	c.Seed.File = strings.TrimSpace(c.Seed.File)
	if c.Seed.File != "" {
		path := c.Seed.File
		if !strings.HasPrefix(path, "~") && !filepath.IsAbs(path) && baseDir != "" {
			path = filepath.Join(baseDir, path)
		}
		var err error
		if c.Seed.File, err = expandPath(path); err != nil {
			return fmt.Errorf("seed.file: %w", err)
		}
	}
	if c.Seed.File == "" && len(c.Seed.Movies) == 0 && !c.Seed.Empty {
		c.Seed.Movies = DefaultSeed()
	}
	return nil
}
