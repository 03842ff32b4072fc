package main

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"movieshelf/internal/client"
	"movieshelf/internal/config"
)

type commandContext struct {
	configFlag *string
	serverFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error
}

func newCommandContext(configFlag, serverFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		serverFlag: serverFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configSeen = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) serverURL() (string, error) {
	if c.serverFlag != nil {
		if value := strings.TrimSpace(*c.serverFlag); value != "" {
			return value, nil
		}
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	return cfg.ServerURL(), nil
}

func (c *commandContext) apiClient() (*client.Client, error) {
	base, err := c.serverURL()
	if err != nil {
		return nil, err
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return client.New(base, cfg.Server.APIToken)
}

// wrapClientError turns transport failures into an actionable message.
func wrapClientError(err error, base string) error {
	if errors.Is(err, client.ErrUnavailable) {
		return fmt.Errorf("connect to server at %s: %w; start it with `movieshelf serve`", base, err)
	}
	return err
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
