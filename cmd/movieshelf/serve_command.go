package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"movieshelf/internal/logging"
	"movieshelf/internal/web"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string
	var logLevel string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the movieshelf web server in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if value := strings.TrimSpace(bind); value != "" {
				cfg.Server.Bind = value
			}
			if value := strings.ToLower(strings.TrimSpace(logLevel)); value != "" {
				if !logging.ValidLevel(value) {
					return fmt.Errorf("invalid --log-level %q", logLevel)
				}
				cfg.Logging.Level = value
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			if ctx.configPath != "" {
				logger.Debug("configuration resolved", logging.String("path", ctx.configPath))
			}
			return web.Run(cmd.Context(), cfg, logger)
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Listen address, overriding server.bind")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	return cmd
}
