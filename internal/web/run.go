package web

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"movieshelf/internal/config"
	"movieshelf/internal/seed"
)

// Run seeds a store from cfg and serves until ctx is cancelled or the
// process receives SIGINT/SIGTERM.
func Run(cmdCtx context.Context, cfg *config.Config, logger *slog.Logger) error {
	if cfg == nil {
		return fmt.Errorf("config is required")
	}
	signalCtx, cancel := signal.NotifyContext(cmdCtx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cfg.EnsureDirectories(); err != nil {
		return fmt.Errorf("prepare directories: %w", err)
	}
	store, err := seed.NewStore(cfg, logger)
	if err != nil {
		return err
	}
	srv, err := New(cfg, store, logger)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}
	if err := srv.Start(signalCtx); err != nil {
		return err
	}
	defer srv.Stop()

	<-signalCtx.Done()
	srv.logger.Info("movieshelf server shutting down")
	return nil
}
