// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/localfix/localfix/internal/bridge"
	"github.com/localfix/localfix/internal/config"
	"github.com/localfix/localfix/internal/logger"
	"github.com/localfix/localfix/internal/storage"
	"github.com/localfix/localfix/internal/tui"
)

func runApp(parent context.Context, configPath string) error {
	if parent == nil {
		parent = context.Background()
	}

	cfg, err := config.NewConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Log to file only, the terminal belongs to the TUI
	if err := logger.Initialize(&cfg.Log); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.CloseGlobal()

	mainLog := logger.GetLogger("main")
	mainLog.Info().Str("version", appVersion).Msg("Starting localfix")

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	store, err := storage.Open(ctx, cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open local store: %w", err)
	}
	defer store.Close()

	var (
		attach func(*tea.Program)
		opts   []tui.Option
	)
	if cfg.Bridge.Enabled {
		holder := bridge.NewSnapshotHolder()
		srv := bridge.New(&cfg.Bridge, holder)
		attach = func(p *tea.Program) { srv.Attach(p) }
		opts = append(opts, tui.WithPublisher(holder.Publish))

		go func() {
			if err := srv.Run(ctx); err != nil {
				mainLog.Error().Err(err).Msg("Touch bridge stopped")
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	tuiErrChan := make(chan error, 1)
	go func() {
		mainLog.Info().Msg("Starting TUI")
		tuiErrChan <- tui.StartTUI(ctx, cfg, store, attach, opts...)
	}()

	select {
	case sig := <-sigChan:
		mainLog.Info().Msgf("Received signal %v, shutting down...", sig)
		cancel()
		err = <-tuiErrChan
	case err = <-tuiErrChan:
	}
	if err != nil {
		mainLog.Error().Err(err).Msg("Error running TUI")
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	mainLog.Info().Msg("Application shutting down")
	return nil
}
