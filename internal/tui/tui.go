// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/localfix/localfix/internal/config"
	"github.com/localfix/localfix/internal/storage"
	"github.com/localfix/localfix/internal/tui/screens"
)

// StartTUI initializes and runs the TUI application until the user quits
// or ctx is cancelled. attach, when set, receives the program before it
// runs so the touch bridge can forward messages into it.
func StartTUI(ctx context.Context, cfg *config.AppConfig, store *storage.Store, attach func(*tea.Program), opts ...Option) error {
	session, err := screens.LoadSession(ctx, store, 0)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	services := screens.Services{
		Prefs:    store,
		Reports:  store,
		Submit:   screens.LocalSubmitter(store, time.Now),
		Councils: cfg.Councils,
		Now:      time.Now,
	}
	mainModel := NewMainModel(DefaultRegistry(), services, session, OptionsFromConfig(cfg), opts...)

	p := tea.NewProgram(mainModel,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	if attach != nil {
		attach(p)
	}

	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
