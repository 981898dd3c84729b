// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package reportdetail

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/localfix/localfix/internal/logger"
	"github.com/localfix/localfix/internal/models"
	"github.com/localfix/localfix/internal/navigation"
	"github.com/localfix/localfix/internal/tui/messages"
	"github.com/localfix/localfix/internal/tui/screens"
)

// Update handles messages and updates the model state
func (m *Model) Update(msg tea.Msg) (screens.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		if msg.err != nil {
			m.errText = "Could not load report: " + msg.err.Error()
			return m, nil
		}
		m.report = &msg.report
		m.cursor = min(m.cursor, max(len(msg.report.Updates)-1, 0))
		return m, nil

	case withdrawnMsg:
		m.busy = false
		if msg.err != nil {
			m.errText = "Could not withdraw: " + msg.err.Error()
			return m, nil
		}
		return m, m.load()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, screens.Keys.Back):
		if m.busy {
			return nil
		}
		return messages.NavigateBack()
	case key.Matches(msg, screens.Keys.Quit):
		return tea.Quit
	}

	if m.report == nil {
		return nil
	}
	updates := m.report.Updates

	switch {
	case key.Matches(msg, screens.Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, screens.Keys.Down):
		if m.cursor < len(updates)-1 {
			m.cursor++
		}
	case key.Matches(msg, screens.Keys.Select):
		if m.cursor < len(updates) {
			return messages.NavigateTo(navigation.With(navigation.ReportUpdateParams{
				ReportID: m.reportID,
				Update:   updates[m.cursor],
			}))
		}
	case key.Matches(msg, withdrawKey):
		if m.canWithdraw() {
			m.busy = true
			m.errText = ""
			return m.withdraw()
		}
	}
	return nil
}

func (m *Model) withdraw() tea.Cmd {
	reports, id := m.reports, m.reportID
	upd := models.ReportUpdate{
		At:     m.now().UTC(),
		Status: models.ReportStatusClosed,
		Note:   "Withdrawn by reporter",
	}
	return func() tea.Msg {
		_, err := screens.WithStore(func(ctx context.Context) (struct{}, error) {
			return struct{}{}, reports.AppendUpdate(ctx, id, upd)
		})
		log := logger.GetTUILogger()
		if err != nil {
			log.Error().Err(err).Str("report", id).Msg("Withdraw failed")
		} else {
			log.Info().Str("report", id).Msg("Report withdrawn")
		}
		return withdrawnMsg{err: err}
	}
}
