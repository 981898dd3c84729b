// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package myreports

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/localfix/localfix/internal/logger"
	"github.com/localfix/localfix/internal/navigation"
	"github.com/localfix/localfix/internal/tui/messages"
	"github.com/localfix/localfix/internal/tui/screens"
)

// Update handles messages and updates the model state
func (m *Model) Update(msg tea.Msg) (screens.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsLoadedMsg:
		if msg.err != nil {
			log := logger.GetTUILogger()
			log.Error().Err(msg.err).Msg("Failed to load reports")
			m.loaded = true
			m.errText = "Could not load your reports"
			return m, nil
		}
		return m, m.setReports(msg.reports)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, screens.Keys.Select):
			if r, ok := m.selected(); ok {
				return m, messages.NavigateTo(navigation.With(navigation.ReportDetailParams{ReportID: r.ID}))
			}
			return m, nil
		case key.Matches(msg, newKey):
			return m, messages.NavigateTo(navigation.To(navigation.IssueCategory))
		case key.Matches(msg, screens.Keys.Back):
			return m, messages.NavigateBack()
		case key.Matches(msg, screens.Keys.Quit):
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}
