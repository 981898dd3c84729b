// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package menu

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/localfix/localfix/internal/tui/messages"
	"github.com/localfix/localfix/internal/tui/screens"
)

// Update handles messages and updates the model state
func (m *Model) Update(msg tea.Msg) (screens.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, screens.Keys.Select):
			if it, ok := m.Selected(); ok {
				m.errText = ""
				return m, it.Cmd
			}
			return m, nil
		case key.Matches(msg, screens.Keys.Back):
			return m, messages.NavigateBack()
		case key.Matches(msg, screens.Keys.Quit):
			return m, tea.Quit
		}

	case messages.StatusMsg:
		if msg.Error {
			m.errText = msg.Text
		} else {
			m.errText = ""
			m.status = msg.Text
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}
