// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package settings

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/localfix/localfix/internal/logger"
	"github.com/localfix/localfix/internal/storage"
	"github.com/localfix/localfix/internal/tui/messages"
	"github.com/localfix/localfix/internal/tui/screens"
	"github.com/samber/lo"
)

type savedMsg struct {
	key, value string
	err        error
}

// Update handles messages and updates the model state
func (m *Model) Update(msg tea.Msg) (screens.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.selectedIndex > 0 {
				m.selectedIndex--
			}
		case "down", "j":
			if m.selectedIndex < optionCount-1 {
				m.selectedIndex++
			}
		case "enter", " ":
			if m.saving {
				return m, nil
			}
			switch m.selectedIndex {
			case optionSwipeBack:
				return m, m.save(storage.PrefSwipeBack, lo.Ternary(m.swipeBack, "off", "on"))
			case optionTransition:
				return m, m.save(storage.PrefTransition, nextTransition(m.transition))
			}
		case "esc", "backspace":
			if m.saving {
				return m, nil
			}
			return m, messages.NavigateBack()
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case savedMsg:
		m.saving = false
		if msg.err != nil {
			m.errText = "Could not save setting: " + msg.err.Error()
			return m, nil
		}
		m.errText = ""
		switch msg.key {
		case storage.PrefSwipeBack:
			m.swipeBack = msg.value == "on"
		case storage.PrefTransition:
			m.transition = msg.value
		}
		m.status = "Saved"
		return m, messages.SessionChanged(nil)

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	return m, nil
}

func (m *Model) save(key, value string) tea.Cmd {
	if m.prefs == nil {
		return nil
	}
	m.saving = true
	prefs := m.prefs
	return func() tea.Msg {
		_, err := screens.WithStore(func(ctx context.Context) (struct{}, error) {
			return struct{}{}, prefs.SetPref(ctx, key, value)
		})
		if err != nil {
			log := logger.GetTUILogger()
			log.Error().Err(err).Str("key", key).Msg("Failed to save setting")
		}
		return savedMsg{key: key, value: value, err: err}
	}
}
