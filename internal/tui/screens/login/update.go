// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/localfix/localfix/internal/logger"
	"github.com/localfix/localfix/internal/navigation"
	"github.com/localfix/localfix/internal/storage"
	"github.com/localfix/localfix/internal/tui/messages"
	"github.com/localfix/localfix/internal/tui/screens"
)

type signInFailedMsg struct{ err error }

// Update handles messages and updates the model state
func (m *Model) Update(msg tea.Msg) (screens.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, messages.NavigateBack()
		case "ctrl+c":
			return m, tea.Quit
		}
		if m.saving {
			return m, nil
		}

	case signInFailedMsg:
		m.saving = false
		m.errText = "Could not sign in: " + msg.err.Error()
		m.initForm()
		return m, m.form.Init()

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted && !m.saving {
		m.saving = true
		m.errText = ""
		return m, m.signIn(strings.TrimSpace(m.name), strings.TrimSpace(m.email))
	}
	return m, cmd
}

// signIn stores the identity and a fresh session token, then resets the
// stack to home
func (m *Model) signIn(name, email string) tea.Cmd {
	prefs := m.prefs
	return func() tea.Msg {
		log := logger.GetTUILogger().With().Str("component", "login").Logger()

		_, err := screens.WithStore(func(ctx context.Context) (struct{}, error) {
			if err := prefs.SetPref(ctx, storage.PrefUserName, name); err != nil {
				return struct{}{}, err
			}
			return struct{}{}, prefs.SetPref(ctx, storage.PrefAuthToken, uuid.NewString())
		})
		if err != nil {
			log.Error().Err(err).Msg("Sign in failed")
			return signInFailedMsg{err: err}
		}

		log.Info().Str("user", name).Str("email_domain", email[strings.Index(email, "@")+1:]).Msg("Signed in")
		return messages.SessionChangedMsg{Then: messages.ResetNavigation(navigation.To(navigation.Home))}
	}
}
