// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package reportform

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/localfix/localfix/internal/models"
	"github.com/localfix/localfix/internal/navigation"
	"github.com/localfix/localfix/internal/tui/messages"
	"github.com/localfix/localfix/internal/tui/screens"
)

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

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		draft := m.draft()
		// a completed form cannot be submitted twice
		m.initForm()
		return m, messages.NavigateTo(navigation.With(navigation.ConfirmReportParams{Draft: draft}))
	}
	return m, cmd
}

func (m *Model) draft() models.ReportDraft {
	return models.ReportDraft{
		ID:          uuid.NewString(),
		Category:    m.category,
		Description: strings.TrimSpace(m.description),
		Location:    strings.TrimSpace(m.location),
		CreatedAt:   m.now(),
	}
}
