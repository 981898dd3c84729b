// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package confirm

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/localfix/localfix/internal/logger"
	"github.com/localfix/localfix/internal/models"
	"github.com/localfix/localfix/internal/navigation"
	"github.com/localfix/localfix/internal/tui/messages"
	"github.com/localfix/localfix/internal/tui/screens"
)

type submittedMsg struct {
	report models.Report
	err    error
}

var errNoSubmitter = errors.New("submission is not available")

// Update handles messages and updates the model state
func (m *Model) Update(msg tea.Msg) (screens.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.submitting {
			return m, nil
		}
		switch {
		case key.Matches(msg, screens.Keys.Back):
			return m, messages.NavigateBack()
		case key.Matches(msg, councilKey):
			return m, messages.NavigateTo(navigation.To(navigation.CouncilSelect))
		case key.Matches(msg, submitKey):
			if m.council == "" {
				m.errText = "Choose a council before submitting"
				return m, nil
			}
			m.submitting = true
			m.errText = ""
			return m, tea.Batch(m.spinner.Tick, m.doSubmit())
		}

	case submittedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errText = "Could not submit: " + msg.err.Error()
			return m, nil
		}
		return m, messages.NavigateTo(navigation.With(navigation.ReportSubmittedParams{ReportID: msg.report.ID}))

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

func (m *Model) doSubmit() tea.Cmd {
	submit, draft, council := m.submit, m.draft, m.council
	return func() tea.Msg {
		if submit == nil {
			return submittedMsg{err: errNoSubmitter}
		}
		log := logger.GetTUILogger().With().Str("component", "confirm").Str("draft", draft.ID).Logger()

		r, err := screens.WithStore(func(ctx context.Context) (models.Report, error) {
			return submit(ctx, draft, council)
		})
		if err != nil {
			log.Error().Err(err).Msg("Submission failed")
			return submittedMsg{err: err}
		}
		log.Info().Str("report", r.ID).Str("council", council).Msg("Report submitted")
		return submittedMsg{report: r}
	}
}
