// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package confirm

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/localfix/localfix/internal/models"
	"github.com/localfix/localfix/internal/navigation"
	"github.com/localfix/localfix/internal/tui/components/card"
	"github.com/localfix/localfix/internal/tui/components/reportcard"
	"github.com/localfix/localfix/internal/tui/layout"
	"github.com/localfix/localfix/internal/tui/messages"
	"github.com/localfix/localfix/internal/tui/screens"
)

var (
	doneKey = key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "done"))
	viewKey = key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view report"))
)

type reportLoadedMsg struct {
	report models.Report
	err    error
}

// Submitted thanks the user after a submission. The report is final, so
// neither esc nor an edge swipe returns to the review screen.
type Submitted struct {
	reportID string
	reports  screens.ReportStore
	report   *models.Report
	errText  string
	width    int
	height   int
}

// NewSubmitted creates the confirmation screen. The route must carry
// ReportSubmittedParams.
func NewSubmitted(p screens.Props) (screens.Screen, error) {
	params, err := screens.RequireParams[navigation.ReportSubmittedParams](p)
	if err != nil {
		return nil, err
	}
	return &Submitted{reportID: params.ReportID, reports: p.Services.Reports, width: 50, height: 10}, nil
}

func (m *Submitted) Init() tea.Cmd {
	if m.reports == nil {
		return nil
	}
	reports, id := m.reports, m.reportID
	return func() tea.Msg {
		r, err := screens.WithStore(func(ctx context.Context) (models.Report, error) {
			return reports.GetReport(ctx, id)
		})
		return reportLoadedMsg{report: r, err: err}
	}
}

func (m *Submitted) SwipeBack() bool { return false }

// Update handles messages and updates the model state
func (m *Submitted) Update(msg tea.Msg) (screens.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		m.report = &msg.report

	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(msg, doneKey):
			return m, messages.ResetNavigation(navigation.To(navigation.Home))
		case key.Matches(msg, viewKey):
			return m, tea.Sequence(
				messages.ResetNavigation(navigation.To(navigation.Home)),
				messages.NavigateTo(navigation.With(navigation.ReportDetailParams{ReportID: m.reportID})),
			)
		}

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

// GetLayoutInfo returns layout information for the confirmation screen
func (m *Submitted) GetLayoutInfo() layout.LayoutInfo {
	return layout.LayoutInfo{
		Title:     "Report sent",
		Status:    "Reference " + m.reportID,
		Error:     m.errText,
		HelpItems: screens.Help(doneKey, viewKey),
	}
}

// SetSize updates the model's dimensions
func (m *Submitted) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the confirmation screen
func (m *Submitted) View() string {
	lines := []string{
		layout.SuccessStyle.Render("✓ Thank you. Your report has been sent."),
		"",
	}
	if m.report != nil {
		dims := layout.GetContentArea(m.GetLayoutInfo(), m.width, m.height)
		style := card.DefaultStyle()
		style.Width = min(dims.Width-4, 72)
		lines = append(lines, card.Render("Summary", reportcard.Render(*m.report), style))
	}
	content := lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return layout.RenderLayout(content, m.GetLayoutInfo(), m.width, m.height)
}
