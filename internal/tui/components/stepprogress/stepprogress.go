// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package stepprogress renders how far a report has moved through the
// council's workflow.
package stepprogress

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/localfix/localfix/internal/models"
)

// Stages are the statuses a report passes through, in order
var Stages = []models.ReportStatus{
	models.ReportStatusSubmitted,
	models.ReportStatusAcknowledged,
	models.ReportStatusInProgress,
	models.ReportStatusFixed,
}

var stageNames = map[models.ReportStatus]string{
	models.ReportStatusSubmitted:    "Submitted",
	models.ReportStatusAcknowledged: "Acknowledged",
	models.ReportStatusInProgress:   "In progress",
	models.ReportStatusFixed:        "Fixed",
}

var (
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
)

// Model is the report progress bar
type Model struct {
	status models.ReportStatus
	width  int
}

// New creates a progress bar for status
func New(status models.ReportStatus) Model {
	return Model{status: status, width: 20}
}

// SetWidth sets the bar width in cells
func (m Model) SetWidth(w int) Model {
	if w > 0 {
		m.width = w
	}
	return m
}

// Reached returns the number of stages the report has reached, or -1 for
// a report closed without a fix.
func (m Model) Reached() int {
	for i, s := range Stages {
		if s == m.status {
			return i + 1
		}
	}
	return -1
}

// View renders: [▓▓▓▓▓░░░░░] 2/4 Acknowledged
func (m Model) View() string {
	total := len(Stages)
	reached := m.Reached()
	if reached < 0 {
		return fmt.Sprintf("[%s] %s", dimStyle.Render(strings.Repeat("░", m.width)), dimStyle.Render("Closed"))
	}

	filled := reached * m.width / total
	bar := successStyle.Render(strings.Repeat("▓", filled)) + dimStyle.Render(strings.Repeat("░", m.width-filled))

	label := accentStyle.Render(stageNames[m.status])
	if reached == total {
		label = successStyle.Render(stageNames[m.status] + " ✓")
	}
	return fmt.Sprintf("[%s] %s %s", bar, dimStyle.Render(fmt.Sprintf("%d/%d", reached, total)), label)
}
