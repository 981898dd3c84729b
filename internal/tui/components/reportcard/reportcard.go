// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package reportcard

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/localfix/localfix/internal/models"
	"github.com/localfix/localfix/internal/tui/components/card"
	"github.com/samber/lo"
)

const timeLayout = "2 Jan 2006 15:04"

// Render shows a submitted report with its update history
func Render(r models.Report) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5EC4A8")).Render(r.Category.Label())
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Render(r.Description)

	fields := card.Fields([]card.Field{
		{Label: "Status", Value: Status(r.Status)},
		{Label: "Where", Value: r.Location},
		{Label: "Council", Value: lo.Ternary(r.Council == "", "not set", r.Council)},
		{Label: "Submitted", Value: r.SubmittedAt.Local().Format(timeLayout)},
		{Label: "Reference", Value: r.ID},
	})

	return lipgloss.JoinVertical(lipgloss.Left, title, "", desc, "", fields)
}

// RenderDraft shows a report that has not been submitted yet
func RenderDraft(d models.ReportDraft, council string) string {
	return card.Fields([]card.Field{
		{Label: "Category", Value: d.Category.Label()},
		{Label: "Where", Value: d.Location},
		{Label: "Council", Value: lo.Ternary(council == "", "not set", council)},
		{Label: "Details", Value: d.Description},
	})
}

// RenderUpdate shows one posted update
func RenderUpdate(u models.ReportUpdate) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		Status(u.Status),
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(u.At.Local().Format(timeLayout)),
		"",
		u.Note,
	)
}

// UpdateLine is the one-line summary used in lists
func UpdateLine(u models.ReportUpdate) string {
	return fmt.Sprintf("%s  %s  %s", u.At.Local().Format(timeLayout), statusText(u.Status), u.Note)
}

// Status renders a report status with its icon and color
func Status(s models.ReportStatus) string {
	icon, color, _ := statusDisplay(s)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(icon + " " + statusText(s))
}

func statusText(s models.ReportStatus) string {
	_, _, text := statusDisplay(s)
	return text
}

func statusDisplay(s models.ReportStatus) (icon, color, text string) {
	switch s {
	case models.ReportStatusSubmitted:
		return "○", "241", "Submitted"
	case models.ReportStatusAcknowledged:
		return "◔", "39", "Acknowledged"
	case models.ReportStatusInProgress:
		return "◐", "226", "In progress"
	case models.ReportStatusFixed:
		return "●", "82", "Fixed"
	case models.ReportStatusClosed:
		return "✗", "245", "Closed"
	default:
		return "?", "241", "Unknown"
	}
}
