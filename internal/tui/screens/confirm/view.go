// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package confirm

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/localfix/localfix/internal/tui/components/card"
	"github.com/localfix/localfix/internal/tui/components/reportcard"
	"github.com/localfix/localfix/internal/tui/layout"
)

// View renders the review screen
func (m *Model) View() string {
	dims := layout.GetContentArea(m.GetLayoutInfo(), m.width, m.height)
	style := card.DefaultStyle()
	style.Width = min(dims.Width-4, 72)

	body := card.Render("Your report", reportcard.RenderDraft(m.draft, m.council), style)

	var footer string
	switch {
	case m.submitting:
		footer = m.spinner.View() + " Submitting..."
	case m.council == "":
		footer = layout.ErrorStyle.Render("No council selected. Press c to choose one.")
	default:
		footer = layout.StatsStyle.Render("Press enter to send this report to " + m.council)
	}

	content := lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, body, footer))
	return layout.RenderLayout(content, m.GetLayoutInfo(), m.width, m.height)
}
