// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package reportdetail

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/localfix/localfix/internal/tui/components/card"
	"github.com/localfix/localfix/internal/tui/components/reportcard"
	"github.com/localfix/localfix/internal/tui/components/stepprogress"
	"github.com/localfix/localfix/internal/tui/layout"
)

// View renders the report screen
func (m *Model) View() string {
	if m.report == nil {
		msg := "Loading..."
		if m.errText != "" {
			msg = ""
		}
		return layout.RenderLayout(lipgloss.NewStyle().Padding(1, 2).Render(msg), m.GetLayoutInfo(), m.width, m.height)
	}

	dims := layout.GetContentArea(m.GetLayoutInfo(), m.width, m.height)
	style := card.DefaultStyle()
	style.Width = min(dims.Width-4, 80)

	lines := make([]string, 0, len(m.report.Updates))
	for i, u := range m.report.Updates {
		line := reportcard.UpdateLine(u)
		if i == m.cursor {
			line = layout.SelectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		lines = append(lines, layout.StatsStyle.Render("No updates yet"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		card.Render("Details", lipgloss.JoinVertical(lipgloss.Left,
			reportcard.Render(*m.report),
			"",
			stepprogress.New(m.report.Status).SetWidth(min(style.Width-20, 30)).View(),
		), style),
		card.Render("Updates", lipgloss.JoinVertical(lipgloss.Left, lines...), style),
	)
	return layout.RenderLayout(lipgloss.NewStyle().Padding(0, 2).Render(content), m.GetLayoutInfo(), m.width, m.height)
}
