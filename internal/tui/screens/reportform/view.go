// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package reportform

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/localfix/localfix/internal/tui/layout"
)

// View renders the details screen
func (m *Model) View() string {
	to := "No council selected yet"
	if m.council != "" {
		to = "Sending to " + m.council
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		layout.StatsStyle.Render(to),
		"",
		m.form.View(),
	)
	return layout.RenderLayout(lipgloss.NewStyle().Padding(1, 2).Render(content), m.GetLayoutInfo(), m.width, m.height)
}
