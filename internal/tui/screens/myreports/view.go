// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package myreports

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/localfix/localfix/internal/tui/layout"
)

// View renders the history screen
func (m *Model) View() string {
	content := m.list.View()
	if m.loaded && m.count == 0 && m.errText == "" {
		content = lipgloss.NewStyle().Padding(1, 2).Render(
			layout.StatsStyle.Render("You have not reported anything yet. Press n to start."))
	}
	return layout.RenderLayout(content, m.GetLayoutInfo(), m.width, m.height)
}
