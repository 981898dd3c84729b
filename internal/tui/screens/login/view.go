// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/localfix/localfix/internal/tui/layout"
)

// View renders the sign-in screen
func (m *Model) View() string {
	content := lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
	return layout.RenderLayout(content, m.GetLayoutInfo(), m.width, m.height)
}
