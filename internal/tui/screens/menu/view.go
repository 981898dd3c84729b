// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package menu

import (
	"github.com/localfix/localfix/internal/tui/layout"
)

// View renders the menu screen
func (m *Model) View() string {
	return layout.RenderLayout(m.list.View(), m.GetLayoutInfo(), m.width, m.height)
}
