// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package settings

import (
	"fmt"
	"strings"

	"github.com/localfix/localfix/internal/tui/layout"
)

// View renders the settings screen
func (m *Model) View() string {
	var content strings.Builder

	for i, option := range m.Options() {
		if i == m.selectedIndex {
			content.WriteString(layout.SelectedStyle.Render("> "+option) + "\n")
			continue
		}
		content.WriteString(fmt.Sprintf("  %s\n", option))
	}

	return layout.RenderLayout(content.String(), m.GetLayoutInfo(), m.width, m.height)
}
