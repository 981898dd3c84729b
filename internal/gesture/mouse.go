// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package gesture

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FromMouse converts a terminal mouse event to a touch sample. Cell
// coordinates are scaled to logical px. Only left-button drags map to touches.
func FromMouse(msg tea.MouseMsg, at time.Time, cellWidthPx, cellHeightPx float64) (TouchMsg, bool) {
	t := TouchMsg{
		X:  float64(msg.X) * cellWidthPx,
		Y:  float64(msg.Y) * cellHeightPx,
		At: at,
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return TouchMsg{}, false
		}
		t.Phase = TouchStart
	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonLeft {
			return TouchMsg{}, false
		}
		t.Phase = TouchMove
	case tea.MouseActionRelease:
		t.Phase = TouchEnd
	default:
		return TouchMsg{}, false
	}
	return t, true
}
