// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package messages

import tea "github.com/charmbracelet/bubbletea"

// SessionChangedMsg tells the host that stored preferences changed. The
// host reloads the session first and then runs Then, so a navigation in
// Then mounts with the fresh session.
type SessionChangedMsg struct {
	Then tea.Cmd
}

// SessionChanged returns a command reporting a session change
func SessionChanged(then tea.Cmd) tea.Cmd {
	return func() tea.Msg { return SessionChangedMsg{Then: then} }
}

// StatusMsg shows a transient line in a screen's header
type StatusMsg struct {
	Text  string
	Error bool
}

// Status returns a command carrying a status line
func Status(text string, isErr bool) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text, Error: isErr} }
}
