// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package messages

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/localfix/localfix/internal/navigation"
)

// Navigation messages for screen transitions within the TUI.
// Screens return these; only the host applies them to the stack.

// NavigateToMsg pushes Route
type NavigateToMsg struct {
	Route navigation.Route
}

// NavigateBackMsg pops the current screen
type NavigateBackMsg struct{}

// ResetNavigationMsg replaces the whole stack with Route
type ResetNavigationMsg struct {
	Route navigation.Route
}

// NavigateTo returns a command requesting a push
func NavigateTo(r navigation.Route) tea.Cmd {
	return func() tea.Msg { return NavigateToMsg{Route: r} }
}

// NavigateBack returns a command requesting a pop
func NavigateBack() tea.Cmd {
	return func() tea.Msg { return NavigateBackMsg{} }
}

// ResetNavigation returns a command requesting a reset
func ResetNavigation(r navigation.Route) tea.Cmd {
	return func() tea.Msg { return ResetNavigationMsg{Route: r} }
}
