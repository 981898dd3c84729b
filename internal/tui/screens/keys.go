// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package screens

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/localfix/localfix/internal/tui/layout"
	"github.com/samber/lo"
)

// KeyMap holds the bindings shared by all screens
type KeyMap struct {
	Back   key.Binding
	Quit   key.Binding
	Select key.Binding
	Up     key.Binding
	Down   key.Binding
}

// Keys is the default key map
var Keys = KeyMap{
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
}

// Help turns bindings into footer hints
func Help(bindings ...key.Binding) []layout.HelpItem {
	return lo.Map(bindings, func(b key.Binding, _ int) layout.HelpItem {
		return layout.HelpItem{Key: b.Help().Key, Description: b.Help().Desc}
	})
}
