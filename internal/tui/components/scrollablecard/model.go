// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package scrollablecard

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/localfix/localfix/internal/tui/components/card"
)

// Model is a card whose body scrolls when focused
type Model struct {
	title    string
	viewport viewport.Model
	focused  bool
}

// New creates a scrollable card sized to the inner content box
func New(title, content string, width, height int) Model {
	vp := viewport.New(width, height)
	vp.SetContent(content)
	return Model{title: title, viewport: vp}
}

// Update scrolls the body; unfocused cards ignore input
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the card around the visible part of the body
func (m Model) View() string {
	style := card.DefaultStyle()
	if m.focused {
		style = card.FocusedStyle()
	}
	return card.Render(m.title, m.viewport.View(), style)
}

// SetFocus sets whether the card takes scroll input
func (m *Model) SetFocus(focused bool) { m.focused = focused }

// IsFocused reports whether the card takes scroll input
func (m Model) IsFocused() bool { return m.focused }

// SetSize resizes the visible body
func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
}

// SetContent replaces the body
func (m *Model) SetContent(content string) { m.viewport.SetContent(content) }

// AtTop reports whether the body is scrolled to the top
func (m Model) AtTop() bool { return m.viewport.AtTop() }

// AtBottom reports whether the body is scrolled to the end
func (m Model) AtBottom() bool { return m.viewport.AtBottom() }
