// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/localfix/localfix/internal/tui/layout"
	"github.com/localfix/localfix/internal/tui/messages"
	"github.com/localfix/localfix/internal/tui/screens"
)

// mountFailed stands in for a screen whose constructor failed, so the
// stack stays consistent and the user can go back
type mountFailed struct {
	title  string
	err    error
	width  int
	height int
}

func newMountFailed(title string, err error) *mountFailed {
	return &mountFailed{title: title, err: err, width: 50, height: 10}
}

func (m *mountFailed) Init() tea.Cmd   { return nil }
func (m *mountFailed) SwipeBack() bool { return true }

func (m *mountFailed) Update(msg tea.Msg) (screens.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, screens.Keys.Back):
			return m, messages.NavigateBack()
		case key.Matches(k, screens.Keys.Quit):
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *mountFailed) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *mountFailed) View() string {
	info := layout.LayoutInfo{
		Title:     m.title,
		Error:     "This screen could not be opened",
		HelpItems: screens.Help(screens.Keys.Back, screens.Keys.Quit),
	}
	body := lipgloss.NewStyle().Padding(1, 2).Render(layout.ErrorStyle.Render(m.err.Error()))
	return layout.RenderLayout(body, info, m.width, m.height)
}
