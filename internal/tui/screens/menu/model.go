// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package menu implements the list-of-choices screens: onboarding, home,
// council selection, issue category and profile.
package menu

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/localfix/localfix/internal/tui/layout"
	"github.com/localfix/localfix/internal/tui/screens"
	"github.com/samber/lo"
)

// Item is one choice; Cmd runs when it is selected
type Item struct {
	Label string
	Hint  string
	Cmd   tea.Cmd
}

// FilterValue returns the value to filter against
func (i Item) FilterValue() string { return i.Label }

// Title returns the item label
func (i Item) Title() string { return i.Label }

// Description returns the item hint
func (i Item) Description() string { return i.Hint }

// Model is a screen presenting a list of choices
type Model struct {
	list      list.Model
	title     string
	trail     []string
	status    string
	errText   string
	swipeBack bool
	width     int
	height    int
}

// New creates a menu screen
func New(title string, items []Item, p screens.Props) *Model {
	l := list.New(
		lo.Map(items, func(it Item, _ int) list.Item { return it }),
		list.NewDefaultDelegate(), 50, 10,
	)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	return &Model{
		list:      l,
		title:     title,
		trail:     p.Trail,
		swipeBack: p.Session.SwipeBack,
		width:     50,
		height:    10,
	}
}

// WithStatus sets the header status line
func (m *Model) WithStatus(status string) *Model {
	m.status = status
	return m
}

// WithoutSwipeBack disables edge swipe on this screen
func (m *Model) WithoutSwipeBack() *Model {
	m.swipeBack = false
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// SwipeBack reports whether an edge swipe may pop this screen
func (m *Model) SwipeBack() bool {
	return m.swipeBack
}

// Selected returns the highlighted item
func (m *Model) Selected() (Item, bool) {
	it, ok := m.list.SelectedItem().(Item)
	return it, ok
}

// GetLayoutInfo returns layout information for the menu screen
func (m *Model) GetLayoutInfo() layout.LayoutInfo {
	return layout.LayoutInfo{
		Title:       m.title,
		Breadcrumbs: layout.Crumbs(m.trail, 4),
		Status:      m.status,
		Error:       m.errText,
		HelpItems:   screens.Help(screens.Keys.Up, screens.Keys.Down, screens.Keys.Select, screens.Keys.Back, screens.Keys.Quit),
	}
}

// SetSize updates the model's dimensions and list size
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	dims := layout.GetContentArea(m.GetLayoutInfo(), width, height)
	m.list.SetWidth(dims.Width)
	m.list.SetHeight(dims.Height)
}
