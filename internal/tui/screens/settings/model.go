// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package settings

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/localfix/localfix/internal/transition"
	"github.com/localfix/localfix/internal/tui/layout"
	"github.com/localfix/localfix/internal/tui/screens"
	"github.com/samber/lo"
)

const (
	optionSwipeBack = iota
	optionTransition
	optionCount
)

// Model is the model for the settings screen.
type Model struct {
	selectedIndex int
	swipeBack     bool
	transition    string
	prefs         screens.PrefStore
	saving        bool
	status        string
	errText       string
	trail         []string
	width         int
	height        int
}

// New creates the settings screen from the current session
func New(p screens.Props) (screens.Screen, error) {
	return &Model{
		swipeBack:  p.Session.SwipeBack,
		transition: p.Session.Transition,
		prefs:      p.Services.Prefs,
		trail:      p.Trail,
		width:      50,
		height:     10,
	}, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// SwipeBack reports whether an edge swipe may pop this screen
func (m *Model) SwipeBack() bool {
	return m.swipeBack && !m.saving
}

// Options returns the rendered option labels
func (m *Model) Options() []string {
	return []string{
		"Swipe back from the edge: " + lo.Ternary(m.swipeBack, "On", "Off"),
		"Screen transition: " + lo.Ternary(m.transition == "", "default", m.transition),
	}
}

// nextTransition cycles default, then every type in order
func nextTransition(current string) string {
	types := transition.Types()
	_, idx, found := lo.FindIndexOf(types, func(t transition.Type) bool { return string(t) == current })
	if !found {
		return string(types[0])
	}
	return string(types[(idx+1)%len(types)])
}

// GetLayoutInfo returns layout information for the settings screen
func (m *Model) GetLayoutInfo() layout.LayoutInfo {
	return layout.LayoutInfo{
		Title:       "Settings",
		Breadcrumbs: layout.Crumbs(m.trail, 4),
		Status:      m.status,
		Error:       m.errText,
		HelpItems: []layout.HelpItem{
			{Key: "↑/k", Description: "up"},
			{Key: "↓/j", Description: "down"},
			{Key: "enter", Description: "change"},
			{Key: "esc", Description: "back"},
			{Key: "q", Description: "quit"},
		},
	}
}

// SetSize updates the model's dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
