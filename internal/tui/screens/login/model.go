// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/localfix/localfix/internal/tui/layout"
	"github.com/localfix/localfix/internal/tui/screens"
)

// Model is the sign-in screen
type Model struct {
	form    *huh.Form
	name    string
	email   string
	prefs   screens.PrefStore
	trail   []string
	swipe   bool
	saving  bool
	errText string
	width   int
	height  int
}

// New creates the sign-in screen
func New(p screens.Props) (screens.Screen, error) {
	m := &Model{
		prefs:  p.Services.Prefs,
		trail:  p.Trail,
		swipe:  p.Session.SwipeBack,
		width:  50,
		height: 10,
	}
	m.initForm()
	return m, nil
}

func (m *Model) initForm() {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Your name").
				Placeholder("Shown on your reports").
				Value(&m.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),

			huh.NewInput().
				Key("email").
				Title("Email").
				Placeholder("you@example.com").
				Value(&m.email).
				Validate(validateEmail),
		),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(false)
}

func validateEmail(s string) error {
	s = strings.TrimSpace(s)
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 || !strings.Contains(s[at:], ".") {
		return fmt.Errorf("enter a valid email address")
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

// SwipeBack reports whether an edge swipe may pop this screen
func (m *Model) SwipeBack() bool {
	return m.swipe && !m.saving
}

// GetLayoutInfo returns layout information for the sign-in screen
func (m *Model) GetLayoutInfo() layout.LayoutInfo {
	status := "Sign in to follow your reports"
	if m.saving {
		status = "Signing in…"
	}
	return layout.LayoutInfo{
		Title:       "Sign in",
		Breadcrumbs: layout.Crumbs(m.trail, 4),
		Status:      status,
		Error:       m.errText,
		HelpItems: []layout.HelpItem{
			{Key: "tab", Description: "next field"},
			{Key: "enter", Description: "submit"},
			{Key: "esc", Description: "back"},
		},
	}
}

// SetSize updates the model's dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	dims := layout.GetContentArea(m.GetLayoutInfo(), width, height)
	m.form = m.form.WithWidth(min(dims.Width-4, 60))
}
