// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package reportform

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/localfix/localfix/internal/models"
	"github.com/localfix/localfix/internal/navigation"
	"github.com/localfix/localfix/internal/tui/layout"
	"github.com/localfix/localfix/internal/tui/screens"
)

// Model is the issue details screen: what and where, for a chosen category
type Model struct {
	category    models.Category
	form        *huh.Form
	description string
	location    string
	council     string
	now         func() time.Time
	trail       []string
	swipe       bool
	width       int
	height      int
}

// New creates the details form. The route must carry IssueDetailsParams.
func New(p screens.Props) (screens.Screen, error) {
	params, err := screens.RequireParams[navigation.IssueDetailsParams](p)
	if err != nil {
		return nil, err
	}
	now := p.Services.Now
	if now == nil {
		now = time.Now
	}
	m := &Model{
		category: params.Category,
		council:  p.Session.Council,
		now:      now,
		trail:    p.Trail,
		swipe:    p.Session.SwipeBack,
		width:    50,
		height:   10,
	}
	m.initForm()
	return m, nil
}

func (m *Model) initForm() {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Key("description").
				Title("What is wrong?").
				Placeholder("Describe the " + strings.ToLower(m.category.Label()) + "...").
				Value(&m.description).
				Validate(required("a description")),

			huh.NewInput().
				Key("location").
				Title("Where is it?").
				Placeholder("Street, landmark or postcode").
				Value(&m.location).
				Validate(required("a location")),
		),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(false)
}

func required(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("please add %s", what)
		}
		return nil
	}
}

func (m *Model) Init() tea.Cmd {
	return m.form.Init()
}

// SwipeBack reports whether an edge swipe may pop this screen
func (m *Model) SwipeBack() bool {
	return m.swipe
}

// Category returns the category the report is about
func (m *Model) Category() models.Category {
	return m.category
}

// GetLayoutInfo returns layout information for the details screen
func (m *Model) GetLayoutInfo() layout.LayoutInfo {
	return layout.LayoutInfo{
		Title:       "Report: " + m.category.Label(),
		Breadcrumbs: layout.Crumbs(m.trail, 4),
		Status:      "Add the details your council needs",
		HelpItems: []layout.HelpItem{
			{Key: "tab", Description: "next field"},
			{Key: "enter", Description: "continue"},
			{Key: "esc", Description: "back"},
		},
	}
}

// SetSize updates the model's dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	dims := layout.GetContentArea(m.GetLayoutInfo(), width, height)
	m.form = m.form.WithWidth(min(dims.Width-4, 72))
}
