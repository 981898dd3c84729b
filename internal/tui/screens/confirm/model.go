// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package confirm

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/localfix/localfix/internal/models"
	"github.com/localfix/localfix/internal/navigation"
	"github.com/localfix/localfix/internal/tui/layout"
	"github.com/localfix/localfix/internal/tui/screens"
)

var (
	submitKey  = key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "submit"))
	councilKey = key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "choose council"))
)

// Model reviews a draft and submits it
type Model struct {
	draft      models.ReportDraft
	council    string
	submit     screens.SubmitFunc
	spinner    spinner.Model
	submitting bool
	errText    string
	trail      []string
	swipe      bool
	width      int
	height     int
}

// New creates the review screen. The route must carry ConfirmReportParams.
func New(p screens.Props) (screens.Screen, error) {
	params, err := screens.RequireParams[navigation.ConfirmReportParams](p)
	if err != nil {
		return nil, err
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(layout.PrimaryColor)

	return &Model{
		draft:   params.Draft,
		council: p.Session.Council,
		submit:  p.Services.Submit,
		spinner: s,
		trail:   p.Trail,
		swipe:   p.Session.SwipeBack,
		width:   50,
		height:  10,
	}, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// SwipeBack reports whether an edge swipe may pop this screen
func (m *Model) SwipeBack() bool {
	return m.swipe && !m.submitting
}

// Submitting reports whether a submission is in flight
func (m *Model) Submitting() bool {
	return m.submitting
}

// GetLayoutInfo returns layout information for the review screen
func (m *Model) GetLayoutInfo() layout.LayoutInfo {
	info := layout.LayoutInfo{
		Title:       "Check your report",
		Breadcrumbs: layout.Crumbs(m.trail, 4),
		Error:       m.errText,
	}
	switch {
	case m.submitting:
		info.Status = "Sending to " + m.council
	case m.council == "":
		info.HelpItems = screens.Help(councilKey, screens.Keys.Back)
	default:
		info.HelpItems = screens.Help(submitKey, screens.Keys.Back)
	}
	return info
}

// SetSize updates the model's dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
