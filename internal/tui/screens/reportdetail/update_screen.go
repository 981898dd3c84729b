// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package reportdetail

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/localfix/localfix/internal/models"
	"github.com/localfix/localfix/internal/navigation"
	"github.com/localfix/localfix/internal/tui/components/reportcard"
	"github.com/localfix/localfix/internal/tui/components/scrollablecard"
	"github.com/localfix/localfix/internal/tui/layout"
	"github.com/localfix/localfix/internal/tui/messages"
	"github.com/localfix/localfix/internal/tui/screens"
)

// UpdateModel shows a single posted update in a scrollable card
type UpdateModel struct {
	reportID string
	update   models.ReportUpdate
	card     scrollablecard.Model
	trail    []string
	swipe    bool
	width    int
	height   int
}

// NewUpdate creates the update screen. The route must carry ReportUpdateParams.
func NewUpdate(p screens.Props) (screens.Screen, error) {
	params, err := screens.RequireParams[navigation.ReportUpdateParams](p)
	if err != nil {
		return nil, err
	}
	c := scrollablecard.New("Update", reportcard.RenderUpdate(params.Update), 50, 10)
	c.SetFocus(true)
	return &UpdateModel{
		reportID: params.ReportID,
		update:   params.Update,
		card:     c,
		trail:    p.Trail,
		swipe:    p.Session.SwipeBack,
		width:    50,
		height:   10,
	}, nil
}

func (m *UpdateModel) Init() tea.Cmd { return nil }

// SwipeBack reports whether an edge swipe may pop this screen
func (m *UpdateModel) SwipeBack() bool { return m.swipe }

// Update handles messages and updates the model state
func (m *UpdateModel) Update(msg tea.Msg) (screens.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(msg, screens.Keys.Back):
			return m, messages.NavigateBack()
		}
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.card, cmd = m.card.Update(msg)
	return m, cmd
}

// GetLayoutInfo returns layout information for the update screen
func (m *UpdateModel) GetLayoutInfo() layout.LayoutInfo {
	return layout.LayoutInfo{
		Title:       "Update",
		Breadcrumbs: layout.Crumbs(m.trail, 4),
		Status:      "Report " + m.reportID,
		HelpItems:   screens.Help(screens.Keys.Up, screens.Keys.Down, screens.Keys.Back),
	}
}

// SetSize updates the model's dimensions
func (m *UpdateModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	dims := layout.GetContentArea(m.GetLayoutInfo(), width, height)
	m.card.SetSize(min(dims.Width-4, 80), dims.Height-1)
}

// View renders the update screen
func (m *UpdateModel) View() string {
	return layout.RenderLayout(m.card.View(), m.GetLayoutInfo(), m.width, m.height)
}
