// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package reportdetail shows a single report and its updates.
package reportdetail

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/localfix/localfix/internal/models"
	"github.com/localfix/localfix/internal/navigation"
	"github.com/localfix/localfix/internal/tui/layout"
	"github.com/localfix/localfix/internal/tui/screens"
)

var withdrawKey = key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "withdraw"))

type reportLoadedMsg struct {
	report models.Report
	err    error
}

type withdrawnMsg struct {
	err error
}

// Model shows one report with a cursor over its updates
type Model struct {
	reportID string
	reports  screens.ReportStore
	now      func() time.Time
	report   *models.Report
	cursor   int
	busy     bool
	errText  string
	trail    []string
	swipe    bool
	width    int
	height   int
}

// New creates the report screen. The route must carry ReportDetailParams.
func New(p screens.Props) (screens.Screen, error) {
	params, err := screens.RequireParams[navigation.ReportDetailParams](p)
	if err != nil {
		return nil, err
	}
	now := p.Services.Now
	if now == nil {
		now = time.Now
	}
	return &Model{
		reportID: params.ReportID,
		reports:  p.Services.Reports,
		now:      now,
		trail:    p.Trail,
		swipe:    p.Session.SwipeBack,
		width:    50,
		height:   10,
	}, nil
}

// Init loads the report
func (m *Model) Init() tea.Cmd {
	return m.load()
}

func (m *Model) load() tea.Cmd {
	if m.reports == nil {
		return nil
	}
	reports, id := m.reports, m.reportID
	return func() tea.Msg {
		r, err := screens.WithStore(func(ctx context.Context) (models.Report, error) {
			return reports.GetReport(ctx, id)
		})
		return reportLoadedMsg{report: r, err: err}
	}
}

// SwipeBack reports whether an edge swipe may pop this screen
func (m *Model) SwipeBack() bool {
	return m.swipe && !m.busy
}

// Report returns the loaded report, if any
func (m *Model) Report() (models.Report, bool) {
	if m.report == nil {
		return models.Report{}, false
	}
	return *m.report, true
}

// Cursor returns the index of the highlighted update
func (m *Model) Cursor() int {
	return m.cursor
}

// canWithdraw reports whether the council has not finished with the report
func (m *Model) canWithdraw() bool {
	if m.report == nil || m.busy {
		return false
	}
	return m.report.Status != models.ReportStatusFixed && m.report.Status != models.ReportStatusClosed
}

// GetLayoutInfo returns layout information for the report screen
func (m *Model) GetLayoutInfo() layout.LayoutInfo {
	info := layout.LayoutInfo{
		Title:       "Report",
		Breadcrumbs: layout.Crumbs(m.trail, 4),
		Status:      "Reference " + m.reportID,
		Error:       m.errText,
	}
	bindings := []key.Binding{screens.Keys.Up, screens.Keys.Down, screens.Keys.Select}
	if m.canWithdraw() {
		bindings = append(bindings, withdrawKey)
	}
	info.HelpItems = screens.Help(append(bindings, screens.Keys.Back)...)
	if m.report != nil {
		info.Title = m.report.Category.Label()
	}
	return info
}

// SetSize updates the model's dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
