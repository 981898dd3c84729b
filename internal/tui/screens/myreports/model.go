// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package myreports

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/localfix/localfix/internal/models"
	"github.com/localfix/localfix/internal/tui/components/reportcard"
	"github.com/localfix/localfix/internal/tui/layout"
	"github.com/localfix/localfix/internal/tui/screens"
	"github.com/samber/lo"
)

var newKey = key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new report"))

type reportItem struct {
	report models.Report
}

func (i reportItem) FilterValue() string { return i.report.Location }

func (i reportItem) Title() string {
	return fmt.Sprintf("%s · %s", i.report.Category.Label(), i.report.Location)
}

func (i reportItem) Description() string {
	return reportcard.Status(i.report.Status) + "  " + i.report.SubmittedAt.Local().Format("2 Jan 2006")
}

type reportsLoadedMsg struct {
	reports []models.Report
	err     error
}

// Model lists the reports in the local history
type Model struct {
	list    list.Model
	reports screens.ReportStore
	loaded  bool
	count   int
	errText string
	trail   []string
	swipe   bool
	width   int
	height  int
}

// New creates the report history screen
func New(p screens.Props) (screens.Screen, error) {
	l := list.New(nil, list.NewDefaultDelegate(), 50, 10)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	return &Model{
		list:    l,
		reports: p.Services.Reports,
		trail:   p.Trail,
		swipe:   p.Session.SwipeBack,
		width:   50,
		height:  10,
	}, nil
}

// Init loads the history
func (m *Model) Init() tea.Cmd {
	if m.reports == nil {
		return func() tea.Msg { return reportsLoadedMsg{} }
	}
	reports := m.reports
	return func() tea.Msg {
		rs, err := screens.WithStore(func(ctx context.Context) ([]models.Report, error) {
			return reports.ListReports(ctx)
		})
		return reportsLoadedMsg{reports: rs, err: err}
	}
}

// SwipeBack reports whether an edge swipe may pop this screen
func (m *Model) SwipeBack() bool {
	return m.swipe
}

// Count returns the number of listed reports
func (m *Model) Count() int {
	return m.count
}

func (m *Model) setReports(rs []models.Report) tea.Cmd {
	m.loaded = true
	m.count = len(rs)
	return m.list.SetItems(lo.Map(rs, func(r models.Report, _ int) list.Item { return reportItem{report: r} }))
}

func (m *Model) selected() (models.Report, bool) {
	it, ok := m.list.SelectedItem().(reportItem)
	return it.report, ok
}

// GetLayoutInfo returns layout information for the history screen
func (m *Model) GetLayoutInfo() layout.LayoutInfo {
	status := "Loading..."
	if m.loaded {
		status = fmt.Sprintf("%d report%s", m.count, lo.Ternary(m.count == 1, "", "s"))
	}
	return layout.LayoutInfo{
		Title:       "My reports",
		Breadcrumbs: layout.Crumbs(m.trail, 4),
		Status:      status,
		Error:       m.errText,
		HelpItems:   screens.Help(screens.Keys.Up, screens.Keys.Down, screens.Keys.Select, newKey, screens.Keys.Back),
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
