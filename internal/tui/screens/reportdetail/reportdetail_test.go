// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package reportdetail

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/localfix/localfix/internal/models"
	"github.com/localfix/localfix/internal/navigation"
	"github.com/localfix/localfix/internal/tui/messages"
	"github.com/localfix/localfix/internal/tui/screens"
	"github.com/localfix/localfix/test/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mount(t *testing.T, store *testutil.MemoryStore, id string) *Model {
	t.Helper()
	s, err := New(screens.Props{
		Route:    navigation.With(navigation.ReportDetailParams{ReportID: id}),
		Session:  screens.Session{SwipeBack: true},
		Services: screens.Services{Reports: store, Now: func() time.Time { return testutil.SampleTime.Add(48 * time.Hour) }},
	})
	require.NoError(t, err)

	loaded := testutil.RequireMessage[reportLoadedMsg](t, s.Init())
	s.Update(loaded)
	s.SetSize(100, 40)
	return s.(*Model)
}

func TestLoadAndNavigateUpdates(t *testing.T) {
	m := mount(t, testutil.NewMemoryStore(testutil.SampleReports()...), "rep-2")

	r, ok := m.Report()
	require.True(t, ok)
	assert.Equal(t, "Back Lane", r.Location)
	assert.Equal(t, models.CategoryRubbish.Label(), m.GetLayoutInfo().Title)

	m.Update(testutil.SpecialKey(tea.KeyDown))
	m.Update(testutil.SpecialKey(tea.KeyDown))
	assert.Equal(t, 1, m.Cursor(), "cursor stops at the last update")

	_, cmd := m.Update(testutil.SpecialKey(tea.KeyEnter))
	nav := testutil.RequireMessage[messages.NavigateToMsg](t, cmd)
	params, ok := navigation.ParamsAs[navigation.ReportUpdateParams](nav.Route)
	require.True(t, ok)
	assert.Equal(t, "Collection booked", params.Update.Note)

	view := m.View()
	assert.Contains(t, view, "Thanks, logged")
	assert.Contains(t, view, "3/4")
}

func TestWithdraw(t *testing.T) {
	store := testutil.NewMemoryStore(testutil.SampleReports()...)
	m := mount(t, store, "rep-3")

	_, cmd := m.Update(testutil.KeyPress("x"))
	assert.False(t, m.SwipeBack(), "no swipe while withdrawing")
	done := testutil.RequireMessage[withdrawnMsg](t, cmd)
	require.NoError(t, done.err)

	_, cmd = m.Update(done)
	reloaded := testutil.RequireMessage[reportLoadedMsg](t, cmd)
	m.Update(reloaded)

	r, _ := m.Report()
	assert.Equal(t, models.ReportStatusClosed, r.Status)
	assert.True(t, m.SwipeBack())

	_, cmd = m.Update(testutil.KeyPress("x"))
	assert.Nil(t, cmd, "a closed report cannot be withdrawn again")

	stored, err := store.GetReport(context.Background(), "rep-3")
	require.NoError(t, err)
	assert.Len(t, stored.Updates, 1)
}

func TestWithdraw_FixedReport(t *testing.T) {
	m := mount(t, testutil.NewMemoryStore(testutil.SampleReports()...), "rep-1")

	_, cmd := m.Update(testutil.KeyPress("x"))
	assert.Nil(t, cmd)
}

func TestWithdraw_Failure(t *testing.T) {
	m := mount(t, testutil.NewMemoryStore(testutil.SampleReports()...), "rep-3")

	m.Update(testutil.KeyPress("x"))
	m.Update(withdrawnMsg{err: errors.New("locked")})
	assert.Contains(t, m.GetLayoutInfo().Error, "locked")
	assert.True(t, m.SwipeBack())
}

func TestMissingReport(t *testing.T) {
	m := mount(t, testutil.NewMemoryStore(), "nope")

	_, ok := m.Report()
	assert.False(t, ok)
	assert.Contains(t, m.GetLayoutInfo().Error, "Could not load report")

	_, cmd := m.Update(testutil.SpecialKey(tea.KeyEsc))
	testutil.RequireMessage[messages.NavigateBackMsg](t, cmd)
}

func TestUpdateScreen(t *testing.T) {
	upd := testutil.SampleReports()[1].Updates[0]
	s, err := NewUpdate(screens.Props{
		Route:   navigation.With(navigation.ReportUpdateParams{ReportID: "rep-2", Update: upd}),
		Session: screens.Session{SwipeBack: true},
	})
	require.NoError(t, err)
	s.SetSize(100, 30)

	assert.True(t, s.SwipeBack())
	assert.Contains(t, s.View(), "Thanks, logged")

	_, cmd := s.Update(testutil.SpecialKey(tea.KeyEsc))
	testutil.RequireMessage[messages.NavigateBackMsg](t, cmd)

	_, err = NewUpdate(screens.Props{Route: navigation.To(navigation.Home)})
	assert.ErrorIs(t, err, navigation.ErrMissingParams)
}
