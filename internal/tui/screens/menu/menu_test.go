// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package menu

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/localfix/localfix/internal/models"
	"github.com/localfix/localfix/internal/navigation"
	"github.com/localfix/localfix/internal/storage"
	"github.com/localfix/localfix/internal/tui/messages"
	"github.com/localfix/localfix/internal/tui/screens"
	"github.com/localfix/localfix/test/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProps(store *testutil.MemoryStore, route navigation.Route) screens.Props {
	return screens.Props{
		Route:   route,
		Session: screens.Session{SwipeBack: true, Council: "York", UserName: "sam", SignedIn: true},
		Services: screens.Services{
			Prefs:    store,
			Reports:  store,
			Councils: []string{"Leeds", "York", "Hull"},
		},
		Trail: []string{"Home"},
	}
}

func mount(t *testing.T, f screens.Factory, p screens.Props) *Model {
	t.Helper()
	s, err := f(p)
	require.NoError(t, err)
	m, ok := s.(*Model)
	require.True(t, ok)
	m.SetSize(80, 24)
	return m
}

func selectIndex(t *testing.T, m *Model, idx int) tea.Cmd {
	t.Helper()
	for i := 0; i < idx; i++ {
		m.Update(testutil.SpecialKey(tea.KeyDown))
	}
	_, cmd := m.Update(testutil.SpecialKey(tea.KeyEnter))
	require.NotNil(t, cmd)
	return cmd
}

func TestHome_Items(t *testing.T) {
	store := testutil.NewMemoryStore()
	m := mount(t, NewHome, testProps(store, navigation.To(navigation.Home)))

	tests := []struct {
		index int
		want  navigation.ScreenID
	}{
		{0, navigation.IssueCategory},
		{1, navigation.MyReports},
		{2, navigation.CouncilSelect},
		{3, navigation.Profile},
		{4, navigation.Settings},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			m := mount(t, NewHome, testProps(store, navigation.To(navigation.Home)))
			msg := testutil.RequireMessage[messages.NavigateToMsg](t, selectIndex(t, m, tt.index))
			assert.Equal(t, tt.want, msg.Route.Screen)
		})
	}

	view := m.View()
	assert.Contains(t, view, "Reporting to York")
	assert.Contains(t, view, "Report an issue")
	assert.True(t, m.SwipeBack())
}

func TestMenu_BackAndQuit(t *testing.T) {
	m := mount(t, NewHome, testProps(testutil.NewMemoryStore(), navigation.To(navigation.Home)))

	_, cmd := m.Update(testutil.SpecialKey(tea.KeyEsc))
	testutil.RequireMessage[messages.NavigateBackMsg](t, cmd)

	_, cmd = m.Update(testutil.KeyPress("q"))
	testutil.AssertQuitMessage(t, cmd)
}

func TestOnboarding(t *testing.T) {
	m := mount(t, NewOnboarding, testProps(testutil.NewMemoryStore(), navigation.To(navigation.Onboarding)))
	assert.False(t, m.SwipeBack(), "root screen has nothing to swipe back to")

	msg := testutil.RequireMessage[messages.NavigateToMsg](t, selectIndex(t, m, 0))
	assert.Equal(t, navigation.Login, msg.Route.Screen)

	m = mount(t, NewOnboarding, testProps(testutil.NewMemoryStore(), navigation.To(navigation.Onboarding)))
	reset := testutil.RequireMessage[messages.ResetNavigationMsg](t, selectIndex(t, m, 1))
	assert.Equal(t, navigation.Home, reset.Route.Screen)
}

func TestCouncilSelect_SavesAndGoesBack(t *testing.T) {
	store := testutil.NewMemoryStore()
	m := mount(t, NewCouncilSelect, testProps(store, navigation.To(navigation.CouncilSelect)))

	changed := testutil.RequireMessage[messages.SessionChangedMsg](t, selectIndex(t, m, 2))
	testutil.RequireMessage[messages.NavigateBackMsg](t, changed.Then)

	v, err := store.GetPref(context.Background(), storage.PrefCouncil)
	require.NoError(t, err)
	assert.Equal(t, "Hull", v)
}

func TestCouncilSelect_SaveError(t *testing.T) {
	store := testutil.NewMemoryStore()
	store.Err = errors.New("disk full")
	m := mount(t, NewCouncilSelect, testProps(store, navigation.To(navigation.CouncilSelect)))

	status := testutil.RequireMessage[messages.StatusMsg](t, selectIndex(t, m, 0))
	assert.True(t, status.Error)

	m.Update(status)
	assert.Contains(t, m.View(), "disk full")
}

func TestIssueCategory_CarriesCategory(t *testing.T) {
	m := mount(t, NewIssueCategory, testProps(testutil.NewMemoryStore(), navigation.To(navigation.IssueCategory)))

	msg := testutil.RequireMessage[messages.NavigateToMsg](t, selectIndex(t, m, 3))
	params, ok := navigation.ParamsAs[navigation.IssueDetailsParams](msg.Route)
	require.True(t, ok)
	assert.Equal(t, models.CategoryGraffiti, params.Category)
}

func TestProfile_SignOut(t *testing.T) {
	store := testutil.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.SetPref(ctx, storage.PrefAuthToken, "tok"))

	m := mount(t, NewProfile, testProps(store, navigation.To(navigation.Profile)))
	assert.Contains(t, m.View(), "Signed in as sam")

	changed := testutil.RequireMessage[messages.SessionChangedMsg](t, selectIndex(t, m, 0))
	reset := testutil.RequireMessage[messages.ResetNavigationMsg](t, changed.Then)
	assert.Equal(t, navigation.Onboarding, reset.Route.Screen)

	_, err := store.GetPref(ctx, storage.PrefAuthToken)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestProfile_Guest(t *testing.T) {
	p := testProps(testutil.NewMemoryStore(), navigation.To(navigation.Profile))
	p.Session.SignedIn = false
	m := mount(t, NewProfile, p)

	assert.Contains(t, m.View(), "Browsing as guest")
	msg := testutil.RequireMessage[messages.NavigateToMsg](t, selectIndex(t, m, 0))
	assert.Equal(t, navigation.Login, msg.Route.Screen)
}
