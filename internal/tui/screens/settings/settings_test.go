// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package settings

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/localfix/localfix/internal/navigation"
	"github.com/localfix/localfix/internal/storage"
	"github.com/localfix/localfix/internal/tui/messages"
	"github.com/localfix/localfix/internal/tui/screens"
	"github.com/localfix/localfix/test/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T, store *testutil.MemoryStore, session screens.Session) *Model {
	t.Helper()
	s, err := New(screens.Props{
		Route:    navigation.To(navigation.Settings),
		Session:  session,
		Services: screens.Services{Prefs: store},
		Trail:    []string{"Home", "Settings"},
	})
	require.NoError(t, err)
	return s.(*Model)
}

func TestModelInit(t *testing.T) {
	t.Run("init returns nil command", func(t *testing.T) {
		model := newModel(t, testutil.NewMemoryStore(), screens.Session{SwipeBack: true})
		testutil.AssertNoCommand(t, model.Init())
	})
}

func TestModelUpdate_KeyHandling(t *testing.T) {
	model := newModel(t, testutil.NewMemoryStore(), screens.Session{SwipeBack: true})

	t.Run("esc key generates back navigation message", func(t *testing.T) {
		_, cmd := model.Update(testutil.SpecialKey(tea.KeyEsc))
		testutil.RequireMessage[messages.NavigateBackMsg](t, cmd)
	})

	t.Run("backspace key generates back navigation message", func(t *testing.T) {
		_, cmd := model.Update(testutil.SpecialKey(tea.KeyBackspace))
		testutil.RequireMessage[messages.NavigateBackMsg](t, cmd)
	})

	t.Run("q key generates quit message", func(t *testing.T) {
		_, cmd := model.Update(testutil.KeyPress("q"))
		testutil.AssertQuitMessage(t, cmd)
	})

	t.Run("cursor stays in range", func(t *testing.T) {
		model.Update(testutil.SpecialKey(tea.KeyUp))
		assert.Equal(t, 0, model.selectedIndex)
		model.Update(testutil.SpecialKey(tea.KeyDown))
		model.Update(testutil.SpecialKey(tea.KeyDown))
		assert.Equal(t, optionCount-1, model.selectedIndex)
	})
}

func TestToggleSwipeBack(t *testing.T) {
	store := testutil.NewMemoryStore()
	model := newModel(t, store, screens.Session{SwipeBack: true})

	_, cmd := model.Update(testutil.SpecialKey(tea.KeyEnter))
	assert.False(t, model.SwipeBack(), "no swipe while saving")

	saved := testutil.RequireMessage[savedMsg](t, cmd)
	require.NoError(t, saved.err)

	_, cmd = model.Update(saved)
	testutil.RequireMessage[messages.SessionChangedMsg](t, cmd)
	assert.False(t, model.SwipeBack())
	assert.Contains(t, model.Options()[0], "Off")

	v, err := store.GetPref(context.Background(), storage.PrefSwipeBack)
	require.NoError(t, err)
	assert.Equal(t, "off", v)

	session, err := screens.LoadSession(context.Background(), store, 1)
	require.NoError(t, err)
	assert.False(t, session.SwipeBack)
}

func TestCycleTransition(t *testing.T) {
	assert.Equal(t, "fade", nextTransition(""))
	assert.Equal(t, "slide", nextTransition("fade"))
	assert.Equal(t, "scale", nextTransition("slide"))
	assert.Equal(t, "fade", nextTransition("scale"))

	store := testutil.NewMemoryStore()
	model := newModel(t, store, screens.Session{SwipeBack: true, Transition: "slide"})
	model.Update(testutil.SpecialKey(tea.KeyDown))

	_, cmd := model.Update(testutil.SpecialKey(tea.KeyEnter))
	model.Update(testutil.RequireMessage[savedMsg](t, cmd))
	assert.Contains(t, model.Options()[1], "scale")
}

func TestSaveFailure(t *testing.T) {
	store := testutil.NewMemoryStore()
	store.Err = errors.New("read-only")
	model := newModel(t, store, screens.Session{SwipeBack: true})

	_, cmd := model.Update(testutil.SpecialKey(tea.KeyEnter))
	_, cmd = model.Update(testutil.RequireMessage[savedMsg](t, cmd))
	assert.Nil(t, cmd)
	assert.True(t, model.SwipeBack())
	assert.Contains(t, model.GetLayoutInfo().Error, "read-only")
}

func TestModelView(t *testing.T) {
	model := newModel(t, testutil.NewMemoryStore(), screens.Session{SwipeBack: true})
	model.SetSize(100, 30)
	view := model.View()

	assert.Contains(t, view, "Settings")
	assert.Contains(t, view, "Swipe back from the edge: On")
	assert.Contains(t, view, "Screen transition: default")
	assert.Contains(t, view, "esc")

	assert.Equal(t, view, model.View(), "View should be consistent across calls")
}
