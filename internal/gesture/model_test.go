// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package gesture

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/localfix/localfix/test/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel() Model {
	m := New(DefaultOptions(), 8)
	m.SetSize(100) // 800px
	return m
}

func touch(phase TouchPhase, x, y float64, at time.Time) TouchMsg {
	return TouchMsg{Phase: phase, X: x, Y: y, At: at}
}

func TestModel_CommitEmitsOneBackRequest(t *testing.T) {
	m := newTestModel()

	m, _, consumed := m.HandleTouch(touch(TouchStart, 10, 100, ms(0)))
	assert.False(t, consumed, "pointer-down is never consumed")
	m, _, consumed = m.HandleTouch(touch(TouchMove, 100, 100, ms(100)))
	assert.True(t, consumed)
	m, _, _ = m.HandleTouch(touch(TouchMove, 200, 100, ms(300)))
	assert.InDelta(t, 190, m.Offset(), 1e-9)

	m, cmd, consumed := m.HandleTouch(touch(TouchEnd, 200, 100, ms(310)))
	require.True(t, consumed)
	require.NotNil(t, cmd)
	assert.True(t, m.Committing())

	m, cmd = m.Update(FrameMsg{ID: m.ID(), At: ms(410)})
	assert.True(t, m.Committing())
	assert.Greater(t, m.Offset(), 190.0)
	assert.NotNil(t, cmd, "next frame scheduled")

	m, cmd = m.Update(FrameMsg{ID: m.ID(), At: ms(520)})
	back := testutil.RequireMessage[BackRequestedMsg](t, cmd)
	assert.Equal(t, m.ID(), back.MountID)
	assert.Zero(t, m.Offset(), "offset resets after the slide")
	assert.Equal(t, PhaseIdle, m.Phase())

	m, cmd = m.Update(FrameMsg{ID: m.ID(), At: ms(540)})
	assert.Nil(t, cmd, "a late frame does not emit again")
}

func TestModel_CancelSpringsBack(t *testing.T) {
	m := newTestModel()
	m, _, _ = m.HandleTouch(touch(TouchStart, 10, 100, ms(0)))
	m, _, _ = m.HandleTouch(touch(TouchMove, 80, 100, ms(400)))

	m, cmd, consumed := m.HandleTouch(touch(TouchEnd, 80, 100, ms(600)))
	require.True(t, consumed)
	require.NotNil(t, cmd)
	assert.Equal(t, PhaseCancelling, m.Phase())

	at := ms(600)
	for i := 0; i < 600 && m.Phase() == PhaseCancelling; i++ {
		at = at.Add(16 * time.Millisecond)
		m, cmd = m.Update(FrameMsg{ID: m.ID(), At: at})
	}
	assert.Equal(t, PhaseIdle, m.Phase())
	assert.Zero(t, m.Offset())
	assert.Nil(t, cmd)
}

func TestModel_StaleFramesIgnored(t *testing.T) {
	m := newTestModel()
	m, _, _ = m.HandleTouch(touch(TouchStart, 10, 100, ms(0)))
	m, _, _ = m.HandleTouch(touch(TouchMove, 300, 100, ms(100)))
	m, _, _ = m.HandleTouch(touch(TouchEnd, 300, 100, ms(110)))
	require.True(t, m.Committing())

	other := New(DefaultOptions(), 8)
	require.NotEqual(t, m.ID(), other.ID(), "every mount gets its own id")

	m, cmd := m.Update(FrameMsg{ID: other.ID(), At: ms(1000)})
	assert.Nil(t, cmd)
	assert.True(t, m.Committing())
}

func TestModel_CancelTouchTerminates(t *testing.T) {
	m := newTestModel()
	m, _, _ = m.HandleTouch(touch(TouchStart, 10, 100, ms(0)))
	m, _, _ = m.HandleTouch(touch(TouchMove, 300, 100, ms(100)))

	m, cmd, consumed := m.HandleTouch(touch(TouchCancel, 0, 0, ms(110)))
	assert.True(t, consumed)
	assert.NotNil(t, cmd)
	assert.Equal(t, PhaseCancelling, m.Phase())

	_, _, consumed = m.Terminate()
	assert.False(t, consumed, "nothing left to terminate")
}

func TestModel_UntrackedTouchesFallThrough(t *testing.T) {
	m := newTestModel()
	m, _, _ = m.HandleTouch(touch(TouchStart, 400, 100, ms(0)))
	m, _, consumed := m.HandleTouch(touch(TouchMove, 700, 100, ms(16)))
	assert.False(t, consumed)
	_, cmd, consumed := m.HandleTouch(touch(TouchEnd, 700, 100, ms(32)))
	assert.False(t, consumed)
	assert.Nil(t, cmd)
}

func TestModel_Render(t *testing.T) {
	m := newTestModel()
	assert.Equal(t, "hello", m.Render("hello", 20))

	m, _, _ = m.HandleTouch(touch(TouchStart, 0, 0, ms(0)))
	m, _, _ = m.HandleTouch(touch(TouchMove, 32, 0, ms(16)))
	out := m.Render("hello", 20)
	assert.True(t, strings.HasPrefix(out, "    hello"), "32px is four cells: %q", out)
}

func TestFromMouse(t *testing.T) {
	at := ms(0)

	got, ok := FromMouse(testutil.MouseDown(2, 3), at, 8, 16)
	require.True(t, ok)
	assert.Equal(t, TouchMsg{Phase: TouchStart, X: 16, Y: 48, At: at}, got)

	got, ok = FromMouse(testutil.MouseDrag(5, 3), at, 8, 16)
	require.True(t, ok)
	assert.Equal(t, TouchMove, got.Phase)
	assert.Equal(t, 40.0, got.X)

	got, ok = FromMouse(testutil.MouseUp(5, 3), at, 8, 16)
	require.True(t, ok)
	assert.Equal(t, TouchEnd, got.Phase)

	_, ok = FromMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, at, 8, 16)
	assert.False(t, ok)
	_, ok = FromMouse(tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, at, 8, 16)
	assert.False(t, ok, "hover is not a drag")
}
