// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/localfix/localfix/internal/gesture"
	"github.com/localfix/localfix/internal/logger"
	"github.com/localfix/localfix/internal/navigation"
	"github.com/localfix/localfix/internal/tui/messages"
)

// phase sequences the exit of the outgoing screen before the entrance of
// the incoming one
type phase int

const (
	// phaseIdle applies navigation requests immediately
	phaseIdle phase = iota
	// phaseExiting is a committed swipe sliding the current screen out.
	// Back requests are dropped and forward requests wait.
	phaseExiting
)

func (p phase) String() string {
	if p == phaseExiting {
		return "exiting"
	}
	return "idle"
}

// request routes a navigation message through the phase machine
func (m *MainModel) request(msg tea.Msg) tea.Cmd {
	log := logger.GetTUILogger()

	if m.phase == phaseExiting {
		if _, ok := msg.(messages.NavigateBackMsg); ok {
			log.Debug().Str("mount_id", m.MountID()).Msg("Back request dropped during exit")
			return nil
		}
		m.pending = append(m.pending, msg)
		log.Debug().Int("pending", len(m.pending)).Msg("Navigation request queued during exit")
		return nil
	}
	return m.apply(msg)
}

// apply performs one navigation request and mounts the result
func (m *MainModel) apply(msg tea.Msg) tea.Cmd {
	switch r := msg.(type) {
	case messages.NavigateToMsg:
		m.nav.NavigateToFrom(r.Route, navigation.SourceScreen)
	case messages.NavigateBackMsg:
		if !m.nav.RequestBack(navigation.SourceScreen) {
			return nil
		}
	case messages.ResetNavigationMsg:
		m.nav.ResetNavigationFrom(r.Route, navigation.SourceScreen)
	default:
		return nil
	}
	return m.remount()
}

// beginExit moves to phaseExiting once the mounted gesture commits
func (m *MainModel) beginExit() {
	if m.phase == phaseExiting || !m.current.gesture.Committing() {
		return
	}
	m.phase = phaseExiting
	log := logger.GetTUILogger()
	log.Debug().
		Str("mount_id", m.MountID()).
		Str("screen", m.current.route.Screen.String()).
		Msg("Exit started")
}

// finishExit pops the stack for a committed swipe, starts the entrance of
// the screen below and then replays requests queued during the exit
func (m *MainModel) finishExit(msg gesture.BackRequestedMsg) tea.Cmd {
	log := logger.GetTUILogger()
	if msg.MountID != m.MountID() {
		log.Debug().Str("mount_id", msg.MountID).Msg("Stale back request ignored")
		return nil
	}

	m.phase = phaseIdle
	var cmds []tea.Cmd
	if m.nav.RequestBack(navigation.SourceGesture) {
		cmds = append(cmds, m.remount())
	}

	pending := m.pending
	m.pending = nil
	for _, req := range pending {
		cmds = append(cmds, m.apply(req))
	}
	return tea.Batch(cmds...)
}
