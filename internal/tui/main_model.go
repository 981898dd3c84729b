// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/localfix/localfix/internal/config"
	"github.com/localfix/localfix/internal/gesture"
	"github.com/localfix/localfix/internal/logger"
	"github.com/localfix/localfix/internal/navigation"
	"github.com/localfix/localfix/internal/transition"
	"github.com/localfix/localfix/internal/tui/messages"
	"github.com/localfix/localfix/internal/tui/screens"
	"github.com/samber/lo"
)

// Options are the host settings derived from the application config
type Options struct {
	BackDebounce      time.Duration
	SignedInScreen    string
	SignedOutScreen   string
	Gesture           gesture.Options
	Transition        transition.Options
	DefaultTransition transition.Type
	CellWidthPx       float64
	CellHeightPx      float64
	MouseSwipe        bool
}

// OptionsFromConfig maps the navigation, gesture and transition sections
func OptionsFromConfig(cfg *config.AppConfig) Options {
	def, err := transition.ParseType(cfg.Transition.DefaultType)
	if err != nil {
		def = transition.Slide
	}
	return Options{
		BackDebounce:      cfg.Navigation.BackDebounce,
		SignedInScreen:    cfg.Navigation.SignedInScreen,
		SignedOutScreen:   cfg.Navigation.SignedOutScreen,
		Gesture:           gesture.OptionsFromConfig(cfg.Gesture, cfg.Transition.FPS),
		Transition:        transition.OptionsFromConfig(cfg.Transition),
		DefaultTransition: def,
		CellWidthPx:       cfg.Gesture.CellWidthPx,
		CellHeightPx:      cfg.Gesture.CellHeightPx,
		MouseSwipe:        cfg.Gesture.MouseSwipeEnable,
	}
}

// Option configures a MainModel
type Option func(*MainModel)

// WithClock replaces time.Now for the host and its controller
func WithClock(now func() time.Time) Option {
	return func(m *MainModel) { m.now = now }
}

// WithPublisher receives a snapshot of the stack after every mutation
func WithPublisher(fn func(navigation.Snapshot)) Option {
	return func(m *MainModel) { m.publish = fn }
}

// mount is the currently displayed screen with its own recognizer and
// enter animation. Every navigation builds a new one.
type mount struct {
	route   navigation.Route
	screen  screens.Screen
	gesture gesture.Model
	enter   transition.Model
}

type sessionLoadedMsg struct {
	session screens.Session
	then    tea.Cmd
	err     error
}

// MainModel is the root model. It owns the navigation controller and
// mounts the current route through the registry.
type MainModel struct {
	nav      *navigation.Controller
	registry *screens.Registry
	services screens.Services
	session  screens.Session
	opts     Options
	now      func() time.Time
	publish  func(navigation.Snapshot)

	current  mount
	retired  transition.Model
	phase    phase
	pending  []tea.Msg
	initCmds tea.Cmd

	width, height int
}

// NewMainModel creates the host with the root route chosen from session
func NewMainModel(registry *screens.Registry, services screens.Services, session screens.Session, opts Options, extra ...Option) MainModel {
	m := MainModel{
		registry: registry,
		services: services,
		session:  session,
		opts:     opts,
		now:      time.Now,
	}
	for _, o := range extra {
		o(&m)
	}

	m.nav = navigation.NewController(
		RootRoute(opts.SignedInScreen, opts.SignedOutScreen, session),
		navigation.WithClock(m.now),
		navigation.WithBackDebounce(opts.BackDebounce),
	)
	if m.publish != nil {
		m.nav.Subscribe(m.publish)
		m.publish(m.nav.Snapshot())
	}

	m.initCmds = m.remount()
	return m
}

func (m MainModel) Init() tea.Cmd {
	return m.initCmds
}

// Controller returns the navigation controller
func (m MainModel) Controller() *navigation.Controller { return m.nav }

// Current returns the mounted screen
func (m MainModel) Current() screens.Screen { return m.current.screen }

// MountID identifies the current mount's gesture frames and back requests
func (m MainModel) MountID() string { return m.current.gesture.ID() }

// EnterID identifies the current mount's enter animation frames
func (m MainModel) EnterID() string { return m.current.enter.ID() }

// Exiting reports whether a committed swipe is sliding the screen out
func (m MainModel) Exiting() bool { return m.phase == phaseExiting }

// Pending returns the number of requests queued behind an exit
func (m MainModel) Pending() int { return len(m.pending) }

// Session returns the session the current mount was built from
func (m MainModel) Session() screens.Session { return m.session }

// SwipeEnabled reports whether an edge swipe may pop the current screen
func (m MainModel) SwipeEnabled() bool { return m.current.gesture.Enabled() }

// Retired is the enter animation of the previous mount, snapped to its final values
func (m MainModel) Retired() transition.Model { return m.retired }

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		cmd := m.interruptGesture("resize")
		m.current.screen.SetSize(msg.Width, msg.Height)
		m.current.gesture.SetSize(msg.Width)
		return m, cmd

	case tea.BlurMsg:
		return m, m.interruptGesture("focus lost")

	case tea.MouseMsg:
		if m.opts.MouseSwipe {
			if t, ok := gesture.FromMouse(msg, m.now(), m.opts.CellWidthPx, m.opts.CellHeightPx); ok {
				cmd, consumed := m.handleTouch(t)
				if consumed {
					return m, cmd
				}
				return m, tea.Batch(cmd, m.updateScreen(msg))
			}
		}
		return m, m.updateScreen(msg)

	case gesture.TouchMsg:
		cmd, _ := m.handleTouch(msg)
		return m, cmd

	case gesture.FrameMsg:
		if msg.ID != m.MountID() {
			return m, nil
		}
		var cmd tea.Cmd
		m.current.gesture, cmd = m.current.gesture.Update(msg)
		return m, cmd

	case gesture.BackRequestedMsg:
		return m, m.finishExit(msg)

	case transition.FrameMsg:
		if msg.ID != m.EnterID() {
			return m, nil
		}
		var cmd tea.Cmd
		m.current.enter, cmd = m.current.enter.Update(msg)
		return m, cmd

	case messages.NavigateToMsg, messages.NavigateBackMsg, messages.ResetNavigationMsg:
		return m, m.request(msg)

	case messages.SessionChangedMsg:
		return m, m.reloadSession(msg.Then)

	case sessionLoadedMsg:
		if msg.err != nil {
			log := logger.GetTUILogger()
			log.Error().Err(msg.err).Msg("Failed to reload session")
		} else {
			m.session = msg.session
			m.syncGesture()
		}
		return m, msg.then
	}

	return m, m.updateScreen(msg)
}

func (m MainModel) View() string {
	if m.current.screen == nil {
		return ""
	}
	view := m.current.enter.Render(m.current.screen.View(), m.width)
	return m.current.gesture.Render(view, m.width)
}

// remount builds the screen for the top of the stack with a fresh
// recognizer and enter animation, and starts the entrance
func (m *MainModel) remount() tea.Cmd {
	route := m.nav.Current()
	props := screens.Props{
		Route:    route,
		Session:  m.session,
		Services: m.services,
		Trail:    lo.Map(m.nav.Screens(), func(id navigation.ScreenID, _ int) string { return screenTitle(id) }),
	}

	log := logger.GetTUILogger()
	if m.current.screen != nil {
		if !m.current.enter.Done() {
			log.Debug().Str("transition_id", m.current.enter.ID()).Msg("Enter animation cut short by unmount")
		}
		m.retired = m.current.enter.Snap()
	}

	screen, err := m.registry.Mount(props)
	if err != nil {
		log.Error().Err(err).Str("screen", route.Screen.String()).Msg("Mount failed")
		screen = newMountFailed(screenTitle(route.Screen), err)
	}
	if m.width > 0 {
		screen.SetSize(m.width, m.height)
	}

	g := gesture.New(m.opts.Gesture, m.opts.CellWidthPx)
	g.SetSize(m.width)
	enter, enterCmd := transition.New(m.transitionType(), m.opts.Transition, m.opts.CellWidthPx).Start(m.now())

	m.current = mount{route: route, screen: screen, gesture: g, enter: enter}
	m.syncGesture()

	log.Debug().
		Str("screen", route.Screen.String()).
		Str("mount_id", g.ID()).
		Int("depth", m.nav.Depth()).
		Msg("Screen mounted")
	return tea.Batch(screen.Init(), enterCmd)
}

func (m *MainModel) transitionType() transition.Type {
	if m.session.Transition != "" {
		if t, err := transition.ParseType(m.session.Transition); err == nil {
			return t
		}
	}
	if m.opts.DefaultTransition != "" {
		return m.opts.DefaultTransition
	}
	return transition.Fade
}

// syncGesture enables swipe-back when the user allows it, the screen
// allows it and there is something to go back to
func (m *MainModel) syncGesture() {
	on := m.session.SwipeBack && m.current.screen.SwipeBack() && m.nav.CanGoBack()
	if on != m.current.gesture.Enabled() {
		m.current.gesture.SetEnabled(on)
	}
}

func (m *MainModel) handleTouch(t gesture.TouchMsg) (tea.Cmd, bool) {
	if m.phase == phaseExiting {
		return nil, true
	}
	m.syncGesture()
	g, cmd, consumed := m.current.gesture.HandleTouch(t)
	m.current.gesture = g
	m.beginExit()
	return cmd, consumed
}

func (m *MainModel) interruptGesture(reason string) tea.Cmd {
	g, cmd, cancelled := m.current.gesture.Terminate()
	m.current.gesture = g
	if cancelled {
		log := logger.GetTUILogger()
		log.Debug().Str("mount_id", g.ID()).Str("reason", reason).Msg("Swipe interrupted")
	}
	return cmd
}

func (m *MainModel) updateScreen(msg tea.Msg) tea.Cmd {
	screen, cmd := m.current.screen.Update(msg)
	m.current.screen = screen
	m.syncGesture()
	return cmd
}

func (m *MainModel) reloadSession(then tea.Cmd) tea.Cmd {
	prefs, revision := m.services.Prefs, m.session.Revision+1
	return func() tea.Msg {
		s, err := screens.WithStore(func(ctx context.Context) (screens.Session, error) {
			return screens.LoadSession(ctx, prefs, revision)
		})
		return sessionLoadedMsg{session: s, then: then, err: err}
	}
}
