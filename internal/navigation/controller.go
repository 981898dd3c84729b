// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigation

import (
	"time"

	"github.com/localfix/localfix/internal/logger"
	"github.com/samber/lo"
)

// Action is the kind of stack mutation
type Action int

const (
	ActionInit Action = iota
	ActionPush
	ActionPop
	ActionReset
)

func (a Action) String() string {
	switch a {
	case ActionInit:
		return "init"
	case ActionPush:
		return "push"
	case ActionPop:
		return "pop"
	case ActionReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Source says where a navigation request came from
type Source int

const (
	SourceProgrammatic Source = iota
	SourceScreen
	SourceKeyboard
	SourceGesture
)

func (s Source) String() string {
	switch s {
	case SourceProgrammatic:
		return "programmatic"
	case SourceScreen:
		return "screen"
	case SourceKeyboard:
		return "keyboard"
	case SourceGesture:
		return "gesture"
	default:
		return "unknown"
	}
}

// DefaultBackDebounce is roughly one animation frame at 60fps
const DefaultBackDebounce = 16 * time.Millisecond

// Snapshot is an immutable view of the stack after a mutation
type Snapshot struct {
	Version uint64
	Action  Action
	Source  Source
	Screens []ScreenID
	Current Route
	At      time.Time
}

// Depth returns the stack size captured by the snapshot
func (s Snapshot) Depth() int {
	return len(s.Screens)
}

// Controller owns the navigation stack. It is driven from a single event
// loop and is not safe for concurrent use; observers receive snapshots.
type Controller struct {
	state        State
	version      uint64
	now          func() time.Time
	backDebounce time.Duration
	lastPop      time.Time
	observers    map[int]func(Snapshot)
	nextObserver int
}

// Option configures a Controller
type Option func(*Controller)

// WithClock replaces time.Now, mostly for tests
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithBackDebounce sets the window in which a second RequestBack is ignored
func WithBackDebounce(d time.Duration) Option {
	return func(c *Controller) { c.backDebounce = d }
}

// NewController creates a controller whose stack holds only root
func NewController(root Route, opts ...Option) *Controller {
	c := &Controller{
		state:        NewState(root),
		now:          time.Now,
		backDebounce: DefaultBackDebounce,
		observers:    make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current immutable stack
func (c *Controller) State() State {
	return c.state
}

// Current returns the route on top of the stack
func (c *Controller) Current() Route {
	return c.state.Current()
}

// Depth returns the stack size
func (c *Controller) Depth() int {
	return c.state.Depth()
}

// Screens returns the stack's screen identifiers, bottom first
func (c *Controller) Screens() []ScreenID {
	return c.state.Screens()
}

// CanGoBack reports whether NavigateBack would change the stack
func (c *Controller) CanGoBack() bool {
	return c.state.Depth() > 1
}

// Snapshot returns the current stack without recording a mutation
func (c *Controller) Snapshot() Snapshot {
	return c.snapshot(ActionInit, SourceProgrammatic)
}

// NavigateTo pushes r. It always succeeds.
func (c *Controller) NavigateTo(r Route) {
	c.navigateTo(r, SourceProgrammatic)
}

// NavigateToFrom pushes r, recording where the request came from
func (c *Controller) NavigateToFrom(r Route, src Source) {
	c.navigateTo(r, src)
}

func (c *Controller) navigateTo(r Route, src Source) {
	from := c.state.Current()
	c.state = Push(c.state, r)
	c.commit(ActionPush, src, from)
}

// NavigateBack pops the top route. On a single-route stack it is a no-op
// and reports false.
func (c *Controller) NavigateBack() bool {
	return c.navigateBack(SourceProgrammatic)
}

func (c *Controller) navigateBack(src Source) bool {
	from := c.state.Current()
	next, popped := Pop(c.state)
	if !popped {
		log := logger.GetNavigationLogger()
		log.Debug().
			Str("source", src.String()).
			Str("screen", from.Screen.String()).
			Msg("Back ignored at stack root")
		return false
	}
	c.state = next
	c.lastPop = c.now()
	c.commit(ActionPop, src, from)
	return true
}

// RequestBack is the single gated entry point for input-driven back
// requests. A request arriving within the debounce window of the previous
// accepted pop is dropped, so a keypress and a committed swipe describing
// the same intent pop once.
func (c *Controller) RequestBack(src Source) bool {
	if !c.lastPop.IsZero() && c.now().Sub(c.lastPop) < c.backDebounce {
		log := logger.GetNavigationLogger()
		log.Debug().
			Str("source", src.String()).
			Dur("since_last_pop", c.now().Sub(c.lastPop)).
			Msg("Back request debounced")
		return false
	}
	return c.navigateBack(src)
}

// ResetNavigation replaces the stack with r alone
func (c *Controller) ResetNavigation(r Route) {
	c.ResetNavigationFrom(r, SourceProgrammatic)
}

// ResetNavigationFrom replaces the stack, recording where the request came from
func (c *Controller) ResetNavigationFrom(r Route, src Source) {
	from := c.state.Current()
	c.state = Reset(c.state, r)
	c.commit(ActionReset, src, from)
}

// Subscribe registers fn to receive a snapshot after every mutation.
// The returned function removes the subscription.
func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	id := c.nextObserver
	c.nextObserver++
	c.observers[id] = fn
	return func() { delete(c.observers, id) }
}

func (c *Controller) commit(action Action, src Source, from Route) {
	c.version++
	snap := c.snapshot(action, src)

	log := logger.GetNavigationLogger()
	log.Info().
		Str("action", action.String()).
		Str("source", src.String()).
		Str("from", from.Screen.String()).
		Str("to", snap.Current.Screen.String()).
		Int("depth", snap.Depth()).
		Uint64("version", snap.Version).
		Msg("Navigation")

	for _, id := range lo.Keys(c.observers) {
		if fn, ok := c.observers[id]; ok {
			fn(snap)
		}
	}
}

func (c *Controller) snapshot(action Action, src Source) Snapshot {
	return Snapshot{
		Version: c.version,
		Action:  action,
		Source:  src,
		Screens: c.state.Screens(),
		Current: c.state.Current(),
		At:      c.now(),
	}
}
