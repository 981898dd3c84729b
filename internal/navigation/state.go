// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigation

import (
	"slices"

	"github.com/samber/lo"
)

// State is an immutable, never-empty screen stack.
// The last route is the current screen.
type State struct {
	stack []Route
}

// NewState returns a stack holding only root
func NewState(root Route) State {
	return State{stack: []Route{root}}
}

// Current returns the route on top of the stack
func (s State) Current() Route {
	if len(s.stack) == 0 {
		return Route{}
	}
	return s.stack[len(s.stack)-1]
}

// Depth returns the number of routes on the stack
func (s State) Depth() int {
	return len(s.stack)
}

// Routes returns a copy of the stack, bottom first
func (s State) Routes() []Route {
	return slices.Clone(s.stack)
}

// Screens returns the screen identifiers on the stack, bottom first
func (s State) Screens() []ScreenID {
	return lo.Map(s.stack, func(r Route, _ int) ScreenID { return r.Screen })
}

// Push returns s with r on top. Duplicates are allowed.
func Push(s State, r Route) State {
	next := make([]Route, len(s.stack), len(s.stack)+1)
	copy(next, s.stack)
	return State{stack: append(next, r)}
}

// Pop returns s without its top route. A single-route stack is returned
// unchanged and popped reports false.
func Pop(s State) (next State, popped bool) {
	if len(s.stack) <= 1 {
		return s, false
	}
	return State{stack: slices.Clone(s.stack[:len(s.stack)-1])}, true
}

// Reset returns a stack holding only r
func Reset(_ State, r Route) State {
	return NewState(r)
}
