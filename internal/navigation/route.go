// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigation

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrUnknownScreen is returned for identifiers outside the enumeration
	ErrUnknownScreen = errors.New("unknown screen")
	// ErrMissingParams is returned when a screen that needs data gets none
	ErrMissingParams = errors.New("missing screen params")
	// ErrParamsMismatch is returned when params belong to a different screen
	ErrParamsMismatch = errors.New("params do not belong to screen")
)

// Route is one entry of the navigation stack
type Route struct {
	Screen ScreenID
	Params Params
}

// NewRoute validates that params fit screen and builds the route
func NewRoute(screen ScreenID, params Params) (Route, error) {
	if !screen.Valid() {
		return Route{}, fmt.Errorf("%w: %d", ErrUnknownScreen, int(screen))
	}
	if isNil(params) {
		if screen.RequiresParams() {
			return Route{}, fmt.Errorf("%w: %s", ErrMissingParams, screen)
		}
		return Route{Screen: screen}, nil
	}
	if params.Screen() != screen {
		return Route{}, fmt.Errorf("%w: %T is for %s, not %s", ErrParamsMismatch, params, params.Screen(), screen)
	}
	return Route{Screen: screen, Params: params}, nil
}

// To builds a route for a screen that takes no params.
// It panics if screen needs params; use NewRoute or With for those.
func To(screen ScreenID) Route {
	r, err := NewRoute(screen, nil)
	if err != nil {
		panic(err)
	}
	return r
}

// With builds a route to the screen the params belong to
func With(params Params) Route {
	r, err := NewRoute(params.Screen(), params)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Route) String() string {
	if r.Params == nil {
		return r.Screen.String()
	}
	return fmt.Sprintf("%s%+v", r.Screen, r.Params)
}

func isNil(p Params) bool {
	if p == nil {
		return true
	}
	v := reflect.ValueOf(p)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
