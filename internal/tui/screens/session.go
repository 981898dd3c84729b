// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package screens

import (
	"context"
	"errors"

	"github.com/localfix/localfix/internal/storage"
)

// Session is the process-wide state handed to every mount
type Session struct {
	Council   string
	UserName  string
	SignedIn  bool
	SwipeBack bool
	// Transition is the enter animation type; empty means the configured default
	Transition string
	// Revision increases every time the session is reloaded
	Revision int
}

// LoadSession reads the session from stored preferences. Missing keys keep
// their zero value, except SwipeBack which defaults to on.
func LoadSession(ctx context.Context, prefs PrefStore, revision int) (Session, error) {
	s := Session{SwipeBack: true, Revision: revision}
	if prefs == nil {
		return s, nil
	}

	get := func(key string) (string, error) {
		v, err := prefs.GetPref(ctx, key)
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil
		}
		return v, err
	}

	var err error
	if s.Council, err = get(storage.PrefCouncil); err != nil {
		return s, err
	}
	if s.UserName, err = get(storage.PrefUserName); err != nil {
		return s, err
	}
	token, err := get(storage.PrefAuthToken)
	if err != nil {
		return s, err
	}
	s.SignedIn = token != ""

	swipe, err := get(storage.PrefSwipeBack)
	if err != nil {
		return s, err
	}
	s.SwipeBack = swipe != "off"

	if s.Transition, err = get(storage.PrefTransition); err != nil {
		return s, err
	}
	return s, nil
}
