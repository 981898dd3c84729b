// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package screens defines the contract between the host and the screen
// components it mounts.
package screens

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/localfix/localfix/internal/models"
	"github.com/localfix/localfix/internal/navigation"
)

// ErrNoFactory is returned when a screen has no registered constructor
var ErrNoFactory = errors.New("no screen registered")

// Screen is a mounted screen. Screens request navigation only by returning
// messages from the messages package.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View() string
	SetSize(width, height int)
	// SwipeBack reports whether an edge swipe may pop this screen
	SwipeBack() bool
}

// PrefStore is the subset of the local store screens use for preferences
type PrefStore interface {
	GetPref(ctx context.Context, key string) (string, error)
	SetPref(ctx context.Context, key, value string) error
	Logout(ctx context.Context) error
}

// ReportStore is the subset of the local store screens use for reports
type ReportStore interface {
	SaveReport(ctx context.Context, r models.Report) error
	GetReport(ctx context.Context, id string) (models.Report, error)
	ListReports(ctx context.Context) ([]models.Report, error)
	AppendUpdate(ctx context.Context, id string, upd models.ReportUpdate) error
}

// SubmitFunc hands a draft to the submission service
type SubmitFunc func(ctx context.Context, draft models.ReportDraft, council string) (models.Report, error)

// Services are the collaborators shared by every screen
type Services struct {
	Prefs    PrefStore
	Reports  ReportStore
	Submit   SubmitFunc
	Councils []string
	Now      func() time.Time
}

// Props is everything a screen is built from
type Props struct {
	Route    navigation.Route
	Session  Session
	Services Services
	// Trail is the breadcrumb trail of the stack, bottom first
	Trail []string
}

// Factory builds a screen for a route
type Factory func(Props) (Screen, error)

// Registry maps screen identifiers to their constructors
type Registry struct {
	factories map[navigation.ScreenID]Factory
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{factories: make(map[navigation.ScreenID]Factory)}
}

// Register sets the constructor for id, replacing any previous one
func (r *Registry) Register(id navigation.ScreenID, f Factory) *Registry {
	r.factories[id] = f
	return r
}

// Has reports whether id has a constructor
func (r *Registry) Has(id navigation.ScreenID) bool {
	_, ok := r.factories[id]
	return ok
}

// Mount builds the screen for p.Route
func (r *Registry) Mount(p Props) (Screen, error) {
	f, ok := r.factories[p.Route.Screen]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoFactory, p.Route.Screen)
	}
	s, err := f(p)
	if err != nil {
		return nil, fmt.Errorf("mount %s: %w", p.Route.Screen, err)
	}
	return s, nil
}

// RequireParams extracts the params of type T from p, or fails the mount
func RequireParams[T navigation.Params](p Props) (T, error) {
	params, ok := navigation.ParamsAs[T](p.Route)
	if !ok {
		return params, fmt.Errorf("%w: %s", navigation.ErrMissingParams, p.Route.Screen)
	}
	return params, nil
}

// StoreTimeout bounds every store call a screen makes
const StoreTimeout = 5 * time.Second

// WithStore runs fn with a bounded context, for use inside tea.Cmds
func WithStore[T any](fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), StoreTimeout)
	defer cancel()
	return fn(ctx)
}
