// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/localfix/localfix/internal/models"
	"github.com/localfix/localfix/internal/storage"
	"github.com/samber/lo"
)

// MockScreen is a minimal tea.Model that records what it receives
type MockScreen struct {
	InitCalled  bool
	Messages    []tea.Msg
	NextCommand tea.Cmd
	ViewOutput  string
}

// NewMockScreen creates a new mock screen with default view output
func NewMockScreen() *MockScreen {
	return &MockScreen{
		ViewOutput: "Mock Screen View",
	}
}

func (m *MockScreen) Init() tea.Cmd {
	m.InitCalled = true
	return nil
}

func (m *MockScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.Messages = append(m.Messages, msg)
	cmd := m.NextCommand
	m.NextCommand = nil
	return m, cmd
}

func (m *MockScreen) View() string {
	return m.ViewOutput
}

// MemoryStore is an in-memory stand-in for the SQLite store
type MemoryStore struct {
	mu      sync.RWMutex
	prefs   map[string]string
	reports map[string]models.Report
	// Err, when set, is returned by every write
	Err error
}

// NewMemoryStore creates an empty store seeded with reports
func NewMemoryStore(reports ...models.Report) *MemoryStore {
	return &MemoryStore{
		prefs:   make(map[string]string),
		reports: lo.SliceToMap(reports, func(r models.Report) (string, models.Report) { return r.ID, r }),
	}
}

func (s *MemoryStore) GetPref(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.prefs[key]
	if !ok {
		return "", fmt.Errorf("pref %q: %w", key, storage.ErrNotFound)
	}
	return v, nil
}

func (s *MemoryStore) SetPref(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.prefs[key] = value
	return nil
}

func (s *MemoryStore) Logout(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	delete(s.prefs, storage.PrefAuthToken)
	delete(s.prefs, storage.PrefUserName)
	return nil
}

func (s *MemoryStore) SaveReport(_ context.Context, r models.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.reports[r.ID] = r
	return nil
}

func (s *MemoryStore) GetReport(_ context.Context, id string) (models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reports[id]
	if !ok {
		return models.Report{}, fmt.Errorf("report %s: %w", id, storage.ErrNotFound)
	}
	return r, nil
}

func (s *MemoryStore) ListReports(_ context.Context) ([]models.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := lo.Values(s.reports)
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

func (s *MemoryStore) AppendUpdate(ctx context.Context, id string, upd models.ReportUpdate) error {
	r, err := s.GetReport(ctx, id)
	if err != nil {
		return err
	}
	r.Updates = append(r.Updates, upd)
	r.Status = upd.Status
	return s.SaveReport(ctx, r)
}
