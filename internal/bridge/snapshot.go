// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package bridge

import (
	"sync"
	"time"

	"github.com/localfix/localfix/internal/navigation"
	"github.com/samber/lo"
)

// NavigationView is the JSON form of a navigation snapshot
type NavigationView struct {
	Version uint64    `json:"version"`
	Action  string    `json:"action"`
	Source  string    `json:"source"`
	Screens []string  `json:"screens"`
	Current string    `json:"current"`
	Depth   int       `json:"depth"`
	At      time.Time `json:"at"`
}

// ViewOf converts a snapshot to its JSON form
func ViewOf(s navigation.Snapshot) NavigationView {
	return NavigationView{
		Version: s.Version,
		Action:  s.Action.String(),
		Source:  s.Source.String(),
		Screens: lo.Map(s.Screens, func(id navigation.ScreenID, _ int) string { return id.String() }),
		Current: s.Current.Screen.String(),
		Depth:   s.Depth(),
		At:      s.At,
	}
}

// SnapshotHolder is the hand-off point between the TUI event loop, which
// publishes snapshots, and the HTTP handlers, which read them. Publish
// never blocks.
type SnapshotHolder struct {
	mu      sync.RWMutex
	latest  navigation.Snapshot
	set     bool
	updates chan navigation.Snapshot
}

// NewSnapshotHolder creates an empty holder
func NewSnapshotHolder() *SnapshotHolder {
	return &SnapshotHolder{updates: make(chan navigation.Snapshot, 16)}
}

// Publish stores s as the latest snapshot and queues it for broadcast.
// When the queue is full the oldest queued snapshot is discarded.
func (h *SnapshotHolder) Publish(s navigation.Snapshot) {
	h.mu.Lock()
	h.latest = s
	h.set = true
	h.mu.Unlock()

	for {
		select {
		case h.updates <- s:
			return
		default:
		}
		select {
		case <-h.updates:
		default:
		}
	}
}

// Latest returns the most recent snapshot, if one was published
func (h *SnapshotHolder) Latest() (navigation.Snapshot, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest, h.set
}

// Updates is the stream of published snapshots
func (h *SnapshotHolder) Updates() <-chan navigation.Snapshot {
	return h.updates
}
