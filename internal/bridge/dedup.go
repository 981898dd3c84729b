// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package bridge

import (
	"context"
	"sync"
	"time"
)

// FrameDeduplicator drops touch frames a client re-sends after a reconnect.
// Frames are keyed by their optional ID; frames without one always pass.
type FrameDeduplicator struct {
	seen sync.Map // frame ID -> time.Time
	ttl  time.Duration
	now  func() time.Time
}

// NewFrameDeduplicator creates a deduplicator remembering IDs for ttl
func NewFrameDeduplicator(ttl time.Duration) *FrameDeduplicator {
	return &FrameDeduplicator{ttl: ttl, now: time.Now}
}

// ShouldProcess returns true if the frame has not been seen before
func (d *FrameDeduplicator) ShouldProcess(id string) bool {
	if id == "" {
		return true
	}
	_, loaded := d.seen.LoadOrStore(id, d.now())
	return !loaded
}

// Run periodically forgets expired IDs until ctx is cancelled
func (d *FrameDeduplicator) Run(ctx context.Context) {
	ticker := time.NewTicker(d.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.expire()
		}
	}
}

func (d *FrameDeduplicator) expire() {
	now := d.now()
	d.seen.Range(func(key, value any) bool {
		if ts, ok := value.(time.Time); ok && now.Sub(ts) > d.ttl {
			d.seen.Delete(key)
		}
		return true
	})
}
