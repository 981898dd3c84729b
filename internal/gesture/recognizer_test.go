// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package gesture

import (
	"testing"
	"time"

	"github.com/localfix/localfix/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func ms(n int) time.Time { return t0.Add(time.Duration(n) * time.Millisecond) }

func newTestRecognizer() Recognizer {
	r := NewRecognizer(DefaultOptions())
	r.SetWidth(800)
	return r
}

func TestDecide(t *testing.T) {
	r := newTestRecognizer()

	tests := []struct {
		name   string
		dx, vx float64
		want   bool
	}{
		{name: "just short of commit distance", dx: 119, vx: 0, want: false},
		{name: "past commit distance", dx: 121, vx: 0, want: true},
		{name: "flick past flick distance", dx: 65, vx: 0.6, want: true},
		{name: "flick too slow", dx: 65, vx: 0.5, want: false},
		{name: "fast but too short", dx: 59, vx: 2, want: false},
		{name: "exactly commit distance", dx: 120, vx: 0, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Decide(tt.dx, tt.vx))
		})
	}
}

func TestRecognizer_SlowDragRelease(t *testing.T) {
	tests := []struct {
		name    string
		endX    float64
		outcome Outcome
	}{
		{name: "dx 119 cancels", endX: 10 + 119, outcome: OutcomeCancel},
		{name: "dx 121 commits", endX: 10 + 121, outcome: OutcomeCommit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRecognizer()
			require.True(t, r.Begin(10, 200, ms(0)))
			assert.True(t, r.Move(40, 200, ms(200)))
			assert.True(t, r.Move(tt.endX, 200, ms(600)))

			// pointer rests before lifting, so velocity decays to zero
			assert.Equal(t, tt.outcome, r.Release(ms(800)))
			assert.Zero(t, r.Track().VX)
		})
	}
}

func TestRecognizer_FlickCommits(t *testing.T) {
	r := newTestRecognizer()
	require.True(t, r.Begin(10, 200, ms(0)))
	require.True(t, r.Move(45, 200, ms(100)))
	require.True(t, r.Move(75, 200, ms(150)))

	assert.InDelta(t, 65, r.Track().DX, 1e-9)
	assert.InDelta(t, 0.6, r.Track().VX, 1e-9)
	assert.Equal(t, OutcomeCommit, r.Release(ms(160)))
	assert.Equal(t, PhaseCommitting, r.Phase())
}

func TestRecognizer_EdgeBand(t *testing.T) {
	r := newTestRecognizer()

	assert.False(t, r.Begin(60, 200, ms(0)), "origin outside the edge band is not watched")
	assert.False(t, r.Move(300, 200, ms(50)))
	assert.Equal(t, PhaseIdle, r.Phase())
	assert.Equal(t, OutcomeNone, r.Release(ms(60)))

	assert.True(t, r.Begin(50, 200, ms(100)), "the band is inclusive")
}

func TestRecognizer_CaptureRules(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		tracked bool
	}{
		{name: "within slop stays pending", x: 18, y: 100, tracked: false},
		{name: "rightward past slop", x: 19, y: 100, tracked: true},
		{name: "leftward", x: 0, y: 100, tracked: false},
		{name: "too vertical", x: 40, y: 130, tracked: false},
		{name: "mostly horizontal", x: 40, y: 115, tracked: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRecognizer()
			require.True(t, r.Begin(10, 100, ms(0)))
			assert.Equal(t, tt.tracked, r.Move(tt.x, tt.y, ms(16)))
			assert.Equal(t, tt.tracked, r.Phase() == PhaseTracking)
		})
	}
}

func TestRecognizer_RejectedGestureStaysRejected(t *testing.T) {
	r := newTestRecognizer()
	require.True(t, r.Begin(10, 100, ms(0)))
	assert.False(t, r.Move(12, 160, ms(16)), "vertical scroll belongs to the screen")
	assert.False(t, r.Move(300, 160, ms(32)), "a later horizontal move cannot capture it")
	assert.Equal(t, PhaseIdle, r.Phase())
}

func TestRecognizer_OffsetIsClamped(t *testing.T) {
	r := newTestRecognizer()
	r.SetWidth(200)
	require.True(t, r.Begin(10, 100, ms(0)))
	require.True(t, r.Move(100, 100, ms(16)))
	assert.InDelta(t, 90, r.Offset(), 1e-9)

	r.Move(500, 100, ms(32))
	assert.InDelta(t, 200, r.Offset(), 1e-9)

	r.Move(-40, 100, ms(48))
	assert.Zero(t, r.Offset())
}

func TestRecognizer_NoNewGestureWhileAnimating(t *testing.T) {
	r := newTestRecognizer()
	require.True(t, r.Begin(10, 100, ms(0)))
	require.True(t, r.Move(30, 100, ms(16)))
	require.Equal(t, OutcomeCancel, r.Release(ms(20)))

	assert.False(t, r.Begin(10, 100, ms(30)), "cancelling")
	r.Settle()
	assert.True(t, r.Begin(10, 100, ms(40)))
}

func TestRecognizer_TerminateAlwaysCancels(t *testing.T) {
	r := newTestRecognizer()
	require.True(t, r.Begin(10, 100, ms(0)))
	require.True(t, r.Move(200, 100, ms(16)))

	assert.Equal(t, OutcomeCancel, r.Terminate())
	assert.Equal(t, PhaseCancelling, r.Phase())
	assert.Equal(t, OutcomeNone, r.Terminate())
}

func TestRecognizer_Disabled(t *testing.T) {
	r := newTestRecognizer()
	r.SetEnabled(false)
	assert.False(t, r.Begin(10, 100, ms(0)))
	assert.False(t, r.Move(300, 100, ms(16)))
}

func TestOptionsFromConfig(t *testing.T) {
	o := OptionsFromConfig(config.GestureConfig{EdgeWidth: 40, CommitDuration: 250 * time.Millisecond}, 30)
	assert.Equal(t, 40.0, o.EdgeWidth)
	assert.Equal(t, 250*time.Millisecond, o.CommitDuration)
	assert.Equal(t, 30, o.FPS)
	assert.Equal(t, 120.0, o.CommitDistance, "unset values keep defaults")
}
