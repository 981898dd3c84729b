// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gesture recognizes edge swipes that navigate back.
//
// Recognizer is the pure state machine, driven by pointer samples in logical
// pixels. Model wraps it as a Bubble Tea component that animates the drag
// offset and emits at most one BackRequestedMsg per gesture.
package gesture

import (
	"math"
	"time"

	"github.com/localfix/localfix/internal/config"
)

// Phase is the recognizer state
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseTracking
	PhaseCommitting
	PhaseCancelling
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTracking:
		return "tracking"
	case PhaseCommitting:
		return "committing"
	case PhaseCancelling:
		return "cancelling"
	default:
		return "unknown"
	}
}

// Outcome is what a finished gesture resolves to
type Outcome int

const (
	// OutcomeNone means no gesture was being tracked
	OutcomeNone Outcome = iota
	OutcomeCommit
	OutcomeCancel
)

// Options are the recognizer thresholds. Distances are logical px,
// velocities px/ms.
type Options struct {
	EdgeWidth      float64
	ActivationSlop float64
	DirectionRatio float64
	CommitDistance float64
	FlickDistance  float64
	FlickVelocity  float64
	CommitDuration time.Duration
	VelocityWindow time.Duration

	SpringFrequency float64
	SpringDamping   float64
	FPS             int
}

// DefaultOptions returns the standard edge-swipe thresholds
func DefaultOptions() Options {
	return Options{
		EdgeWidth:       50,
		ActivationSlop:  8,
		DirectionRatio:  1.5,
		CommitDistance:  120,
		FlickDistance:   60,
		FlickVelocity:   0.5,
		CommitDuration:  200 * time.Millisecond,
		VelocityWindow:  100 * time.Millisecond,
		SpringFrequency: 8,
		SpringDamping:   0.8,
		FPS:             60,
	}
}

// OptionsFromConfig maps the gesture config section, keeping defaults for
// unset values
func OptionsFromConfig(cfg config.GestureConfig, fps int) Options {
	o := DefaultOptions()
	setF := func(dst *float64, v float64) {
		if v > 0 {
			*dst = v
		}
	}
	setF(&o.EdgeWidth, cfg.EdgeWidth)
	setF(&o.ActivationSlop, cfg.ActivationSlop)
	setF(&o.DirectionRatio, cfg.DirectionRatio)
	setF(&o.CommitDistance, cfg.CommitDistance)
	setF(&o.FlickDistance, cfg.FlickDistance)
	setF(&o.FlickVelocity, cfg.FlickVelocity)
	setF(&o.SpringFrequency, cfg.SpringFrequency)
	setF(&o.SpringDamping, cfg.SpringDamping)
	if cfg.CommitDuration > 0 {
		o.CommitDuration = cfg.CommitDuration
	}
	if cfg.VelocityWindow > 0 {
		o.VelocityWindow = cfg.VelocityWindow
	}
	if fps > 0 {
		o.FPS = fps
	}
	return o
}

// Track is the live data of one pointer gesture
type Track struct {
	OriginX, OriginY float64
	DX, DY           float64
	VX               float64 // px/ms
	LastX, LastY     float64
	LastAt           time.Time
}

// Recognizer is the edge-swipe state machine. The zero value is not usable;
// call NewRecognizer.
type Recognizer struct {
	opts    Options
	phase   Phase
	enabled bool
	width   float64

	// pending is set between pointer-down and the capture decision
	pending bool
	track   Track
}

// NewRecognizer creates an idle, enabled recognizer
func NewRecognizer(opts Options) Recognizer {
	return Recognizer{opts: opts, enabled: true}
}

// Phase returns the current state
func (r Recognizer) Phase() Phase { return r.phase }

// Track returns the current gesture data
func (r Recognizer) Track() Track { return r.track }

// Options returns the thresholds in use
func (r Recognizer) Options() Options { return r.opts }

// Enabled reports whether swipe-back is on for the screen
func (r Recognizer) Enabled() bool { return r.enabled }

// SetEnabled toggles swipe-back. Disabling does not interrupt an animation.
func (r *Recognizer) SetEnabled(on bool) {
	r.enabled = on
	if !on {
		r.pending = false
	}
}

// SetWidth sets the screen width in px used to clamp the drag
func (r *Recognizer) SetWidth(px float64) { r.width = px }

// Width returns the screen width in px
func (r Recognizer) Width() float64 { return r.width }

// Offset is the horizontal drag translation, dx clamped to [0, width]
func (r Recognizer) Offset() float64 {
	if r.phase != PhaseTracking {
		return 0
	}
	return clamp(r.track.DX, 0, r.width)
}

// Begin starts a candidate gesture at (x, y). It reports whether the
// recognizer is watching the pointer; false means the touch belongs to the
// screen.
func (r *Recognizer) Begin(x, y float64, at time.Time) bool {
	if !r.enabled || r.phase != PhaseIdle {
		return false
	}
	if x > r.opts.EdgeWidth {
		return false
	}
	r.pending = true
	r.track = Track{OriginX: x, OriginY: y, LastX: x, LastY: y, LastAt: at}
	return true
}

// Move feeds a pointer sample. It reports whether the sample was consumed
// by a tracked gesture; unconsumed samples fall through to the screen.
func (r *Recognizer) Move(x, y float64, at time.Time) bool {
	switch {
	case r.phase == PhaseTracking:
		r.sample(x, y, at)
		return true
	case !r.pending:
		return false
	}

	r.sample(x, y, at)
	dx, dy := r.track.DX, r.track.DY
	if math.Abs(dx) <= r.opts.ActivationSlop && math.Abs(dy) <= r.opts.ActivationSlop {
		return false
	}
	r.pending = false
	if dx > r.opts.ActivationSlop && math.Abs(dx) > r.opts.DirectionRatio*math.Abs(dy) {
		r.phase = PhaseTracking
		return true
	}
	return false
}

// Release ends the gesture. A tracked gesture moves to Committing or
// Cancelling; anything else resolves to OutcomeNone.
func (r *Recognizer) Release(at time.Time) Outcome {
	r.pending = false
	if r.phase != PhaseTracking {
		return OutcomeNone
	}
	if at.Sub(r.track.LastAt) > r.opts.VelocityWindow {
		r.track.VX = 0
	}
	if r.Decide(r.track.DX, r.track.VX) {
		r.phase = PhaseCommitting
		return OutcomeCommit
	}
	r.phase = PhaseCancelling
	return OutcomeCancel
}

// Terminate is an external interruption. A tracked gesture always cancels.
func (r *Recognizer) Terminate() Outcome {
	r.pending = false
	if r.phase != PhaseTracking {
		return OutcomeNone
	}
	r.phase = PhaseCancelling
	return OutcomeCancel
}

// Settle returns the recognizer to Idle once its animation is done
func (r *Recognizer) Settle() {
	r.phase = PhaseIdle
	r.pending = false
	r.track = Track{}
}

// Decide is the commit predicate: a long drag, or a shorter fast flick
func (r Recognizer) Decide(dx, vx float64) bool {
	return dx > r.opts.CommitDistance || (dx > r.opts.FlickDistance && vx > r.opts.FlickVelocity)
}

func (r *Recognizer) sample(x, y float64, at time.Time) {
	if dt := at.Sub(r.track.LastAt); dt > 0 {
		r.track.VX = (x - r.track.LastX) / (float64(dt) / float64(time.Millisecond))
	}
	r.track.DX = x - r.track.OriginX
	r.track.DY = y - r.track.OriginY
	r.track.LastX, r.track.LastY = x, y
	r.track.LastAt = at
}

func clamp(v, lo, hi float64) float64 {
	if hi <= lo {
		return math.Max(v, lo)
	}
	return math.Min(math.Max(v, lo), hi)
}
