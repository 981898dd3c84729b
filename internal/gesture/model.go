// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package gesture

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/localfix/localfix/internal/logger"
)

// TouchPhase is the kind of pointer sample
type TouchPhase string

const (
	TouchStart  TouchPhase = "start"
	TouchMove   TouchPhase = "move"
	TouchEnd    TouchPhase = "end"
	TouchCancel TouchPhase = "cancel"
)

// TouchMsg is a pointer sample in logical px
type TouchMsg struct {
	Phase TouchPhase
	X, Y  float64
	At    time.Time
}

// FrameMsg advances the drag animation of the recognizer with ID
type FrameMsg struct {
	ID string
	At time.Time
}

// BackRequestedMsg is emitted once when a committed swipe finishes sliding
type BackRequestedMsg struct {
	MountID string
}

// Model is the Bubble Tea side of the recognizer: one per mounted screen
type Model struct {
	id  string
	rec Recognizer

	offset float64
	vel    float64
	spring harmonica.Spring

	commitFrom  float64
	commitStart time.Time
	emitted     bool

	cellWidth float64
}

// New creates a recognizer for a fresh mount
func New(opts Options, cellWidthPx float64) Model {
	if cellWidthPx <= 0 {
		cellWidthPx = 8
	}
	return Model{
		id:        uuid.NewString(),
		rec:       NewRecognizer(opts),
		spring:    harmonica.NewSpring(harmonica.FPS(opts.FPS), opts.SpringFrequency, opts.SpringDamping),
		cellWidth: cellWidthPx,
	}
}

// ID is the mount ID every frame and back request is tagged with
func (m Model) ID() string { return m.id }

// Phase returns the recognizer state
func (m Model) Phase() Phase { return m.rec.Phase() }

// Offset is the rendered horizontal translation in px
func (m Model) Offset() float64 { return m.offset }

// Busy reports whether a gesture or its animation is in flight
func (m Model) Busy() bool { return m.rec.Phase() != PhaseIdle }

// Committing reports whether the commit slide is playing
func (m Model) Committing() bool { return m.rec.Phase() == PhaseCommitting }

// SetEnabled toggles swipe-back for the mounted screen
func (m *Model) SetEnabled(on bool) { m.rec.SetEnabled(on) }

// Enabled reports whether swipe-back is on
func (m Model) Enabled() bool { return m.rec.Enabled() }

// SetSize sets the screen width in cells
func (m *Model) SetSize(widthCells int) {
	m.rec.SetWidth(float64(widthCells) * m.cellWidth)
}

// HandleTouch feeds one pointer sample. The bool reports whether the sample
// was consumed; unconsumed samples belong to the screen.
func (m Model) HandleTouch(t TouchMsg) (Model, tea.Cmd, bool) {
	log := logger.GetGestureLogger()

	switch t.Phase {
	case TouchStart:
		m.rec.Begin(t.X, t.Y, t.At)
		return m, nil, false

	case TouchMove:
		consumed := m.rec.Move(t.X, t.Y, t.At)
		if m.rec.Phase() == PhaseTracking {
			m.offset = m.rec.Offset()
		}
		return m, nil, consumed

	case TouchEnd:
		if last := m.rec.Track(); m.rec.Phase() == PhaseTracking && (t.X != last.LastX || t.Y != last.LastY) {
			m.rec.Move(t.X, t.Y, t.At)
			m.offset = m.rec.Offset()
		}
		track := m.rec.Track()
		switch m.rec.Release(t.At) {
		case OutcomeCommit:
			log.Debug().Str("mount_id", m.id).Float64("dx", track.DX).Float64("vx", track.VX).Msg("Swipe committed")
			m.commitFrom = m.offset
			m.commitStart = t.At
			m.emitted = false
			return m, m.frame(), true
		case OutcomeCancel:
			log.Debug().Str("mount_id", m.id).Float64("dx", track.DX).Float64("vx", track.VX).Msg("Swipe cancelled")
			m.vel = 0
			return m, m.frame(), true
		}
		return m, nil, false

	case TouchCancel:
		return m.Terminate()
	}
	return m, nil, false
}

// Terminate interrupts a tracked gesture; it springs back without navigating
func (m Model) Terminate() (Model, tea.Cmd, bool) {
	if m.rec.Terminate() != OutcomeCancel {
		return m, nil, false
	}
	log := logger.GetGestureLogger()
	log.Debug().Str("mount_id", m.id).Msg("Swipe terminated")
	m.vel = 0
	return m, m.frame(), true
}

// Update advances the drag animation. Frames for other mounts are ignored.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	f, ok := msg.(FrameMsg)
	if !ok || f.ID != m.id {
		return m, nil
	}

	switch m.rec.Phase() {
	case PhaseCommitting:
		target := math.Max(m.rec.Width(), m.commitFrom)
		dur := m.rec.Options().CommitDuration
		progress := 1.0
		if dur > 0 {
			progress = math.Min(float64(f.At.Sub(m.commitStart))/float64(dur), 1)
		}
		m.offset = m.commitFrom + (target-m.commitFrom)*easeOut(math.Max(progress, 0))
		if progress < 1 {
			return m, m.frame()
		}
		m.offset = 0
		m.rec.Settle()
		if m.emitted {
			return m, nil
		}
		m.emitted = true
		id := m.id
		return m, func() tea.Msg { return BackRequestedMsg{MountID: id} }

	case PhaseCancelling:
		m.offset, m.vel = m.spring.Update(m.offset, m.vel, 0)
		if math.Abs(m.offset) < 0.5 && math.Abs(m.vel) < 0.5 {
			m.offset, m.vel = 0, 0
			m.rec.Settle()
			return m, nil
		}
		return m, m.frame()
	}
	return m, nil
}

// Render shifts the screen view right by the drag offset
func (m Model) Render(view string, widthCells int) string {
	shift := int(math.Round(m.offset / m.cellWidth))
	if shift <= 0 {
		return view
	}
	if widthCells > 0 && shift >= widthCells {
		return strings.Repeat("\n", strings.Count(view, "\n"))
	}
	style := lipgloss.NewStyle().PaddingLeft(shift)
	if widthCells > 0 {
		style = style.MaxWidth(widthCells)
	}
	return style.Render(view)
}

func (m Model) frame() tea.Cmd {
	id := m.id
	fps := m.rec.Options().FPS
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, At: t}
	})
}

func easeOut(p float64) float64 {
	return 1 - (1-p)*(1-p)
}
