// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package transition

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

const (
	settleEpsilon = 0.01
	blankOpacity  = 0.1
)

// FrameMsg advances the animation with ID
type FrameMsg struct {
	ID string
	At time.Time
}

// Model animates one mount. It plays at most once.
type Model struct {
	id      string
	profile Profile
	opts    Options
	spring  harmonica.Spring
	token   Token

	start   time.Time
	started bool
	done    bool

	cellWidth float64
}

// New creates an animator for a fresh mount, resting at the profile's
// initial values until Start
func New(t Type, opts Options, cellWidthPx float64) Model {
	if cellWidthPx <= 0 {
		cellWidthPx = 8
	}
	p := ProfileFor(t, opts)
	return Model{
		id:        uuid.NewString(),
		profile:   p,
		opts:      opts,
		spring:    harmonica.NewSpring(harmonica.FPS(opts.FPS), opts.SpringFrequency, opts.SpringDamping),
		token:     initialToken(p),
		cellWidth: cellWidthPx,
	}
}

// ID is the mount ID frames are tagged with
func (m Model) ID() string { return m.id }

// Profile returns the animation being played
func (m Model) Profile() Profile { return m.profile }

// Token returns the current animated values
func (m Model) Token() Token { return m.token }

// Done reports whether the animation has reached its targets
func (m Model) Done() bool { return m.done }

// Started reports whether Start has been called
func (m Model) Started() bool { return m.started }

// Start begins the animation at the given time. Later calls do nothing.
func (m Model) Start(at time.Time) (Model, tea.Cmd) {
	if m.started {
		return m, nil
	}
	m.started = true
	m.start = at

	log := logger.GetTransitionLogger()
	log.Debug().Str("mount_id", m.id).Str("type", string(m.profile.Type)).Msg("Enter animation started")
	return m, m.frame()
}

// Snap jumps to the final values, used when a mount is torn down mid-flight
func (m Model) Snap() Model {
	m.token = FinalToken()
	m.started = true
	m.done = true
	return m
}

// Update advances the animation. Frames for other mounts are ignored.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	f, ok := msg.(FrameMsg)
	if !ok || f.ID != m.id || !m.started || m.done {
		return m, nil
	}

	elapsed := f.At.Sub(m.start)
	if d := m.profile.OpacityDuration; d > 0 {
		m.token.Opacity = math.Min(math.Max(float64(elapsed)/float64(d), 0), 1)
	} else {
		m.token.Opacity = 1
	}

	m.token.TranslateX, m.token.velX = m.spring.Update(m.token.TranslateX, m.token.velX, 0)
	m.token.Scale, m.token.velScale = m.spring.Update(m.token.Scale, m.token.velScale, 1)

	if m.token.Opacity >= 1 && m.settled() {
		m = m.Snap()
		log := logger.GetTransitionLogger()
		log.Debug().Str("mount_id", m.id).Dur("elapsed", elapsed).Msg("Enter animation finished")
		return m, nil
	}
	return m, m.frame()
}

func (m Model) settled() bool {
	return math.Abs(m.token.TranslateX) < settleEpsilon && math.Abs(m.token.velX) < settleEpsilon &&
		math.Abs(m.token.Scale-1) < settleEpsilon/10 && math.Abs(m.token.velScale) < settleEpsilon
}

// Render applies the current token to a screen view of widthCells columns.
// translateX and scale become left and side padding; opacity becomes a
// faint style, and a blank frame near zero.
func (m Model) Render(view string, widthCells int) string {
	if m.done {
		return view
	}
	if m.token.Opacity < blankOpacity {
		return strings.Repeat("\n", strings.Count(view, "\n"))
	}

	shift := int(math.Round(m.token.TranslateX / m.cellWidth))
	margin := 0
	if widthCells > 0 && m.token.Scale < 1 {
		margin = int(math.Round(float64(widthCells) * (1 - m.token.Scale) / 2))
	}

	style := lipgloss.NewStyle()
	if shift+margin > 0 {
		style = style.PaddingLeft(shift + margin)
	}
	if widthCells > 0 {
		style = style.MaxWidth(widthCells - margin)
	}
	if m.token.Opacity < 1 {
		style = style.Faint(true)
	}
	return style.Render(view)
}

func (m Model) frame() tea.Cmd {
	id := m.id
	fps := m.opts.FPS
	if fps <= 0 {
		fps = 60
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, At: t}
	})
}
