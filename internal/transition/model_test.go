// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package transition

import (
	"strings"
	"testing"
	"time"

	"github.com/localfix/localfix/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

// run feeds 60fps frames until the animation finishes or limit frames pass
func run(m Model, limit int) (Model, int) {
	at := t0
	for i := 1; i <= limit; i++ {
		at = at.Add(time.Second / 60)
		m, _ = m.Update(FrameMsg{ID: m.ID(), At: at})
		if m.Done() {
			return m, i
		}
	}
	return m, limit
}

func TestProfileFor(t *testing.T) {
	o := DefaultOptions()

	tests := []struct {
		typ  Type
		want Profile
	}{
		{Fade, Profile{Type: Fade, OpacityDuration: 400 * time.Millisecond, FromScale: 1}},
		{Slide, Profile{Type: Slide, OpacityDuration: 300 * time.Millisecond, FromTranslateX: 50, FromScale: 1}},
		{Scale, Profile{Type: Scale, OpacityDuration: 300 * time.Millisecond, FromScale: 0.95}},
		{Type("spin"), Profile{Type: Fade, OpacityDuration: 400 * time.Millisecond, FromScale: 1}},
	}
	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			assert.Equal(t, tt.want, ProfileFor(tt.typ, o))
		})
	}
}

func TestParseType(t *testing.T) {
	for _, typ := range Types() {
		got, err := ParseType(strings.ToUpper(string(typ)))
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}
	_, err := ParseType("wipe")
	assert.Error(t, err)
}

func TestModel_ReachesTargets(t *testing.T) {
	for _, typ := range Types() {
		t.Run(string(typ), func(t *testing.T) {
			m := New(typ, DefaultOptions(), 8)
			assert.Zero(t, m.Token().Opacity, "starts transparent")

			m, cmd := m.Start(t0)
			require.NotNil(t, cmd)

			m, frames := run(m, 600)
			require.True(t, m.Done(), "finished within %d frames", frames)
			assert.Equal(t, FinalToken(), m.Token())
		})
	}
}

func TestModel_FadeOpacityIsTimed(t *testing.T) {
	m := New(Fade, DefaultOptions(), 8)
	m, _ = m.Start(t0)

	m, _ = m.Update(FrameMsg{ID: m.ID(), At: t0.Add(200 * time.Millisecond)})
	assert.InDelta(t, 0.5, m.Token().Opacity, 1e-9)
	assert.False(t, m.Done())

	m, cmd := m.Update(FrameMsg{ID: m.ID(), At: t0.Add(400 * time.Millisecond)})
	assert.True(t, m.Done())
	assert.Nil(t, cmd)
}

func TestModel_SlideSpringsIn(t *testing.T) {
	m := New(Slide, DefaultOptions(), 8)
	assert.Equal(t, 50.0, m.Token().TranslateX)
	m, _ = m.Start(t0)

	m, _ = m.Update(FrameMsg{ID: m.ID(), At: t0.Add(16 * time.Millisecond)})
	assert.Less(t, m.Token().TranslateX, 50.0)
}

func TestModel_PlaysOnce(t *testing.T) {
	m := New(Scale, DefaultOptions(), 8)
	m, cmd := m.Start(t0)
	require.NotNil(t, cmd)

	m, _ = run(m, 600)
	require.True(t, m.Done())

	m, cmd = m.Start(t0.Add(time.Second))
	assert.Nil(t, cmd, "no replay")
	assert.Equal(t, FinalToken(), m.Token())
}

func TestModel_IgnoresForeignFrames(t *testing.T) {
	m := New(Fade, DefaultOptions(), 8)
	m, _ = m.Start(t0)

	m, cmd := m.Update(FrameMsg{ID: "someone-else", At: t0.Add(time.Second)})
	assert.Nil(t, cmd)
	assert.Zero(t, m.Token().Opacity)

	fresh := New(Fade, DefaultOptions(), 8)
	_, cmd = fresh.Update(FrameMsg{ID: fresh.ID(), At: t0})
	assert.Nil(t, cmd, "frames before Start do nothing")
}

func TestModel_Snap(t *testing.T) {
	m := New(Slide, DefaultOptions(), 8)
	m, _ = m.Start(t0)
	m = m.Snap()
	assert.True(t, m.Done())
	assert.Equal(t, FinalToken(), m.Token())
}

func TestModel_Render(t *testing.T) {
	view := "line one\nline two"

	m := New(Slide, DefaultOptions(), 8)
	assert.Equal(t, "\n", m.Render(view, 40), "blank before any opacity")

	m, _ = m.Start(t0)
	m, _ = m.Update(FrameMsg{ID: m.ID(), At: t0.Add(150 * time.Millisecond)})
	out := m.Render(view, 40)
	assert.Contains(t, out, "line one")
	assert.True(t, strings.HasPrefix(out, " "), "still shifted right: %q", out)

	m = m.Snap()
	assert.Equal(t, view, m.Render(view, 40))
}

func TestOptionsFromConfig(t *testing.T) {
	o := OptionsFromConfig(config.TransitionConfig{FPS: 30, ScaleFrom: 1.5})
	assert.Equal(t, 30, o.FPS)
	assert.Equal(t, 0.95, o.ScaleFrom, "scale above 1 is ignored")
	assert.Equal(t, 400*time.Millisecond, o.FadeDuration)
}
