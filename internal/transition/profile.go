// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package transition plays the one-shot enter animation of a mounted screen.
package transition

import (
	"fmt"
	"strings"
	"time"

	"github.com/localfix/localfix/internal/config"
)

// Type selects an enter animation
type Type string

const (
	Fade  Type = "fade"
	Slide Type = "slide"
	Scale Type = "scale"
)

// Types returns every animation type
func Types() []Type {
	return []Type{Fade, Slide, Scale}
}

// ParseType resolves a type by name
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case Fade, Slide, Scale:
		return t, nil
	}
	return "", fmt.Errorf("unknown transition type %q", s)
}

// Options are the animation parameters shared by all profiles
type Options struct {
	FPS             int
	FadeDuration    time.Duration
	ShortDuration   time.Duration
	SlideOffset     float64 // px
	ScaleFrom       float64
	SpringFrequency float64
	SpringDamping   float64
}

// DefaultOptions returns the standard animation parameters
func DefaultOptions() Options {
	return Options{
		FPS:             60,
		FadeDuration:    400 * time.Millisecond,
		ShortDuration:   300 * time.Millisecond,
		SlideOffset:     50,
		ScaleFrom:       0.95,
		SpringFrequency: 9,
		SpringDamping:   0.7,
	}
}

// OptionsFromConfig maps the transition config section, keeping defaults
// for unset values
func OptionsFromConfig(cfg config.TransitionConfig) Options {
	o := DefaultOptions()
	if cfg.FPS > 0 {
		o.FPS = cfg.FPS
	}
	if cfg.FadeDuration > 0 {
		o.FadeDuration = cfg.FadeDuration
	}
	if cfg.ShortDuration > 0 {
		o.ShortDuration = cfg.ShortDuration
	}
	if cfg.SlideOffset > 0 {
		o.SlideOffset = cfg.SlideOffset
	}
	if cfg.ScaleFrom > 0 && cfg.ScaleFrom <= 1 {
		o.ScaleFrom = cfg.ScaleFrom
	}
	if cfg.SpringFrequency > 0 {
		o.SpringFrequency = cfg.SpringFrequency
	}
	if cfg.SpringDamping > 0 {
		o.SpringDamping = cfg.SpringDamping
	}
	return o
}

// Profile is the concrete animation a type resolves to
type Profile struct {
	Type            Type
	OpacityDuration time.Duration
	FromTranslateX  float64
	FromScale       float64
}

// ProfileFor returns the profile of t. Unknown types fall back to fade.
func ProfileFor(t Type, o Options) Profile {
	switch t {
	case Slide:
		return Profile{Type: Slide, OpacityDuration: o.ShortDuration, FromTranslateX: o.SlideOffset, FromScale: 1}
	case Scale:
		return Profile{Type: Scale, OpacityDuration: o.ShortDuration, FromScale: o.ScaleFrom}
	default:
		return Profile{Type: Fade, OpacityDuration: o.FadeDuration, FromScale: 1}
	}
}

// Token is the live animated values of a mount
type Token struct {
	Opacity    float64
	TranslateX float64 // px
	Scale      float64

	velX     float64
	velScale float64
}

// initialToken returns the values a profile starts from
func initialToken(p Profile) Token {
	return Token{Opacity: 0, TranslateX: p.FromTranslateX, Scale: p.FromScale}
}

// FinalToken is the resting state every animation ends in
func FinalToken() Token {
	return Token{Opacity: 1, TranslateX: 0, Scale: 1}
}
