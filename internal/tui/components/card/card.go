// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

// Style is the look of a bordered card
type Style struct {
	BorderColor lipgloss.Color
	Border      lipgloss.Border
	TitleColor  lipgloss.Color
	Width       int // 0 sizes to content
	MaxHeight   int // 0 is unbounded
	PadX, PadY  int
	MarginBelow int
}

// DefaultStyle returns the standard card look
func DefaultStyle() Style {
	return Style{
		BorderColor: lipgloss.Color("240"),
		Border:      lipgloss.RoundedBorder(),
		TitleColor:  lipgloss.Color("#5EC4A8"),
		PadX:        2,
		PadY:        1,
		MarginBelow: 1,
	}
}

// FocusedStyle is DefaultStyle with a highlighted border
func FocusedStyle() Style {
	s := DefaultStyle()
	s.BorderColor = lipgloss.Color("#F2B134")
	s.Border = lipgloss.ThickBorder()
	return s
}

// Render draws content in a bordered box under an optional title
func Render(title, content string, style Style) string {
	body := content
	if title != "" {
		heading := lipgloss.NewStyle().Foreground(style.TitleColor).Bold(true).Render(title)
		body = lipgloss.JoinVertical(lipgloss.Left, heading, "", content)
	}

	box := lipgloss.NewStyle().
		Border(style.Border).
		BorderForeground(style.BorderColor).
		Padding(style.PadY, style.PadX).
		MarginBottom(style.MarginBelow)
	if style.Width > 0 {
		box = box.Width(style.Width)
	}
	if style.MaxHeight > 0 {
		box = box.MaxHeight(style.MaxHeight)
	}
	return box.Render(body)
}

// RenderSimple renders with DefaultStyle
func RenderSimple(title, content string) string {
	return Render(title, content, DefaultStyle())
}

// Field is a labelled value row
type Field struct {
	Label string
	Value string
}

// Fields renders label/value rows with aligned labels
func Fields(fields []Field) string {
	width := lo.Max(lo.Map(fields, func(f Field, _ int) int { return lipgloss.Width(f.Label) }))
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(width + 2)
	rows := lo.Map(fields, func(f Field, _ int) string {
		return label.Render(f.Label+":") + f.Value
	})
	return strings.Join(rows, "\n")
}
