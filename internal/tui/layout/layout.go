// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// MinimumWidth is the narrowest terminal a screen renders in
	MinimumWidth = 40
	// MinimumHeight leaves room for header, footer and a few content lines
	MinimumHeight = 10
)

// LayoutInfo is what a screen tells the frame about itself
type LayoutInfo struct {
	Title       string
	Breadcrumbs []string
	Status      string
	// Error replaces Status and is rendered in the error style
	Error     string
	HelpItems []HelpItem
}

// Dimensions is the space left for screen content
type Dimensions struct {
	Width  int
	Height int
	Valid  bool
	Error  string
}

// ValidateSpace checks the terminal against the minimum size
func ValidateSpace(width, height int) Dimensions {
	switch {
	case width < MinimumWidth:
		return Dimensions{Width: width, Height: height, Error: fmt.Sprintf("Terminal too narrow (%d cols). Minimum: %d cols", width, MinimumWidth)}
	case height < MinimumHeight:
		return Dimensions{Width: width, Height: height, Error: fmt.Sprintf("Terminal too short (%d lines). Minimum: %d lines", height, MinimumHeight)}
	}
	return Dimensions{Width: width, Height: height, Valid: true}
}

// RenderLayout frames content with the header and footer.
// A too-small terminal gets a resize notice instead.
func RenderLayout(content string, info LayoutInfo, width, height int) string {
	dims := ValidateSpace(width, height)
	if !dims.Valid {
		return renderSpaceError(dims.Error, width, height)
	}

	header := RenderHeader(info, width)
	footer := RenderFooter(info.HelpItems, width)

	// MaxHeight caps, Height fills; both are needed for a fixed box
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 1)
	body := ContentStyle.
		Width(width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	if footer == "" {
		return lipgloss.JoinVertical(lipgloss.Left, header, body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// GetContentArea returns the content box a screen will be given
func GetContentArea(info LayoutInfo, totalWidth, totalHeight int) Dimensions {
	dims := ValidateSpace(totalWidth, totalHeight)
	if !dims.Valid {
		return dims
	}

	used := lipgloss.Height(RenderHeader(info, totalWidth))
	if footer := RenderFooter(info.HelpItems, totalWidth); footer != "" {
		used += lipgloss.Height(footer)
	}

	return Dimensions{
		Width:  totalWidth,
		Height: max(totalHeight-used, 1),
		Valid:  true,
	}
}

func renderSpaceError(message string, width, height int) string {
	lines := []string{
		"Terminal too small",
		"",
		message,
		"",
		fmt.Sprintf("Current: %dx%d", width, height),
		fmt.Sprintf("Minimum: %dx%d", MinimumWidth, MinimumHeight),
	}
	return ErrorStyle.
		Align(lipgloss.Center, lipgloss.Center).
		Width(width).
		Height(height).
		Render(strings.Join(lines, "\n"))
}
