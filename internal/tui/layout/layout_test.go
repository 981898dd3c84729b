// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestValidateSpace(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		valid         bool
	}{
		{"fits", 80, 24, true},
		{"minimum", MinimumWidth, MinimumHeight, true},
		{"narrow", MinimumWidth - 1, 24, false},
		{"short", 80, MinimumHeight - 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dims := ValidateSpace(tt.width, tt.height)
			assert.Equal(t, tt.valid, dims.Valid)
			if !tt.valid {
				assert.NotEmpty(t, dims.Error)
			}
		})
	}
}

func TestRenderLayout(t *testing.T) {
	info := LayoutInfo{
		Title:       "My reports",
		Breadcrumbs: []string{"Home", "My reports"},
		Status:      "3 reports",
		HelpItems:   []HelpItem{{Key: "esc", Description: "back"}},
	}

	out := RenderLayout("content here", info, 60, 20)
	assert.Contains(t, out, "My reports")
	assert.Contains(t, out, "Home")
	assert.Contains(t, out, "3 reports")
	assert.Contains(t, out, "content here")
	assert.Contains(t, out, "back")
	assert.Equal(t, 20, lipgloss.Height(out), "layout fills the terminal")

	info.Error = "could not load"
	out = RenderLayout("x", info, 60, 20)
	assert.Contains(t, out, "could not load")
	assert.NotContains(t, out, "3 reports")

	assert.Contains(t, RenderLayout("x", info, 20, 5), "Terminal too small")
}

func TestGetContentArea(t *testing.T) {
	info := LayoutInfo{Title: "Home", HelpItems: []HelpItem{{Key: "q", Description: "quit"}}}
	dims := GetContentArea(info, 80, 24)
	assert.True(t, dims.Valid)
	assert.Equal(t, 80, dims.Width)
	assert.Less(t, dims.Height, 24)
	assert.Greater(t, dims.Height, 0)
}

func TestCrumbs(t *testing.T) {
	trail := []string{"Home", "Report", "Details", "Confirm"}
	assert.Equal(t, trail, Crumbs(trail, 0))
	assert.Equal(t, trail, Crumbs(trail, 4))
	assert.Equal(t, []string{"…", "Details", "Confirm"}, Crumbs(trail, 2))
}
