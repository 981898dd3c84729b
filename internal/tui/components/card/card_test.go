// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package card

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	out := RenderSimple("Report", "Pothole on Main St")
	assert.Contains(t, out, "Report")
	assert.Contains(t, out, "Pothole on Main St")
	assert.Contains(t, out, "╭", "rounded border")

	out = Render("", "body", FocusedStyle())
	assert.Contains(t, out, "body")
	assert.Contains(t, out, "┏", "thick border when focused")
}

func TestFields(t *testing.T) {
	out := Fields([]Field{
		{Label: "Category", Value: "Pothole"},
		{Label: "Where", Value: "Main St"},
	})
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, strings.Index(lines[0], "Pothole"), strings.Index(lines[1], "Main St"), "values line up")
}
