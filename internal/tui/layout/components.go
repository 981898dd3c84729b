// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"strings"

	"github.com/samber/lo"
)

// HelpItem is one key hint in the footer
type HelpItem struct {
	Key         string
	Description string
}

// RenderHeader renders the title line, breadcrumbs, status and a divider
func RenderHeader(info LayoutInfo, width int) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(info.Title))
	if len(info.Breadcrumbs) > 1 {
		b.WriteString("  ")
		b.WriteString(BreadcrumbStyle.Render(strings.Join(info.Breadcrumbs, BreadcrumbSeparator.String())))
	}

	switch {
	case info.Error != "":
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(info.Error))
	case info.Status != "":
		b.WriteString("\n")
		b.WriteString(StatsStyle.Render(info.Status))
	}

	b.WriteString("\n")
	b.WriteString(GetDivider(width))
	return b.String()
}

// RenderFooter renders the key hints; empty when there are none
func RenderFooter(helpItems []HelpItem, width int) string {
	if len(helpItems) == 0 {
		return ""
	}
	hints := lo.Map(helpItems, func(item HelpItem, _ int) string {
		return "[" + HelpKeyStyle.Render(item.Key) + "] " + HelpTextStyle.Render(item.Description)
	})
	return FooterStyle.Width(width).Render(strings.Join(hints, " • "))
}

// Crumbs trims a breadcrumb trail to its last n entries
func Crumbs(trail []string, n int) []string {
	if n <= 0 || len(trail) <= n {
		return trail
	}
	return append([]string{"…"}, trail[len(trail)-n:]...)
}
