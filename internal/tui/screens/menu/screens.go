// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package menu

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/localfix/localfix/internal/logger"
	"github.com/localfix/localfix/internal/models"
	"github.com/localfix/localfix/internal/navigation"
	"github.com/localfix/localfix/internal/storage"
	"github.com/localfix/localfix/internal/tui/messages"
	"github.com/localfix/localfix/internal/tui/screens"
	"github.com/samber/lo"
)

// NewOnboarding is the signed-out root screen
func NewOnboarding(p screens.Props) (screens.Screen, error) {
	items := []Item{
		{Label: "Sign in", Hint: "Track your reports across devices", Cmd: messages.NavigateTo(navigation.To(navigation.Login))},
		{Label: "Continue as guest", Hint: "Reports are kept on this device only", Cmd: messages.ResetNavigation(navigation.To(navigation.Home))},
	}
	return New("Welcome to LocalFix", items, p).
		WithStatus("Report potholes, rubbish and more to your council").
		WithoutSwipeBack(), nil
}

// NewHome is the signed-in root screen
func NewHome(p screens.Props) (screens.Screen, error) {
	items := []Item{
		{Label: "Report an issue", Hint: "Tell your council about a problem", Cmd: messages.NavigateTo(navigation.To(navigation.IssueCategory))},
		{Label: "My reports", Hint: "Follow what happened next", Cmd: messages.NavigateTo(navigation.To(navigation.MyReports))},
		{Label: "Choose council", Hint: lo.Ternary(p.Session.Council == "", "No council selected", p.Session.Council), Cmd: messages.NavigateTo(navigation.To(navigation.CouncilSelect))},
		{Label: "Profile", Hint: lo.Ternary(p.Session.SignedIn, p.Session.UserName, "Guest"), Cmd: messages.NavigateTo(navigation.To(navigation.Profile))},
		{Label: "Settings", Hint: "Gestures and animations", Cmd: messages.NavigateTo(navigation.To(navigation.Settings))},
	}
	return New("LocalFix", items, p).WithStatus(homeStatus(p.Session)), nil
}

func homeStatus(s screens.Session) string {
	who := "guest"
	if s.SignedIn && s.UserName != "" {
		who = s.UserName
	}
	if s.Council == "" {
		return fmt.Sprintf("Hello %s. Pick a council before reporting.", who)
	}
	return fmt.Sprintf("Hello %s. Reporting to %s.", who, s.Council)
}

// NewCouncilSelect lets the user pick the council reports go to
func NewCouncilSelect(p screens.Props) (screens.Screen, error) {
	items := lo.Map(p.Services.Councils, func(name string, _ int) Item {
		hint := ""
		if name == p.Session.Council {
			hint = "Current"
		}
		return Item{Label: name, Hint: hint, Cmd: saveCouncil(p.Services.Prefs, name)}
	})
	return New("Choose council", items, p).WithStatus("Reports are sent to the council you choose"), nil
}

func saveCouncil(prefs screens.PrefStore, name string) tea.Cmd {
	return func() tea.Msg {
		_, err := screens.WithStore(func(ctx context.Context) (struct{}, error) {
			return struct{}{}, prefs.SetPref(ctx, storage.PrefCouncil, name)
		})
		if err != nil {
			log := logger.GetTUILogger()
			log.Error().Err(err).Str("council", name).Msg("Failed to save council")
			return messages.StatusMsg{Text: "Could not save council: " + err.Error(), Error: true}
		}
		return messages.SessionChangedMsg{Then: messages.NavigateBack()}
	}
}

// NewIssueCategory is the first step of a report
func NewIssueCategory(p screens.Props) (screens.Screen, error) {
	items := lo.Map(models.Categories(), func(c models.Category, _ int) Item {
		return Item{
			Label: c.Label(),
			Cmd:   messages.NavigateTo(navigation.With(navigation.IssueDetailsParams{Category: c})),
		}
	})
	return New("What is the problem?", items, p), nil
}

// NewProfile shows who is signed in
func NewProfile(p screens.Props) (screens.Screen, error) {
	s := p.Session
	var items []Item
	if s.SignedIn {
		items = append(items, Item{Label: "Sign out", Hint: "Forget this account on this device", Cmd: signOut(p.Services.Prefs)})
	} else {
		items = append(items, Item{Label: "Sign in", Hint: "Use an account", Cmd: messages.NavigateTo(navigation.To(navigation.Login))})
	}
	items = append(items,
		Item{Label: "Choose council", Hint: lo.Ternary(s.Council == "", "not set", s.Council), Cmd: messages.NavigateTo(navigation.To(navigation.CouncilSelect))},
		Item{Label: "Settings", Cmd: messages.NavigateTo(navigation.To(navigation.Settings))},
	)

	status := "Browsing as guest"
	if s.SignedIn {
		status = "Signed in as " + lo.Ternary(s.UserName == "", "unknown", s.UserName)
	}
	return New("Profile", items, p).WithStatus(status), nil
}

func signOut(prefs screens.PrefStore) tea.Cmd {
	return func() tea.Msg {
		_, err := screens.WithStore(func(ctx context.Context) (struct{}, error) {
			return struct{}{}, prefs.Logout(ctx)
		})
		if err != nil {
			return messages.StatusMsg{Text: "Could not sign out: " + err.Error(), Error: true}
		}
		return messages.SessionChangedMsg{Then: messages.ResetNavigation(navigation.To(navigation.Onboarding))}
	}
}
