// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"github.com/localfix/localfix/internal/navigation"
	"github.com/localfix/localfix/internal/tui/screens"
	"github.com/localfix/localfix/internal/tui/screens/confirm"
	"github.com/localfix/localfix/internal/tui/screens/login"
	"github.com/localfix/localfix/internal/tui/screens/menu"
	"github.com/localfix/localfix/internal/tui/screens/myreports"
	"github.com/localfix/localfix/internal/tui/screens/reportdetail"
	"github.com/localfix/localfix/internal/tui/screens/reportform"
	"github.com/localfix/localfix/internal/tui/screens/settings"
)

// DefaultRegistry maps every screen to its constructor
func DefaultRegistry() *screens.Registry {
	return screens.NewRegistry().
		Register(navigation.Onboarding, menu.NewOnboarding).
		Register(navigation.Login, login.New).
		Register(navigation.Home, menu.NewHome).
		Register(navigation.CouncilSelect, menu.NewCouncilSelect).
		Register(navigation.IssueCategory, menu.NewIssueCategory).
		Register(navigation.IssueDetails, reportform.New).
		Register(navigation.ConfirmReport, confirm.New).
		Register(navigation.ReportSubmitted, confirm.NewSubmitted).
		Register(navigation.MyReports, myreports.New).
		Register(navigation.ReportDetail, reportdetail.New).
		Register(navigation.ReportUpdate, reportdetail.NewUpdate).
		Register(navigation.Profile, menu.NewProfile).
		Register(navigation.Settings, settings.New)
}

// screenTitles are the breadcrumb labels of each screen
var screenTitles = map[navigation.ScreenID]string{
	navigation.Onboarding:      "Welcome",
	navigation.Login:           "Sign in",
	navigation.Home:            "Home",
	navigation.CouncilSelect:   "Council",
	navigation.IssueCategory:   "Category",
	navigation.IssueDetails:    "Details",
	navigation.ConfirmReport:   "Confirm",
	navigation.ReportSubmitted: "Sent",
	navigation.MyReports:       "My reports",
	navigation.ReportDetail:    "Report",
	navigation.ReportUpdate:    "Update",
	navigation.Profile:         "Profile",
	navigation.Settings:        "Settings",
}

func screenTitle(id navigation.ScreenID) string {
	if t, ok := screenTitles[id]; ok {
		return t
	}
	return id.String()
}

// RootRoute picks the bottom of the stack from the session: the signed-in
// screen when an auth token is stored, the signed-out screen otherwise.
// Unknown names and screens that need params fall back to home or onboarding.
func RootRoute(signedIn, signedOut string, session screens.Session) navigation.Route {
	name, fallback := signedOut, navigation.Onboarding
	if session.SignedIn {
		name, fallback = signedIn, navigation.Home
	}
	id, err := navigation.ParseScreenID(name)
	if err != nil || id.RequiresParams() {
		return navigation.To(fallback)
	}
	return navigation.To(id)
}
