// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigation

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ScreenID identifies a navigable screen
type ScreenID int

const (
	Onboarding ScreenID = iota
	Login
	Home
	CouncilSelect
	IssueCategory
	IssueDetails
	ConfirmReport
	ReportSubmitted
	MyReports
	ReportDetail
	ReportUpdate
	Profile
	Settings

	screenCount
)

var screenNames = [...]string{
	Onboarding:      "onboarding",
	Login:           "login",
	Home:            "home",
	CouncilSelect:   "councilSelect",
	IssueCategory:   "issueCategory",
	IssueDetails:    "issueDetails",
	ConfirmReport:   "confirmReport",
	ReportSubmitted: "reportSubmitted",
	MyReports:       "myReports",
	ReportDetail:    "reportDetail",
	ReportUpdate:    "reportUpdate",
	Profile:         "profile",
	Settings:        "settings",
}

// Screens returns every screen identifier
func Screens() []ScreenID {
	return lo.Times(int(screenCount), func(i int) ScreenID { return ScreenID(i) })
}

// Valid reports whether s is a member of the enumeration
func (s ScreenID) Valid() bool {
	return s >= 0 && s < screenCount
}

// String returns the screen name used in logs and config
func (s ScreenID) String() string {
	if !s.Valid() {
		return fmt.Sprintf("screen(%d)", int(s))
	}
	return screenNames[s]
}

// ParseScreenID resolves a screen from its name, case-insensitively
func ParseScreenID(name string) (ScreenID, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, n := range screenNames {
		if strings.ToLower(n) == want {
			return ScreenID(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScreen, name)
}

// RequiresParams reports whether routes to s must carry params
func (s ScreenID) RequiresParams() bool {
	switch s {
	case IssueDetails, ConfirmReport, ReportSubmitted, ReportDetail, ReportUpdate:
		return true
	default:
		return false
	}
}
