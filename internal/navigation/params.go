// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package navigation

import "github.com/localfix/localfix/internal/models"

// Params is the data a route carries to its destination screen.
// Each implementation belongs to exactly one ScreenID.
type Params interface {
	Screen() ScreenID
}

// IssueDetailsParams carries the category chosen on the category screen
type IssueDetailsParams struct {
	Category models.Category
}

func (IssueDetailsParams) Screen() ScreenID { return IssueDetails }

// ConfirmReportParams carries the draft to review before submission
type ConfirmReportParams struct {
	Draft models.ReportDraft
}

func (ConfirmReportParams) Screen() ScreenID { return ConfirmReport }

// ReportSubmittedParams identifies the report that was just submitted
type ReportSubmittedParams struct {
	ReportID string
}

func (ReportSubmittedParams) Screen() ScreenID { return ReportSubmitted }

// ReportDetailParams identifies the report to show
type ReportDetailParams struct {
	ReportID string
}

func (ReportDetailParams) Screen() ScreenID { return ReportDetail }

// ReportUpdateParams carries one update of a report
type ReportUpdateParams struct {
	ReportID string
	Update   models.ReportUpdate
}

func (ReportUpdateParams) Screen() ScreenID { return ReportUpdate }

// ParamsAs returns the params of r as T, if r carries a T
func ParamsAs[T Params](r Route) (T, bool) {
	p, ok := r.Params.(T)
	return p, ok
}
