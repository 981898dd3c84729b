// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package testutil

import (
	"time"

	"github.com/localfix/localfix/internal/models"
)

// Sample data creators for consistent testing

// SampleTime is the fixed instant fixtures are anchored to
var SampleTime = time.Date(2026, 4, 2, 10, 30, 0, 0, time.UTC)

// SampleReports returns a small report history, newest first
func SampleReports() []models.Report {
	return []models.Report{
		{
			ID:          "rep-3",
			Category:    models.CategoryStreetLighting,
			Description: "Lamp flickering all night",
			Location:    "Clifton Green",
			Council:     "York",
			Status:      models.ReportStatusSubmitted,
			SubmittedAt: SampleTime.Add(2 * time.Hour),
		},
		{
			ID:          "rep-2",
			Category:    models.CategoryRubbish,
			Description: "Mattress dumped in the lane",
			Location:    "Back Lane",
			Council:     "York",
			Status:      models.ReportStatusInProgress,
			SubmittedAt: SampleTime.Add(time.Hour),
			Updates: models.ReportUpdates{
				{At: SampleTime.Add(90 * time.Minute), Status: models.ReportStatusAcknowledged, Note: "Thanks, logged"},
				{At: SampleTime.Add(3 * time.Hour), Status: models.ReportStatusInProgress, Note: "Collection booked"},
			},
		},
		{
			ID:          "rep-1",
			Category:    models.CategoryPothole,
			Description: "Deep pothole at the junction",
			Location:    "Main St / Mill Rd",
			Council:     "York",
			Status:      models.ReportStatusFixed,
			SubmittedAt: SampleTime,
			Updates: models.ReportUpdates{
				{At: SampleTime.Add(24 * time.Hour), Status: models.ReportStatusFixed, Note: "Resurfaced"},
			},
		},
	}
}

// SampleDraft returns a valid draft ready for confirmation
func SampleDraft() models.ReportDraft {
	return models.ReportDraft{
		ID:          "draft-1",
		Category:    models.CategoryGraffiti,
		Description: "Large tag on the bridge",
		Location:    "Ouse Bridge",
		CreatedAt:   SampleTime,
	}
}
