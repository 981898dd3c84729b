// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package screens

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/localfix/localfix/internal/models"
)

// LocalSubmitter records drafts in the local history only. It stands in for
// the council submission service.
func LocalSubmitter(reports ReportStore, now func() time.Time) SubmitFunc {
	if now == nil {
		now = time.Now
	}
	return func(ctx context.Context, draft models.ReportDraft, council string) (models.Report, error) {
		if err := draft.Validate(); err != nil {
			return models.Report{}, err
		}
		at := now().UTC()
		r := models.Report{
			ID:          uuid.NewString(),
			Category:    draft.Category,
			Description: draft.Description,
			Location:    draft.Location,
			Council:     council,
			Status:      models.ReportStatusSubmitted,
			SubmittedAt: at,
			Updates: models.ReportUpdates{
				{At: at, Status: models.ReportStatusSubmitted, Note: "Report received"},
			},
		}
		if err := reports.SaveReport(ctx, r); err != nil {
			return models.Report{}, err
		}
		return r, nil
	}
}
