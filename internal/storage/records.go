// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"time"

	"github.com/localfix/localfix/internal/models"
)

// prefRecord is one row of the prefs table
type prefRecord struct {
	Key         string `gorm:"column:k;primaryKey"`
	Value       string `gorm:"column:v;not null"`
	ChangedAtMs int64  `gorm:"column:updated_at_unixms;not null"`
}

func (prefRecord) TableName() string { return "prefs" }

// reportRecord is one row of the reports table. Updates live in a JSON column.
type reportRecord struct {
	ID            string               `gorm:"primaryKey"`
	Category      string               `gorm:"not null"`
	Description   string               `gorm:"not null"`
	Location      string               `gorm:"not null"`
	Council       string               `gorm:"not null"`
	Status        int                  `gorm:"not null"`
	SubmittedAtMs int64                `gorm:"column:submitted_at_unixms;not null;index:idx_reports_submitted"`
	Updates       models.ReportUpdates `gorm:"column:updates_json;type:text;not null"`
}

func (reportRecord) TableName() string { return "reports" }

func toRecord(r models.Report) reportRecord {
	updates := r.Updates
	if updates == nil {
		updates = models.ReportUpdates{}
	}
	return reportRecord{
		ID:            r.ID,
		Category:      r.Category.String(),
		Description:   r.Description,
		Location:      r.Location,
		Council:       r.Council,
		Status:        int(r.Status),
		SubmittedAtMs: r.SubmittedAt.UnixMilli(),
		Updates:       updates,
	}
}

func (rec reportRecord) report() models.Report {
	c, err := models.ParseCategory(rec.Category)
	if err != nil {
		c = models.CategoryOther
	}
	return models.Report{
		ID:          rec.ID,
		Category:    c,
		Description: rec.Description,
		Location:    rec.Location,
		Council:     rec.Council,
		Status:      models.ReportStatus(rec.Status),
		SubmittedAt: time.UnixMilli(rec.SubmittedAtMs).UTC(),
		Updates:     rec.Updates,
	}
}
