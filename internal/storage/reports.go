// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/localfix/localfix/internal/logger"
	"github.com/localfix/localfix/internal/models"
)

// SaveReport inserts or replaces r
func (s *Store) SaveReport(ctx context.Context, r models.Report) error {
	if r.ID == "" {
		return errors.New("report has no id")
	}

	rec := toRecord(r)
	if err := s.db.WithContext(ctx).Save(&rec).Error; err != nil {
		return fmt.Errorf("failed to save report %s: %w", r.ID, err)
	}

	log := logger.GetStorageLogger()
	log.Info().Str("report_id", r.ID).Str("category", rec.Category).Msg("Report saved")
	return nil
}

// GetReport returns the report with id, or ErrNotFound
func (s *Store) GetReport(ctx context.Context, id string) (models.Report, error) {
	var rec reportRecord
	err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Report{}, fmt.Errorf("report %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Report{}, fmt.Errorf("failed to load report %s: %w", id, err)
	}
	return rec.report(), nil
}

// ListReports returns the report history, newest first
func (s *Store) ListReports(ctx context.Context) ([]models.Report, error) {
	var recs []reportRecord
	err := s.db.WithContext(ctx).
		Order("submitted_at_unixms DESC").
		Order("id").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return lo.Map(recs, func(rec reportRecord, _ int) models.Report {
		return rec.report()
	}), nil
}

// AppendUpdate records upd on report id and moves the report to upd's status
func (s *Store) AppendUpdate(ctx context.Context, id string, upd models.ReportUpdate) error {
	r, err := s.GetReport(ctx, id)
	if err != nil {
		return err
	}
	if upd.At.IsZero() {
		upd.At = s.now()
	}
	r.Updates = append(r.Updates, upd)
	r.Status = upd.Status
	return s.SaveReport(ctx, r)
}
