// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/localfix/localfix/internal/logger"
)

// Preference keys
const (
	PrefCouncil   = "council"
	PrefAuthToken = "auth_token"
	PrefUserName  = "user_name"
	// PrefSwipeBack holds "on" or "off"
	PrefSwipeBack = "swipe_back"
	// PrefTransition holds the enter animation type
	PrefTransition = "transition"
)

// GetPref returns the value stored under key, or ErrNotFound
func (s *Store) GetPref(ctx context.Context, key string) (string, error) {
	var rec prefRecord
	err := s.db.WithContext(ctx).First(&rec, "k = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("pref %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read pref %q: %w", key, err)
	}
	return rec.Value, nil
}

// SetPref stores value under key, replacing any previous value
func (s *Store) SetPref(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("empty pref key")
	}

	rec := prefRecord{Key: key, Value: value, ChangedAtMs: s.now().UnixMilli()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "k"}},
		DoUpdates: clause.AssignmentColumns([]string{"v", "updated_at_unixms"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to write pref %q: %w", key, err)
	}

	log := logger.GetStorageLogger()
	log.Debug().Str("key", key).Msg("Pref updated")
	return nil
}

// DeletePref removes key. Deleting a missing key is not an error.
func (s *Store) DeletePref(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&prefRecord{}, "k = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete pref %q: %w", key, err)
	}
	return nil
}

// Prefs returns every stored preference
func (s *Store) Prefs(ctx context.Context) (map[string]string, error) {
	var recs []prefRecord
	if err := s.db.WithContext(ctx).Order("k").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to list prefs: %w", err)
	}
	return lo.SliceToMap(recs, func(rec prefRecord) (string, string) {
		return rec.Key, rec.Value
	}), nil
}

// Logout forgets the signed-in user
func (s *Store) Logout(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Where("k IN ?", []string{PrefAuthToken, PrefUserName}).Delete(&prefRecord{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
