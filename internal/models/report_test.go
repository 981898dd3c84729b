// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory(t *testing.T) {
	for _, c := range Categories() {
		t.Run(c.String(), func(t *testing.T) {
			parsed, err := ParseCategory(c.String())
			require.NoError(t, err)
			assert.Equal(t, c, parsed)
			assert.NotEqual(t, "Unknown", c.Label())
		})
	}

	_, err := ParseCategory("volcano")
	assert.Error(t, err)

	parsed, err := ParseCategory("  Pothole ")
	require.NoError(t, err)
	assert.Equal(t, CategoryPothole, parsed)
}

func TestReportDraft_Validate(t *testing.T) {
	draft := ReportDraft{Category: CategoryRubbish}
	assert.EqualError(t, draft.Validate(), "description is required")

	draft.Description = "Bags dumped by the bus stop"
	assert.EqualError(t, draft.Validate(), "location is required")

	draft.Location = "High Street"
	assert.NoError(t, draft.Validate())
}

func TestReportUpdates_ScanValue(t *testing.T) {
	var empty ReportUpdates
	v, err := empty.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	var scanned ReportUpdates
	require.NoError(t, scanned.Scan(nil))
	assert.Empty(t, scanned)

	require.NoError(t, scanned.Scan(`[{"at":"2026-01-02T03:04:05Z","status":3,"note":"Filled"}]`))
	require.Len(t, scanned, 1)
	assert.Equal(t, ReportStatusFixed, scanned[0].Status)

	assert.Error(t, scanned.Scan(42))
}

func TestReport_Latest(t *testing.T) {
	r := Report{}
	_, ok := r.Latest()
	assert.False(t, ok)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	r.Updates = ReportUpdates{
		{At: base, Status: ReportStatusAcknowledged},
		{At: base.Add(48 * time.Hour), Status: ReportStatusFixed},
		{At: base.Add(time.Hour), Status: ReportStatusInProgress},
	}
	latest, ok := r.Latest()
	require.True(t, ok)
	assert.Equal(t, ReportStatusFixed, latest.Status)
}
