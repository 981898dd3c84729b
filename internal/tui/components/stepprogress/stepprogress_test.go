// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package stepprogress

import (
	"strings"
	"testing"

	"github.com/localfix/localfix/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestReached(t *testing.T) {
	assert.Equal(t, 1, New(models.ReportStatusSubmitted).Reached())
	assert.Equal(t, 3, New(models.ReportStatusInProgress).Reached())
	assert.Equal(t, 4, New(models.ReportStatusFixed).Reached())
	assert.Equal(t, -1, New(models.ReportStatusClosed).Reached())
}

func TestView(t *testing.T) {
	out := New(models.ReportStatusAcknowledged).SetWidth(8).View()
	assert.Contains(t, out, "2/4")
	assert.Contains(t, out, "Acknowledged")
	assert.Equal(t, 4, strings.Count(out, "▓"))
	assert.Equal(t, 4, strings.Count(out, "░"))

	done := New(models.ReportStatusFixed).SetWidth(8).View()
	assert.Contains(t, done, "Fixed ✓")
	assert.Equal(t, 8, strings.Count(done, "▓"))

	closed := New(models.ReportStatusClosed).SetWidth(8).View()
	assert.Contains(t, closed, "Closed")
	assert.NotContains(t, closed, "▓")
}
