// Copyright (C) 2026 LocalFix
// SPDX-License-Identifier: AGPL-3.0-or-later

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Category is the kind of civic issue being reported
type Category int

const (
	CategoryPothole Category = iota
	CategoryRubbish
	CategoryStreetLighting
	CategoryGraffiti
	CategoryAbandonedVehicle
	CategoryOther
)

var categoryNames = map[Category]string{
	CategoryPothole:          "pothole",
	CategoryRubbish:          "rubbish",
	CategoryStreetLighting:   "street_lighting",
	CategoryGraffiti:         "graffiti",
	CategoryAbandonedVehicle: "abandoned_vehicle",
	CategoryOther:            "other",
}

var categoryLabels = map[Category]string{
	CategoryPothole:          "Pothole",
	CategoryRubbish:          "Rubbish & fly-tipping",
	CategoryStreetLighting:   "Street lighting",
	CategoryGraffiti:         "Graffiti",
	CategoryAbandonedVehicle: "Abandoned vehicle",
	CategoryOther:            "Something else",
}

// Categories returns every category in display order
func Categories() []Category {
	return []Category{
		CategoryPothole,
		CategoryRubbish,
		CategoryStreetLighting,
		CategoryGraffiti,
		CategoryAbandonedVehicle,
		CategoryOther,
	}
}

// String returns the stable identifier of the category
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// Label returns the human readable category name
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return "Unknown"
}

// ParseCategory resolves a category from its identifier
func ParseCategory(s string) (Category, error) {
	c, ok := lo.FindKeyBy(categoryNames, func(_ Category, name string) bool {
		return name == strings.ToLower(strings.TrimSpace(s))
	})
	if !ok {
		return 0, fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// ReportStatus is the council-side state of a submitted report
type ReportStatus int

const (
	ReportStatusSubmitted ReportStatus = iota
	ReportStatusAcknowledged
	ReportStatusInProgress
	ReportStatusFixed
	ReportStatusClosed
)

// String returns the string representation of ReportStatus
func (s ReportStatus) String() string {
	switch s {
	case ReportStatusSubmitted:
		return "submitted"
	case ReportStatusAcknowledged:
		return "acknowledged"
	case ReportStatusInProgress:
		return "in_progress"
	case ReportStatusFixed:
		return "fixed"
	case ReportStatusClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// ReportDraft is a report being composed, before submission
type ReportDraft struct {
	ID          string
	Category    Category
	Description string
	Location    string
	CreatedAt   time.Time
}

// Validate reports whether the draft can be submitted
func (d ReportDraft) Validate() error {
	if strings.TrimSpace(d.Description) == "" {
		return errors.New("description is required")
	}
	if strings.TrimSpace(d.Location) == "" {
		return errors.New("location is required")
	}
	return nil
}

// ReportUpdate is a single status change posted on a report
type ReportUpdate struct {
	At     time.Time    `json:"at"`
	Status ReportStatus `json:"status"`
	Note   string       `json:"note"`
}

// ReportUpdates is a JSON array of updates stored in a single column
type ReportUpdates []ReportUpdate

// Scan implements the sql.Scanner interface
func (u *ReportUpdates) Scan(value any) error {
	if value == nil {
		*u = ReportUpdates{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, u)
	case string:
		return json.Unmarshal([]byte(v), u)
	default:
		return errors.New("cannot scan ReportUpdates from non-string/[]byte value")
	}
}

// Value implements the driver.Valuer interface
func (u ReportUpdates) Value() (driver.Value, error) {
	if len(u) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(u)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Report is a submitted issue as recorded in the local history
type Report struct {
	ID          string
	Category    Category
	Description string
	Location    string
	Council     string
	Status      ReportStatus
	SubmittedAt time.Time
	Updates     ReportUpdates
}

// Latest returns the most recent update, if any
func (r Report) Latest() (ReportUpdate, bool) {
	if len(r.Updates) == 0 {
		return ReportUpdate{}, false
	}
	return lo.MaxBy(r.Updates, func(a, b ReportUpdate) bool {
		return a.At.After(b.At)
	}), true
}
