// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// CourseRun is one concrete scheduled or completed instance of a course,
// with its own participants, dates, and media gallery. Published runs
// make up the public archive.
type CourseRun struct {
	ID                uuid.UUID   `json:"id"`
	CourseID          uuid.UUID   `json:"course_id"`
	InstructorID      *uuid.UUID  `json:"instructor_id"`
	ClientLabel       *string     `json:"client_label"`
	Summary           *string     `json:"summary"`
	Notes             *string     `json:"notes"`
	LocationText      *string     `json:"location_text"`
	DateStart         *time.Time  `json:"date_start"`
	DateEnd           *time.Time  `json:"date_end"`
	DateLabel         *string     `json:"date_label"`
	ParticipantsCount *int        `json:"participants_count"`
	PassedCount       *int        `json:"passed_count"`
	Media             []MediaItem `json:"media"`
	IsPublished       bool        `json:"is_published"`
	IsFeatured        bool        `json:"is_featured"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`

	// Virtual fields joined in by handlers (explicit two-step fetch,
	// not a nested select).
	CourseTitle string `json:"course_title,omitempty"`
	CourseSlug  string `json:"course_slug,omitempty"`
}

// Year returns the four-digit year of the run's start date, or an empty
// string when no start date is set. Used by the archive year filter.
func (r *CourseRun) Year() string {
	if r.DateStart == nil {
		return ""
	}
	return strconv.Itoa(r.DateStart.Year())
}
