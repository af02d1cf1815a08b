// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus tracks where an inquiry is in the sales workflow.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusOffered   LeadStatus = "offered"
	LeadStatusBooked    LeadStatus = "booked"
	LeadStatusDone      LeadStatus = "done"
	LeadStatusLost      LeadStatus = "lost"
)

// LeadStatusLabels maps lead statuses to their Norwegian display labels.
var LeadStatusLabels = map[LeadStatus]string{
	LeadStatusNew:       "Ny",
	LeadStatusContacted: "Kontaktet",
	LeadStatusOffered:   "Tilbudt",
	LeadStatusBooked:    "Booket",
	LeadStatusDone:      "Ferdig",
	LeadStatusLost:      "Tapt",
}

// ValidLeadStatus reports whether s is a known lead status.
func ValidLeadStatus(s string) bool {
	_, ok := LeadStatusLabels[LeadStatus(s)]
	return ok
}

// Lead is an inbound course inquiry submitted by a prospective customer
// through the public inquiry form.
type Lead struct {
	ID                   uuid.UUID  `json:"id"`
	CourseID             *uuid.UUID `json:"course_id"`
	Name                 string     `json:"name"`
	Company              *string    `json:"company"`
	Email                *string    `json:"email"`
	Phone                *string    `json:"phone"`
	Message              *string    `json:"message"`
	ParticipantsEstimate *int       `json:"participants_estimate"`
	DesiredTimeframe     *string    `json:"desired_timeframe"`
	LanguagePreference   *string    `json:"language_preference"`
	LocationText         *string    `json:"location_text"`
	Status               LeadStatus `json:"status"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`

	// Virtual field joined in by handlers (explicit two-step fetch,
	// not a nested select).
	CourseTitle *string `json:"course_title,omitempty"`
}

// StatusLabel returns the display label for the lead status.
func (l *Lead) StatusLabel() string {
	if s, ok := LeadStatusLabels[l.Status]; ok {
		return s
	}
	return string(l.Status)
}
