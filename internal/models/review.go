// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is customer feedback tied to a specific course run. Only
// approved reviews are rendered on the public site.
type Review struct {
	ID          uuid.UUID `json:"id"`
	CourseRunID uuid.UUID `json:"course_run_id"`
	Rating      int       `json:"rating"` // 1-5
	Comment     *string   `json:"comment"`
	DisplayName *string   `json:"display_name"`
	Company     *string   `json:"company"`
	IsApproved  bool      `json:"is_approved"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
