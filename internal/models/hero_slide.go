// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// HeroSlide is one slide in the home page hero carousel.
type HeroSlide struct {
	ID                uuid.UUID `json:"id"`
	ImageURL          string    `json:"image_url"`
	Title             *string   `json:"title"`
	Subtitle          *string   `json:"subtitle"`
	CTAPrimaryLabel   *string   `json:"cta_primary_label"`
	CTAPrimaryHref    *string   `json:"cta_primary_href"`
	CTASecondaryLabel *string   `json:"cta_secondary_label"`
	CTASecondaryHref  *string   `json:"cta_secondary_href"`
	SortOrder         int       `json:"sort_order"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
