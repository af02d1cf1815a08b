// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a course taxonomy record. Categories drive icon
// display on course cards: the icon fields are either all empty (a
// fallback glyph is rendered) or IconPNGURL is set with IconSVG and
// IconSVGURL derived from the most recently uploaded raster.
type Category struct {
	ID               uuid.UUID `json:"id"`
	Slug             string    `json:"slug"`
	Name             string    `json:"name"`
	IconSVG          *string   `json:"icon_svg"`
	IconSVGURL       *string   `json:"icon_svg_url"`
	IconPNGURL       *string   `json:"icon_png_url"`
	IconSizePx       int       `json:"icon_size_px"`
	IconPlateVariant string    `json:"icon_plate_variant"`
	IsActive         bool      `json:"is_active"`
	IsSystem         bool      `json:"is_system"`
	SortOrder        int       `json:"sort_order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// HasIcon returns true if the category has a traced icon available.
func (c *Category) HasIcon() bool {
	return c.IconSVG != nil && *c.IconSVG != ""
}
