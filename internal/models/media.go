// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// MediaItem is one image or video attached to a course run. Items are
// stored as a jsonb array on the run row; the files themselves live in
// object storage.
type MediaItem struct {
	Type string `json:"type"` // "image" or "video"
	URL  string `json:"url"`
	Alt  string `json:"alt,omitempty"`
}

// IsImage returns true for image items.
func (m MediaItem) IsImage() bool {
	return m.Type == "image"
}
