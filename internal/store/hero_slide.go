// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"kursportal/internal/models"
)

// HeroSlideStore manages home page hero slides in the database.
type HeroSlideStore struct {
	db *sql.DB
}

// NewHeroSlideStore returns a new HeroSlideStore.
func NewHeroSlideStore(db *sql.DB) *HeroSlideStore {
	return &HeroSlideStore{db: db}
}

const heroSlideColumns = `id, image_url, title, subtitle,
	cta_primary_label, cta_primary_href, cta_secondary_label, cta_secondary_href,
	sort_order, is_active, created_at, updated_at`

func scanHeroSlide(scanner interface{ Scan(...any) error }) (*models.HeroSlide, error) {
	var h models.HeroSlide
	err := scanner.Scan(
		&h.ID, &h.ImageURL, &h.Title, &h.Subtitle,
		&h.CTAPrimaryLabel, &h.CTAPrimaryHref, &h.CTASecondaryLabel, &h.CTASecondaryHref,
		&h.SortOrder, &h.IsActive, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// List returns all hero slides ordered by sort order.
func (s *HeroSlideStore) List() ([]models.HeroSlide, error) {
	return s.list(`SELECT ` + heroSlideColumns + ` FROM hero_slides ORDER BY sort_order, created_at`)
}

// ListActive returns the active slides for the home page carousel.
func (s *HeroSlideStore) ListActive() ([]models.HeroSlide, error) {
	return s.list(`SELECT ` + heroSlideColumns + ` FROM hero_slides WHERE is_active ORDER BY sort_order, created_at`)
}

func (s *HeroSlideStore) list(query string) ([]models.HeroSlide, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list hero slides: %w", err)
	}
	defer rows.Close()

	var items []models.HeroSlide
	for rows.Next() {
		h, err := scanHeroSlide(rows)
		if err != nil {
			return nil, fmt.Errorf("scan hero slide: %w", err)
		}
		items = append(items, *h)
	}
	return items, rows.Err()
}

// FindByID retrieves a hero slide by ID. Returns nil if not found.
func (s *HeroSlideStore) FindByID(id uuid.UUID) (*models.HeroSlide, error) {
	row := s.db.QueryRow(`SELECT `+heroSlideColumns+` FROM hero_slides WHERE id = $1`, id)
	h, err := scanHeroSlide(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find hero slide by id: %w", err)
	}
	return h, nil
}

// Create inserts a new hero slide and returns it.
func (s *HeroSlideStore) Create(h *models.HeroSlide) (*models.HeroSlide, error) {
	row := s.db.QueryRow(`
		INSERT INTO hero_slides (image_url, title, subtitle,
			cta_primary_label, cta_primary_href, cta_secondary_label, cta_secondary_href,
			sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+heroSlideColumns,
		h.ImageURL, h.Title, h.Subtitle,
		h.CTAPrimaryLabel, h.CTAPrimaryHref, h.CTASecondaryLabel, h.CTASecondaryHref,
		h.SortOrder, h.IsActive,
	)
	result, err := scanHeroSlide(row)
	if err != nil {
		return nil, fmt.Errorf("create hero slide: %w", err)
	}
	return result, nil
}

// Update replaces all editable fields of an existing hero slide.
func (s *HeroSlideStore) Update(h *models.HeroSlide) error {
	_, err := s.db.Exec(`
		UPDATE hero_slides SET
			image_url = $1, title = $2, subtitle = $3,
			cta_primary_label = $4, cta_primary_href = $5,
			cta_secondary_label = $6, cta_secondary_href = $7,
			sort_order = $8, is_active = $9, updated_at = NOW()
		WHERE id = $10
	`, h.ImageURL, h.Title, h.Subtitle,
		h.CTAPrimaryLabel, h.CTAPrimaryHref,
		h.CTASecondaryLabel, h.CTASecondaryHref,
		h.SortOrder, h.IsActive, h.ID)
	if err != nil {
		return fmt.Errorf("update hero slide: %w", err)
	}
	return nil
}

// Delete removes a hero slide by ID.
func (s *HeroSlideStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM hero_slides WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete hero slide: %w", err)
	}
	return nil
}
