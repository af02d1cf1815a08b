// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"kursportal/internal/models"
)

// ErrProtected is returned when deleting a system-protected category.
var ErrProtected = errors.New("category is system-protected")

// CategoryStore manages course categories in the database.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, slug, name, icon_svg, icon_svg_url, icon_png_url,
	icon_size_px, icon_plate_variant, is_active, is_system, sort_order,
	created_at, updated_at`

// scanCategory scans a row into a Category struct.
func scanCategory(scanner interface{ Scan(...any) error }) (*models.Category, error) {
	var c models.Category
	err := scanner.Scan(
		&c.ID, &c.Slug, &c.Name, &c.IconSVG, &c.IconSVGURL, &c.IconPNGURL,
		&c.IconSizePx, &c.IconPlateVariant, &c.IsActive, &c.IsSystem,
		&c.SortOrder, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all categories ordered by sort order.
func (s *CategoryStore) List() ([]models.Category, error) {
	return s.list(`SELECT ` + categoryColumns + ` FROM categories ORDER BY sort_order, name`)
}

// ListActive returns the active categories ordered by sort order.
func (s *CategoryStore) ListActive() ([]models.Category, error) {
	return s.list(`SELECT ` + categoryColumns + ` FROM categories WHERE is_active ORDER BY sort_order, name`)
}

func (s *CategoryStore) list(query string) ([]models.Category, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a category by ID. Returns nil if not found.
func (s *CategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	row := s.db.QueryRow(`SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return c, nil
}

// FindBySlug retrieves a category by slug. Returns nil if not found.
func (s *CategoryStore) FindBySlug(slug string) (*models.Category, error) {
	row := s.db.QueryRow(`SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, slug)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by slug: %w", err)
	}
	return c, nil
}

// Create inserts a new category and returns it. Icon fields are never
// set at creation time: the conversion pipeline needs a persisted slug
// before it can namespace storage paths.
func (s *CategoryStore) Create(c *models.Category) (*models.Category, error) {
	row := s.db.QueryRow(`
		INSERT INTO categories (slug, name, icon_size_px, icon_plate_variant, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+categoryColumns,
		c.Slug, c.Name, c.IconSizePx, c.IconPlateVariant, c.IsActive, c.SortOrder,
	)
	result, err := scanCategory(row)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return result, nil
}

// Update modifies a category's descriptive fields. Icon asset fields are
// only touched through SetIcon.
func (s *CategoryStore) Update(c *models.Category) error {
	_, err := s.db.Exec(`
		UPDATE categories SET
			slug = $1, name = $2, icon_size_px = $3, icon_plate_variant = $4,
			is_active = $5, sort_order = $6, updated_at = NOW()
		WHERE id = $7
	`, c.Slug, c.Name, c.IconSizePx, c.IconPlateVariant, c.IsActive, c.SortOrder, c.ID)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// SetIcon writes all three derived icon values in a single update. The
// conversion pipeline calls this as its final step.
func (s *CategoryStore) SetIcon(id uuid.UUID, svgMarkup, svgURL, pngURL string) error {
	_, err := s.db.Exec(`
		UPDATE categories SET
			icon_svg = $1, icon_svg_url = $2, icon_png_url = $3, updated_at = NOW()
		WHERE id = $4
	`, svgMarkup, svgURL, pngURL, id)
	if err != nil {
		return fmt.Errorf("set category icon: %w", err)
	}
	return nil
}

// Delete removes a category by ID. System categories are protected.
func (s *CategoryStore) Delete(id uuid.UUID) error {
	res, err := s.db.Exec(`DELETE FROM categories WHERE id = $1 AND NOT is_system`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if n == 0 {
		existing, err := s.FindByID(id)
		if err != nil {
			return err
		}
		if existing != nil && existing.IsSystem {
			return ErrProtected
		}
	}
	return nil
}
