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

// CourseStore manages course offerings in the database.
type CourseStore struct {
	db *sql.DB
}

// NewCourseStore returns a new CourseStore.
func NewCourseStore(db *sql.DB) *CourseStore {
	return &CourseStore{db: db}
}

const courseColumns = `id, slug, title, course_type, category_slug,
	short_description, description, target_audience, learning_outcomes,
	course_structure, requirements, certification_info, practical_info,
	duration, languages, image_url, hero_image_url, is_active, is_featured,
	offer_title, offer_body, offer_is_active, offer_expires_at,
	created_at, updated_at`

// scanCourse scans a row into a Course struct, decoding the jsonb
// languages column.
func scanCourse(scanner interface{ Scan(...any) error }) (*models.Course, error) {
	var c models.Course
	var languages []byte
	err := scanner.Scan(
		&c.ID, &c.Slug, &c.Title, &c.CourseType, &c.CategorySlug,
		&c.ShortDescription, &c.Description, &c.TargetAudience, &c.LearningOutcomes,
		&c.CourseStructure, &c.Requirements, &c.CertificationInfo, &c.PracticalInfo,
		&c.Duration, &languages, &c.ImageURL, &c.HeroImageURL, &c.IsActive, &c.IsFeatured,
		&c.OfferTitle, &c.OfferBody, &c.OfferIsActive, &c.OfferExpiresAt,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := scanJSONB(languages, &c.Languages); err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns all courses ordered by title.
func (s *CourseStore) List() ([]models.Course, error) {
	return s.list(`SELECT ` + courseColumns + ` FROM courses ORDER BY title`)
}

// ListActive returns the active courses ordered by title. This is the
// full candidate set for the public course list; filtering happens in
// memory on top of it.
func (s *CourseStore) ListActive() ([]models.Course, error) {
	return s.list(`SELECT ` + courseColumns + ` FROM courses WHERE is_active ORDER BY title`)
}

// ListFeatured returns the active featured courses for the home page.
func (s *CourseStore) ListFeatured() ([]models.Course, error) {
	return s.list(`SELECT ` + courseColumns + ` FROM courses WHERE is_active AND is_featured ORDER BY title`)
}

func (s *CourseStore) list(query string) ([]models.Course, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var items []models.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a course by ID. Returns nil if not found.
func (s *CourseStore) FindByID(id uuid.UUID) (*models.Course, error) {
	row := s.db.QueryRow(`SELECT `+courseColumns+` FROM courses WHERE id = $1`, id)
	c, err := scanCourse(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find course by id: %w", err)
	}
	return c, nil
}

// FindBySlug retrieves a course by slug. Returns nil if not found.
func (s *CourseStore) FindBySlug(slug string) (*models.Course, error) {
	row := s.db.QueryRow(`SELECT `+courseColumns+` FROM courses WHERE slug = $1`, slug)
	c, err := scanCourse(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find course by slug: %w", err)
	}
	return c, nil
}

// Create inserts a new course and returns it.
func (s *CourseStore) Create(c *models.Course) (*models.Course, error) {
	languages, err := jsonbValue(c.Languages)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRow(`
		INSERT INTO courses (slug, title, course_type, category_slug,
			short_description, description, target_audience, learning_outcomes,
			course_structure, requirements, certification_info, practical_info,
			duration, languages, image_url, hero_image_url, is_active, is_featured,
			offer_title, offer_body, offer_is_active, offer_expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
			$13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING `+courseColumns,
		c.Slug, c.Title, c.CourseType, c.CategorySlug,
		c.ShortDescription, c.Description, c.TargetAudience, c.LearningOutcomes,
		c.CourseStructure, c.Requirements, c.CertificationInfo, c.PracticalInfo,
		c.Duration, languages, c.ImageURL, c.HeroImageURL, c.IsActive, c.IsFeatured,
		c.OfferTitle, c.OfferBody, c.OfferIsActive, c.OfferExpiresAt,
	)
	result, err := scanCourse(row)
	if err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}
	return result, nil
}

// Update replaces all editable fields of an existing course. Saves are
// whole-record upserts from the admin form, never partial patches.
func (s *CourseStore) Update(c *models.Course) error {
	languages, err := jsonbValue(c.Languages)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		UPDATE courses SET
			slug = $1, title = $2, course_type = $3, category_slug = $4,
			short_description = $5, description = $6, target_audience = $7,
			learning_outcomes = $8, course_structure = $9, requirements = $10,
			certification_info = $11, practical_info = $12, duration = $13,
			languages = $14, image_url = $15, hero_image_url = $16,
			is_active = $17, is_featured = $18, offer_title = $19,
			offer_body = $20, offer_is_active = $21, offer_expires_at = $22,
			updated_at = NOW()
		WHERE id = $23
	`, c.Slug, c.Title, c.CourseType, c.CategorySlug,
		c.ShortDescription, c.Description, c.TargetAudience,
		c.LearningOutcomes, c.CourseStructure, c.Requirements,
		c.CertificationInfo, c.PracticalInfo, c.Duration,
		languages, c.ImageURL, c.HeroImageURL,
		c.IsActive, c.IsFeatured, c.OfferTitle,
		c.OfferBody, c.OfferIsActive, c.OfferExpiresAt, c.ID)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	return nil
}

// Delete removes a course by ID. Runs cascade; leads keep a NULL link.
func (s *CourseStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}
