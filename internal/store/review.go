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

// ReviewStore manages course run reviews in the database.
type ReviewStore struct {
	db *sql.DB
}

// NewReviewStore returns a new ReviewStore.
func NewReviewStore(db *sql.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

const reviewColumns = `id, course_run_id, rating, comment, display_name,
	company, is_approved, created_at, updated_at`

func scanReview(scanner interface{ Scan(...any) error }) (*models.Review, error) {
	var r models.Review
	err := scanner.Scan(
		&r.ID, &r.CourseRunID, &r.Rating, &r.Comment, &r.DisplayName,
		&r.Company, &r.IsApproved, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// List returns all reviews, newest first.
func (s *ReviewStore) List() ([]models.Review, error) {
	rows, err := s.db.Query(`SELECT ` + reviewColumns + ` FROM reviews ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return s.collect(rows)
}

// ListApprovedByRun returns the approved reviews for one course run.
func (s *ReviewStore) ListApprovedByRun(runID uuid.UUID) ([]models.Review, error) {
	rows, err := s.db.Query(`SELECT `+reviewColumns+` FROM reviews WHERE course_run_id = $1 AND is_approved ORDER BY created_at DESC`, runID)
	if err != nil {
		return nil, fmt.Errorf("list approved reviews: %w", err)
	}
	return s.collect(rows)
}

// ListApproved returns all approved reviews, newest first, for the
// public testimonial strip.
func (s *ReviewStore) ListApproved() ([]models.Review, error) {
	rows, err := s.db.Query(`SELECT ` + reviewColumns + ` FROM reviews WHERE is_approved ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list approved reviews: %w", err)
	}
	return s.collect(rows)
}

func (s *ReviewStore) collect(rows *sql.Rows) ([]models.Review, error) {
	defer rows.Close()
	var items []models.Review
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		items = append(items, *r)
	}
	return items, rows.Err()
}

// FindByID retrieves a review by ID. Returns nil if not found.
func (s *ReviewStore) FindByID(id uuid.UUID) (*models.Review, error) {
	row := s.db.QueryRow(`SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id)
	r, err := scanReview(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find review by id: %w", err)
	}
	return r, nil
}

// Create inserts a new review. Reviews start unapproved.
func (s *ReviewStore) Create(r *models.Review) (*models.Review, error) {
	row := s.db.QueryRow(`
		INSERT INTO reviews (course_run_id, rating, comment, display_name, company)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+reviewColumns,
		r.CourseRunID, r.Rating, r.Comment, r.DisplayName, r.Company,
	)
	result, err := scanReview(row)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return result, nil
}

// Update replaces all editable fields of an existing review.
func (s *ReviewStore) Update(r *models.Review) error {
	_, err := s.db.Exec(`
		UPDATE reviews SET
			course_run_id = $1, rating = $2, comment = $3, display_name = $4,
			company = $5, is_approved = $6, updated_at = NOW()
		WHERE id = $7
	`, r.CourseRunID, r.Rating, r.Comment, r.DisplayName, r.Company, r.IsApproved, r.ID)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	return nil
}

// SetApproved toggles a review's public visibility.
func (s *ReviewStore) SetApproved(id uuid.UUID, approved bool) error {
	_, err := s.db.Exec(`UPDATE reviews SET is_approved = $1, updated_at = NOW() WHERE id = $2`, approved, id)
	if err != nil {
		return fmt.Errorf("set review approved: %w", err)
	}
	return nil
}

// Delete removes a review by ID.
func (s *ReviewStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}
