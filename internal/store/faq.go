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

// FAQStore manages FAQ entries in the database.
type FAQStore struct {
	db *sql.DB
}

// NewFAQStore returns a new FAQStore.
func NewFAQStore(db *sql.DB) *FAQStore {
	return &FAQStore{db: db}
}

const faqColumns = `id, question, answer, sort_order, is_published, created_at, updated_at`

func scanFAQ(scanner interface{ Scan(...any) error }) (*models.FAQ, error) {
	var f models.FAQ
	err := scanner.Scan(
		&f.ID, &f.Question, &f.Answer, &f.SortOrder, &f.IsPublished,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// List returns all FAQ entries ordered by sort order.
func (s *FAQStore) List() ([]models.FAQ, error) {
	return s.list(`SELECT ` + faqColumns + ` FROM faqs ORDER BY sort_order, created_at`)
}

// ListPublished returns the published FAQ entries ordered by sort order.
func (s *FAQStore) ListPublished() ([]models.FAQ, error) {
	return s.list(`SELECT ` + faqColumns + ` FROM faqs WHERE is_published ORDER BY sort_order, created_at`)
}

func (s *FAQStore) list(query string) ([]models.FAQ, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	defer rows.Close()

	var items []models.FAQ
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		items = append(items, *f)
	}
	return items, rows.Err()
}

// FindByID retrieves an FAQ entry by ID. Returns nil if not found.
func (s *FAQStore) FindByID(id uuid.UUID) (*models.FAQ, error) {
	row := s.db.QueryRow(`SELECT `+faqColumns+` FROM faqs WHERE id = $1`, id)
	f, err := scanFAQ(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find faq by id: %w", err)
	}
	return f, nil
}

// Create inserts a new FAQ entry and returns it.
func (s *FAQStore) Create(f *models.FAQ) (*models.FAQ, error) {
	row := s.db.QueryRow(`
		INSERT INTO faqs (question, answer, sort_order, is_published)
		VALUES ($1, $2, $3, $4)
		RETURNING `+faqColumns,
		f.Question, f.Answer, f.SortOrder, f.IsPublished,
	)
	result, err := scanFAQ(row)
	if err != nil {
		return nil, fmt.Errorf("create faq: %w", err)
	}
	return result, nil
}

// Update replaces all editable fields of an existing FAQ entry.
func (s *FAQStore) Update(f *models.FAQ) error {
	_, err := s.db.Exec(`
		UPDATE faqs SET
			question = $1, answer = $2, sort_order = $3, is_published = $4,
			updated_at = NOW()
		WHERE id = $5
	`, f.Question, f.Answer, f.SortOrder, f.IsPublished, f.ID)
	if err != nil {
		return fmt.Errorf("update faq: %w", err)
	}
	return nil
}

// Delete removes an FAQ entry by ID.
func (s *FAQStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete faq: %w", err)
	}
	return nil
}
