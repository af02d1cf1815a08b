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

// LegalPageStore manages admin-authored legal pages in the database.
type LegalPageStore struct {
	db *sql.DB
}

// NewLegalPageStore returns a new LegalPageStore.
func NewLegalPageStore(db *sql.DB) *LegalPageStore {
	return &LegalPageStore{db: db}
}

const legalPageColumns = `id, slug, title, body_md, is_published, created_at, updated_at`

func scanLegalPage(scanner interface{ Scan(...any) error }) (*models.LegalPage, error) {
	var p models.LegalPage
	err := scanner.Scan(
		&p.ID, &p.Slug, &p.Title, &p.BodyMD, &p.IsPublished,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns all legal pages ordered by title.
func (s *LegalPageStore) List() ([]models.LegalPage, error) {
	rows, err := s.db.Query(`SELECT ` + legalPageColumns + ` FROM legal_pages ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list legal pages: %w", err)
	}
	defer rows.Close()

	var items []models.LegalPage
	for rows.Next() {
		p, err := scanLegalPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan legal page: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a legal page by ID. Returns nil if not found.
func (s *LegalPageStore) FindByID(id uuid.UUID) (*models.LegalPage, error) {
	row := s.db.QueryRow(`SELECT `+legalPageColumns+` FROM legal_pages WHERE id = $1`, id)
	p, err := scanLegalPage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find legal page by id: %w", err)
	}
	return p, nil
}

// FindPublishedBySlug retrieves a published page by slug for the public
// catch-all route. Returns nil if not found or unpublished.
func (s *LegalPageStore) FindPublishedBySlug(slug string) (*models.LegalPage, error) {
	row := s.db.QueryRow(`SELECT `+legalPageColumns+` FROM legal_pages WHERE slug = $1 AND is_published`, slug)
	p, err := scanLegalPage(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find legal page by slug: %w", err)
	}
	return p, nil
}

// Create inserts a new legal page and returns it.
func (s *LegalPageStore) Create(p *models.LegalPage) (*models.LegalPage, error) {
	row := s.db.QueryRow(`
		INSERT INTO legal_pages (slug, title, body_md, is_published)
		VALUES ($1, $2, $3, $4)
		RETURNING `+legalPageColumns,
		p.Slug, p.Title, p.BodyMD, p.IsPublished,
	)
	result, err := scanLegalPage(row)
	if err != nil {
		return nil, fmt.Errorf("create legal page: %w", err)
	}
	return result, nil
}

// Update replaces all editable fields of an existing legal page.
func (s *LegalPageStore) Update(p *models.LegalPage) error {
	_, err := s.db.Exec(`
		UPDATE legal_pages SET
			slug = $1, title = $2, body_md = $3, is_published = $4,
			updated_at = NOW()
		WHERE id = $5
	`, p.Slug, p.Title, p.BodyMD, p.IsPublished, p.ID)
	if err != nil {
		return fmt.Errorf("update legal page: %w", err)
	}
	return nil
}

// Delete removes a legal page by ID.
func (s *LegalPageStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM legal_pages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete legal page: %w", err)
	}
	return nil
}
