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

// InstructorStore manages instructors in the database.
type InstructorStore struct {
	db *sql.DB
}

// NewInstructorStore returns a new InstructorStore.
func NewInstructorStore(db *sql.DB) *InstructorStore {
	return &InstructorStore{db: db}
}

const instructorColumns = `id, name, bio, photo_url, languages, is_active,
	created_at, updated_at`

func scanInstructor(scanner interface{ Scan(...any) error }) (*models.Instructor, error) {
	var i models.Instructor
	var languages []byte
	err := scanner.Scan(
		&i.ID, &i.Name, &i.Bio, &i.PhotoURL, &languages, &i.IsActive,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := scanJSONB(languages, &i.Languages); err != nil {
		return nil, err
	}
	return &i, nil
}

// List returns all instructors ordered by name.
func (s *InstructorStore) List() ([]models.Instructor, error) {
	rows, err := s.db.Query(`SELECT ` + instructorColumns + ` FROM instructors ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	defer rows.Close()

	var items []models.Instructor
	for rows.Next() {
		i, err := scanInstructor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan instructor: %w", err)
		}
		items = append(items, *i)
	}
	return items, rows.Err()
}

// FindByID retrieves an instructor by ID. Returns nil if not found.
func (s *InstructorStore) FindByID(id uuid.UUID) (*models.Instructor, error) {
	row := s.db.QueryRow(`SELECT `+instructorColumns+` FROM instructors WHERE id = $1`, id)
	i, err := scanInstructor(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find instructor by id: %w", err)
	}
	return i, nil
}

// Create inserts a new instructor and returns it.
func (s *InstructorStore) Create(i *models.Instructor) (*models.Instructor, error) {
	languages, err := jsonbValue(i.Languages)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRow(`
		INSERT INTO instructors (name, bio, photo_url, languages, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+instructorColumns,
		i.Name, i.Bio, i.PhotoURL, languages, i.IsActive,
	)
	result, err := scanInstructor(row)
	if err != nil {
		return nil, fmt.Errorf("create instructor: %w", err)
	}
	return result, nil
}

// Update replaces all editable fields of an existing instructor.
func (s *InstructorStore) Update(i *models.Instructor) error {
	languages, err := jsonbValue(i.Languages)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		UPDATE instructors SET
			name = $1, bio = $2, photo_url = $3, languages = $4,
			is_active = $5, updated_at = NOW()
		WHERE id = $6
	`, i.Name, i.Bio, i.PhotoURL, languages, i.IsActive, i.ID)
	if err != nil {
		return fmt.Errorf("update instructor: %w", err)
	}
	return nil
}

// Delete removes an instructor by ID. Runs keep a NULL link.
func (s *InstructorStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM instructors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete instructor: %w", err)
	}
	return nil
}
