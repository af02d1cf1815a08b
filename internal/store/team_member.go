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

// TeamMemberStore manages staff profiles in the database.
type TeamMemberStore struct {
	db *sql.DB
}

// NewTeamMemberStore returns a new TeamMemberStore.
func NewTeamMemberStore(db *sql.DB) *TeamMemberStore {
	return &TeamMemberStore{db: db}
}

const teamMemberColumns = `id, name, title, bio, skills, photo_url,
	is_active, sort_order, created_at, updated_at`

func scanTeamMember(scanner interface{ Scan(...any) error }) (*models.TeamMember, error) {
	var m models.TeamMember
	var skills []byte
	err := scanner.Scan(
		&m.ID, &m.Name, &m.Title, &m.Bio, &skills, &m.PhotoURL,
		&m.IsActive, &m.SortOrder, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := scanJSONB(skills, &m.Skills); err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns all team members ordered by sort order.
func (s *TeamMemberStore) List() ([]models.TeamMember, error) {
	return s.list(`SELECT ` + teamMemberColumns + ` FROM team_members ORDER BY sort_order, name`)
}

// ListActive returns the active team members for the public about page.
func (s *TeamMemberStore) ListActive() ([]models.TeamMember, error) {
	return s.list(`SELECT ` + teamMemberColumns + ` FROM team_members WHERE is_active ORDER BY sort_order, name`)
}

func (s *TeamMemberStore) list(query string) ([]models.TeamMember, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	var items []models.TeamMember
	for rows.Next() {
		m, err := scanTeamMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

// FindByID retrieves a team member by ID. Returns nil if not found.
func (s *TeamMemberStore) FindByID(id uuid.UUID) (*models.TeamMember, error) {
	row := s.db.QueryRow(`SELECT `+teamMemberColumns+` FROM team_members WHERE id = $1`, id)
	m, err := scanTeamMember(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find team member by id: %w", err)
	}
	return m, nil
}

// Create inserts a new team member and returns it.
func (s *TeamMemberStore) Create(m *models.TeamMember) (*models.TeamMember, error) {
	skills, err := jsonbValue(m.Skills)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRow(`
		INSERT INTO team_members (name, title, bio, skills, photo_url, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+teamMemberColumns,
		m.Name, m.Title, m.Bio, skills, m.PhotoURL, m.IsActive, m.SortOrder,
	)
	result, err := scanTeamMember(row)
	if err != nil {
		return nil, fmt.Errorf("create team member: %w", err)
	}
	return result, nil
}

// Update replaces all editable fields of an existing team member.
func (s *TeamMemberStore) Update(m *models.TeamMember) error {
	skills, err := jsonbValue(m.Skills)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		UPDATE team_members SET
			name = $1, title = $2, bio = $3, skills = $4, photo_url = $5,
			is_active = $6, sort_order = $7, updated_at = NOW()
		WHERE id = $8
	`, m.Name, m.Title, m.Bio, skills, m.PhotoURL, m.IsActive, m.SortOrder, m.ID)
	if err != nil {
		return fmt.Errorf("update team member: %w", err)
	}
	return nil
}

// Delete removes a team member by ID.
func (s *TeamMemberStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM team_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}
	return nil
}
