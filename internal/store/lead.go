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

// LeadStore manages inbound course inquiries in the database.
type LeadStore struct {
	db *sql.DB
}

// NewLeadStore returns a new LeadStore.
func NewLeadStore(db *sql.DB) *LeadStore {
	return &LeadStore{db: db}
}

const leadColumns = `id, course_id, name, company, email, phone, message,
	participants_estimate, desired_timeframe, language_preference,
	location_text, status, created_at, updated_at`

// scanLead scans a row into a Lead struct.
func scanLead(scanner interface{ Scan(...any) error }) (*models.Lead, error) {
	var l models.Lead
	err := scanner.Scan(
		&l.ID, &l.CourseID, &l.Name, &l.Company, &l.Email, &l.Phone, &l.Message,
		&l.ParticipantsEstimate, &l.DesiredTimeframe, &l.LanguagePreference,
		&l.LocationText, &l.Status, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// List returns all leads, newest first.
func (s *LeadStore) List() ([]models.Lead, error) {
	rows, err := s.db.Query(`SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return s.collect(rows)
}

// ListByStatus returns the leads in one workflow status, newest first.
func (s *LeadStore) ListByStatus(status models.LeadStatus) ([]models.Lead, error) {
	rows, err := s.db.Query(`SELECT `+leadColumns+` FROM leads WHERE status = $1 ORDER BY created_at DESC`, status)
	if err != nil {
		return nil, fmt.Errorf("list leads by status: %w", err)
	}
	return s.collect(rows)
}

func (s *LeadStore) collect(rows *sql.Rows) ([]models.Lead, error) {
	defer rows.Close()
	var items []models.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		items = append(items, *l)
	}
	return items, rows.Err()
}

// CountByStatus returns lead counts grouped by status for the dashboard.
func (s *LeadStore) CountByStatus() (map[models.LeadStatus]int, error) {
	rows, err := s.db.Query(`SELECT status, COUNT(*) FROM leads GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("count leads: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.LeadStatus]int)
	for rows.Next() {
		var status models.LeadStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan lead count: %w", err)
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

// FindByID retrieves a lead by ID. Returns nil if not found.
func (s *LeadStore) FindByID(id uuid.UUID) (*models.Lead, error) {
	row := s.db.QueryRow(`SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)
	l, err := scanLead(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find lead by id: %w", err)
	}
	return l, nil
}

// Create inserts a new lead from the public inquiry form. Status always
// starts as new.
func (s *LeadStore) Create(l *models.Lead) (*models.Lead, error) {
	row := s.db.QueryRow(`
		INSERT INTO leads (course_id, name, company, email, phone, message,
			participants_estimate, desired_timeframe, language_preference, location_text)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+leadColumns,
		l.CourseID, l.Name, l.Company, l.Email, l.Phone, l.Message,
		l.ParticipantsEstimate, l.DesiredTimeframe, l.LanguagePreference, l.LocationText,
	)
	result, err := scanLead(row)
	if err != nil {
		return nil, fmt.Errorf("create lead: %w", err)
	}
	return result, nil
}

// UpdateStatus moves a lead to a new workflow status.
func (s *LeadStore) UpdateStatus(id uuid.UUID, status models.LeadStatus) error {
	_, err := s.db.Exec(`UPDATE leads SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update lead status: %w", err)
	}
	return nil
}

// Delete removes a lead by ID.
func (s *LeadStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}
