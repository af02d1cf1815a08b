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

// CourseRunStore manages course runs in the database.
type CourseRunStore struct {
	db *sql.DB
}

// NewCourseRunStore returns a new CourseRunStore.
func NewCourseRunStore(db *sql.DB) *CourseRunStore {
	return &CourseRunStore{db: db}
}

const courseRunColumns = `id, course_id, instructor_id, client_label, summary,
	notes, location_text, date_start, date_end, date_label,
	participants_count, passed_count, media, is_published, is_featured,
	created_at, updated_at`

// scanCourseRun scans a row into a CourseRun, decoding the jsonb media
// column.
func scanCourseRun(scanner interface{ Scan(...any) error }) (*models.CourseRun, error) {
	var r models.CourseRun
	var media []byte
	err := scanner.Scan(
		&r.ID, &r.CourseID, &r.InstructorID, &r.ClientLabel, &r.Summary,
		&r.Notes, &r.LocationText, &r.DateStart, &r.DateEnd, &r.DateLabel,
		&r.ParticipantsCount, &r.PassedCount, &media, &r.IsPublished, &r.IsFeatured,
		&r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := scanJSONB(media, &r.Media); err != nil {
		return nil, err
	}
	return &r, nil
}

// List returns all course runs, newest start date first.
func (s *CourseRunStore) List() ([]models.CourseRun, error) {
	return s.list(`SELECT ` + courseRunColumns + ` FROM course_runs ORDER BY date_start DESC NULLS LAST, created_at DESC`)
}

// ListPublished returns the published runs for the public archive,
// newest start date first. This is the full candidate set; year and
// course filtering happens in memory.
func (s *CourseRunStore) ListPublished() ([]models.CourseRun, error) {
	return s.list(`SELECT ` + courseRunColumns + ` FROM course_runs WHERE is_published ORDER BY date_start DESC NULLS LAST, created_at DESC`)
}

// ListFeatured returns the published featured runs for the home page.
func (s *CourseRunStore) ListFeatured() ([]models.CourseRun, error) {
	return s.list(`SELECT ` + courseRunColumns + ` FROM course_runs WHERE is_published AND is_featured ORDER BY date_start DESC NULLS LAST`)
}

// ListByCourse returns the published runs of one course.
func (s *CourseRunStore) ListByCourse(courseID uuid.UUID) ([]models.CourseRun, error) {
	rows, err := s.db.Query(`SELECT `+courseRunColumns+` FROM course_runs WHERE course_id = $1 AND is_published ORDER BY date_start DESC NULLS LAST`, courseID)
	if err != nil {
		return nil, fmt.Errorf("list runs by course: %w", err)
	}
	return s.collect(rows)
}

func (s *CourseRunStore) list(query string) ([]models.CourseRun, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list course runs: %w", err)
	}
	return s.collect(rows)
}

func (s *CourseRunStore) collect(rows *sql.Rows) ([]models.CourseRun, error) {
	defer rows.Close()
	var items []models.CourseRun
	for rows.Next() {
		r, err := scanCourseRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan course run: %w", err)
		}
		items = append(items, *r)
	}
	return items, rows.Err()
}

// FindByID retrieves a course run by ID. Returns nil if not found.
func (s *CourseRunStore) FindByID(id uuid.UUID) (*models.CourseRun, error) {
	row := s.db.QueryRow(`SELECT `+courseRunColumns+` FROM course_runs WHERE id = $1`, id)
	r, err := scanCourseRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find course run by id: %w", err)
	}
	return r, nil
}

// Create inserts a new course run and returns it.
func (s *CourseRunStore) Create(r *models.CourseRun) (*models.CourseRun, error) {
	media, err := jsonbValue(r.Media)
	if err != nil {
		return nil, err
	}
	row := s.db.QueryRow(`
		INSERT INTO course_runs (course_id, instructor_id, client_label, summary,
			notes, location_text, date_start, date_end, date_label,
			participants_count, passed_count, media, is_published, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING `+courseRunColumns,
		r.CourseID, r.InstructorID, r.ClientLabel, r.Summary,
		r.Notes, r.LocationText, r.DateStart, r.DateEnd, r.DateLabel,
		r.ParticipantsCount, r.PassedCount, media, r.IsPublished, r.IsFeatured,
	)
	result, err := scanCourseRun(row)
	if err != nil {
		return nil, fmt.Errorf("create course run: %w", err)
	}
	return result, nil
}

// Update replaces all editable fields of an existing course run.
func (s *CourseRunStore) Update(r *models.CourseRun) error {
	media, err := jsonbValue(r.Media)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		UPDATE course_runs SET
			course_id = $1, instructor_id = $2, client_label = $3, summary = $4,
			notes = $5, location_text = $6, date_start = $7, date_end = $8,
			date_label = $9, participants_count = $10, passed_count = $11,
			media = $12, is_published = $13, is_featured = $14, updated_at = NOW()
		WHERE id = $15
	`, r.CourseID, r.InstructorID, r.ClientLabel, r.Summary,
		r.Notes, r.LocationText, r.DateStart, r.DateEnd,
		r.DateLabel, r.ParticipantsCount, r.PassedCount,
		media, r.IsPublished, r.IsFeatured, r.ID)
	if err != nil {
		return fmt.Errorf("update course run: %w", err)
	}
	return nil
}

// Delete removes a course run by ID. Reviews cascade.
func (s *CourseRunStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM course_runs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete course run: %w", err)
	}
	return nil
}

// AttachCourseInfo fills the virtual CourseTitle/CourseSlug fields from
// an already-fetched course list. The archive views fetch runs and
// courses separately and join them here instead of in SQL.
func AttachCourseInfo(runs []models.CourseRun, courses []models.Course) {
	byID := make(map[uuid.UUID]*models.Course, len(courses))
	for i := range courses {
		byID[courses[i].ID] = &courses[i]
	}
	for i := range runs {
		if c, ok := byID[runs[i].CourseID]; ok {
			runs[i].CourseTitle = c.Title
			runs[i].CourseSlug = c.Slug
		}
	}
}
