// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package filter holds the pure in-memory predicates behind the course
// list and archive list views. Each view fetches its full candidate set
// once and narrows it here; filtering never goes back to the database.
package filter

import (
	"sort"

	"github.com/google/uuid"

	"kursportal/internal/models"
)

// CourseCriteria narrows a course list. Zero-value fields match all.
type CourseCriteria struct {
	Type         models.CourseType
	Language     string
	CategorySlug string
}

// Courses returns the courses matching every set criterion, preserving
// input order. The input slice is never modified.
func Courses(in []models.Course, c CourseCriteria) []models.Course {
	out := make([]models.Course, 0, len(in))
	for _, course := range in {
		if c.Type != "" && course.CourseType != c.Type {
			continue
		}
		if c.Language != "" && !hasLanguage(course.Languages, c.Language) {
			continue
		}
		if c.CategorySlug != "" {
			if course.CategorySlug == nil || *course.CategorySlug != c.CategorySlug {
				continue
			}
		}
		out = append(out, course)
	}
	return out
}

func hasLanguage(langs []string, want string) bool {
	for _, l := range langs {
		if l == want {
			return true
		}
	}
	return false
}

// RunCriteria narrows an archive list. Zero-value fields match all.
type RunCriteria struct {
	CourseID uuid.UUID
	Year     string
}

// Runs returns the course runs matching every set criterion, preserving
// input order.
func Runs(in []models.CourseRun, c RunCriteria) []models.CourseRun {
	out := make([]models.CourseRun, 0, len(in))
	for i := range in {
		run := in[i]
		if c.CourseID != uuid.Nil && run.CourseID != c.CourseID {
			continue
		}
		if c.Year != "" && run.Year() != c.Year {
			continue
		}
		out = append(out, run)
	}
	return out
}

// RunYears returns the distinct run years, newest first, for the year
// filter dropdown. Runs without a start date are skipped.
func RunYears(in []models.CourseRun) []string {
	seen := make(map[string]bool)
	var years []string
	for i := range in {
		y := in[i].Year()
		if y == "" || seen[y] {
			continue
		}
		seen[y] = true
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	return years
}
