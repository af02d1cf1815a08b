// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package filter

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"kursportal/internal/models"
)

func strPtr(s string) *string { return &s }

func testCourses() []models.Course {
	return []models.Course{
		{
			Slug:         "varme-arbeider",
			Title:        "Varme arbeider",
			CourseType:   models.CourseTypeCertified,
			CategorySlug: strPtr("hms"),
			Languages:    []string{"no", "en"},
		},
		{
			Slug:         "truckforer",
			Title:        "Truckførerkurs",
			CourseType:   models.CourseTypeCertified,
			CategorySlug: strPtr("maskin"),
			Languages:    []string{"no"},
		},
		{
			Slug:       "forstehjelpskurs",
			Title:      "Førstehjelpskurs",
			CourseType: models.CourseTypeDocumented,
			Languages:  []string{"no", "sign"},
		},
	}
}

func TestCoursesEmptyCriteriaMatchesAll(t *testing.T) {
	in := testCourses()
	got := Courses(in, CourseCriteria{})
	if len(got) != len(in) {
		t.Errorf("empty criteria: want %d courses, got %d", len(in), len(got))
	}
}

func TestCoursesByType(t *testing.T) {
	got := Courses(testCourses(), CourseCriteria{Type: models.CourseTypeCertified})
	if len(got) != 2 {
		t.Fatalf("want 2 certified courses, got %d", len(got))
	}
	if got[0].Slug != "varme-arbeider" || got[1].Slug != "truckforer" {
		t.Errorf("input order not preserved: %s, %s", got[0].Slug, got[1].Slug)
	}
}

func TestCoursesByLanguage(t *testing.T) {
	got := Courses(testCourses(), CourseCriteria{Language: "sign"})
	if len(got) != 1 || got[0].Slug != "forstehjelpskurs" {
		t.Errorf("language filter: got %v", got)
	}
}

func TestCoursesByCategory(t *testing.T) {
	got := Courses(testCourses(), CourseCriteria{CategorySlug: "hms"})
	if len(got) != 1 || got[0].Slug != "varme-arbeider" {
		t.Errorf("category filter: got %v", got)
	}

	// A course with no category never matches a category criterion.
	got = Courses(testCourses(), CourseCriteria{CategorySlug: "finnes-ikke"})
	if len(got) != 0 {
		t.Errorf("unknown category: want no matches, got %d", len(got))
	}
}

func TestCoursesCombinedCriteria(t *testing.T) {
	got := Courses(testCourses(), CourseCriteria{
		Type:     models.CourseTypeCertified,
		Language: "en",
	})
	if len(got) != 1 || got[0].Slug != "varme-arbeider" {
		t.Errorf("combined filter: got %v", got)
	}
}

func TestCoursesIdempotent(t *testing.T) {
	crit := CourseCriteria{Type: models.CourseTypeCertified, Language: "no"}
	once := Courses(testCourses(), crit)
	twice := Courses(once, crit)
	if !reflect.DeepEqual(once, twice) {
		t.Error("applying the same criteria twice changed the result")
	}
}

func date(y, m, d int) *time.Time {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	return &t
}

func testRuns(courseA, courseB uuid.UUID) []models.CourseRun {
	return []models.CourseRun{
		{CourseID: courseA, DateStart: date(2026, 5, 12)},
		{CourseID: courseB, DateStart: date(2025, 11, 3)},
		{CourseID: courseA, DateStart: date(2025, 2, 20)},
		{CourseID: courseB}, // no start date
	}
}

func TestRunsByCourseAndYear(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	runs := testRuns(a, b)

	if got := Runs(runs, RunCriteria{CourseID: a}); len(got) != 2 {
		t.Errorf("course filter: want 2 runs, got %d", len(got))
	}
	if got := Runs(runs, RunCriteria{Year: "2025"}); len(got) != 2 {
		t.Errorf("year filter: want 2 runs, got %d", len(got))
	}
	if got := Runs(runs, RunCriteria{CourseID: a, Year: "2025"}); len(got) != 1 {
		t.Errorf("combined filter: want 1 run, got %d", len(got))
	}
	if got := Runs(runs, RunCriteria{}); len(got) != 4 {
		t.Errorf("empty criteria: want all 4 runs, got %d", len(got))
	}
}

func TestRunsIdempotent(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	crit := RunCriteria{Year: "2025"}
	once := Runs(testRuns(a, b), crit)
	twice := Runs(once, crit)
	if !reflect.DeepEqual(once, twice) {
		t.Error("applying the same criteria twice changed the result")
	}
}

func TestRunYears(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	got := RunYears(testRuns(a, b))
	want := []string{"2026", "2025"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RunYears = %v, want %v", got, want)
	}
}
