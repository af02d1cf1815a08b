// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"kursportal/internal/models"
)

func TestCategoryLifecycle(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)
	cleanCategories(t, db, "test-stillas")
	t.Cleanup(func() { cleanCategories(t, db, "test-stillas") })

	created, err := s.Create(&models.Category{
		Slug:             "test-stillas",
		Name:             "Stillasbygging",
		IconSizePx:       32,
		IconPlateVariant: "default",
		IsActive:         true,
		SortOrder:        99,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.IconSVG != nil || created.IconPNGURL != nil {
		t.Error("new categories must start without icon assets")
	}
	if created.HasIcon() {
		t.Error("HasIcon must be false before conversion")
	}

	found, err := s.FindBySlug("test-stillas")
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if found == nil || found.ID != created.ID {
		t.Fatalf("FindBySlug: got %v, want id %s", found, created.ID)
	}

	// SetIcon writes all three derived values in one update.
	if err := s.SetIcon(created.ID, "<svg>x</svg>", "https://cdn/icon.svg", "https://cdn/icon.png"); err != nil {
		t.Fatalf("SetIcon: %v", err)
	}
	found, err = s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.IconSVG == nil || *found.IconSVG != "<svg>x</svg>" {
		t.Errorf("IconSVG not persisted: %v", found.IconSVG)
	}
	if found.IconSVGURL == nil || found.IconPNGURL == nil {
		t.Error("icon urls not persisted")
	}
	if !found.HasIcon() {
		t.Error("HasIcon must be true after SetIcon")
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	gone, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID after delete: %v", err)
	}
	if gone != nil {
		t.Error("category still present after delete")
	}
}

func TestCategoryDeleteSystemProtected(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)
	cleanCategories(t, db, "test-system")
	t.Cleanup(func() { cleanCategories(t, db, "test-system") })

	// Create directly so we can set the system flag.
	row := db.QueryRow(`
		INSERT INTO categories (slug, name, is_system) VALUES ('test-system', 'System', TRUE)
		RETURNING ` + categoryColumns)
	created, err := scanCategory(row)
	if err != nil {
		t.Fatalf("insert system category: %v", err)
	}

	if err := s.Delete(created.ID); err != ErrProtected {
		t.Errorf("Delete system category: got %v, want ErrProtected", err)
	}

	still, err := s.FindByID(created.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if still == nil {
		t.Error("system category must survive delete attempts")
	}
}

func TestCategoryFindMissing(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	c, err := s.FindBySlug("finnes-ikke-slug")
	if err != nil {
		t.Fatalf("FindBySlug: %v", err)
	}
	if c != nil {
		t.Errorf("want nil for missing slug, got %v", c)
	}
}
