package database

import (
	"testing"
)

func TestSeedIdempotent(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	// Seed should be callable safely — it creates data only when tables are
	// empty. We call it twice to verify idempotency. We don't clear the
	// database first because other test packages may be running
	// concurrently against the same database.
	if err := Seed(db); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	// Verify admin user exists.
	var userCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM users WHERE email = 'admin@kursportal.local'").Scan(&userCount); err != nil {
		t.Fatalf("count admin users: %v", err)
	}
	if userCount < 1 {
		t.Errorf("expected at least 1 admin user, got %d", userCount)
	}

	// Verify system categories exist.
	var catCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories WHERE is_system").Scan(&catCount); err != nil {
		t.Fatalf("count system categories: %v", err)
	}
	if catCount < 1 {
		t.Errorf("expected at least 1 system category, got %d", catCount)
	}

	// Verify legal page stubs exist.
	var pageCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM legal_pages").Scan(&pageCount); err != nil {
		t.Fatalf("count legal pages: %v", err)
	}
	if pageCount < 1 {
		t.Errorf("expected at least 1 legal page, got %d", pageCount)
	}

	// Verify baseline settings exist.
	var settingCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM site_settings").Scan(&settingCount); err != nil {
		t.Fatalf("count site settings: %v", err)
	}
	if settingCount < 1 {
		t.Errorf("expected at least 1 site setting, got %d", settingCount)
	}
}
