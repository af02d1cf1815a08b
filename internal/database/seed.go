// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data: a default
// admin user, the built-in course categories, the legal page stubs, and
// baseline site settings. Each group is created only when its table is
// empty, so repeated calls are safe.
func Seed(db *sql.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	if err := seedCategories(db); err != nil {
		return err
	}
	if err := seedLegalPages(db); err != nil {
		return err
	}
	if err := seedSettings(db); err != nil {
		return err
	}
	return nil
}

// seedAdmin creates a default admin user if none exists. The admin will
// be prompted to set up 2FA on first login (totp_enabled = false).
func seedAdmin(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, role, totp_enabled)
		VALUES ($1, $2, $3, $4, $5)
	`, "admin@kursportal.local", string(hash), "Admin", "admin", false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	slog.Info("database seeded with default admin user",
		"email", "admin@kursportal.local",
		"password", "admin",
	)
	return nil
}

// seedCategories creates the built-in course categories. They are marked
// as system categories so they cannot be deleted from the admin panel.
func seedCategories(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	categories := []struct {
		slug, name string
	}{
		{"hms", "HMS"},
		{"varme-arbeider", "Varme arbeider"},
		{"maskinforer", "Maskinfører"},
		{"truckforer", "Truckfører"},
		{"forstehjelp", "Førstehjelp"},
		{"annet", "Annet"},
	}
	for i, c := range categories {
		_, err := db.Exec(`
			INSERT INTO categories (slug, name, is_system, sort_order)
			VALUES ($1, $2, TRUE, $3)
		`, c.slug, c.name, i*10)
		if err != nil {
			return fmt.Errorf("seed insert category %s: %w", c.slug, err)
		}
	}

	slog.Info("database seeded with system categories", "count", len(categories))
	return nil
}

// seedLegalPages creates unpublished stubs for the standard legal pages
// so editors have something to fill in.
func seedLegalPages(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM legal_pages").Scan(&count); err != nil {
		return fmt.Errorf("seed check legal pages: %w", err)
	}
	if count > 0 {
		return nil
	}

	pages := []struct {
		slug, title string
	}{
		{"personvern", "Personvernerklæring"},
		{"vilkar", "Vilkår og betingelser"},
		{"informasjonskapsler", "Informasjonskapsler"},
	}
	for _, p := range pages {
		_, err := db.Exec(`
			INSERT INTO legal_pages (slug, title, body_md, is_published)
			VALUES ($1, $2, '# ' || $2, FALSE)
		`, p.slug, p.title)
		if err != nil {
			return fmt.Errorf("seed insert legal page %s: %w", p.slug, err)
		}
	}
	return nil
}

// seedSettings creates baseline site settings.
func seedSettings(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM site_settings").Scan(&count); err != nil {
		return fmt.Errorf("seed check settings: %w", err)
	}
	if count > 0 {
		return nil
	}

	settings := map[string]string{
		"site_name":     "Kursportal",
		"contact_email": "post@kursportal.local",
		"contact_phone": "",
		"address":       "",
		"about_text":    "",
	}
	for key, value := range settings {
		_, err := db.Exec(`
			INSERT INTO site_settings (key, value) VALUES ($1, $2)
		`, key, value)
		if err != nil {
			return fmt.Errorf("seed insert setting %s: %w", key, err)
		}
	}
	return nil
}
