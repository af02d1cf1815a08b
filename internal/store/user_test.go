// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"kursportal/internal/models"
)

func TestUserLifecycle(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)
	cleanUsers(t, db, "store-test@example.com")
	t.Cleanup(func() { cleanUsers(t, db, "store-test@example.com") })

	created, err := s.Create("store-test@example.com", "hemmelig123", "Test Bruker", models.RoleEditor)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.PasswordHash == "hemmelig123" {
		t.Error("password must be stored hashed")
	}
	if created.TOTPEnabled {
		t.Error("new users must start without 2FA")
	}
	if !created.Needs2FASetup() {
		t.Error("new users must be prompted for 2FA setup")
	}

	if !s.CheckPassword(created, "hemmelig123") {
		t.Error("CheckPassword rejected the correct password")
	}
	if s.CheckPassword(created, "feil-passord") {
		t.Error("CheckPassword accepted a wrong password")
	}

	// 2FA enrollment round trip.
	if err := s.SetTOTPSecret(created.ID, "JBSWY3DPEHPK3PXP"); err != nil {
		t.Fatalf("SetTOTPSecret: %v", err)
	}
	if err := s.EnableTOTP(created.ID); err != nil {
		t.Fatalf("EnableTOTP: %v", err)
	}
	found, err := s.FindByEmail("store-test@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if !found.TOTPEnabled || found.TOTPSecret == nil {
		t.Error("2FA enrollment not persisted")
	}

	if err := s.ResetTOTP(created.ID); err != nil {
		t.Fatalf("ResetTOTP: %v", err)
	}
	found, _ = s.FindByID(created.ID)
	if found.TOTPEnabled || found.TOTPSecret != nil {
		t.Error("ResetTOTP must clear the secret and flag")
	}

	if err := s.Delete(created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestUserFindMissing(t *testing.T) {
	db := testDB(t)
	s := NewUserStore(db)

	u, err := s.FindByEmail("finnes-ikke@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if u != nil {
		t.Errorf("want nil for missing email, got %v", u)
	}
}
