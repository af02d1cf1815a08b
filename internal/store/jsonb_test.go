// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"reflect"
	"testing"

	"kursportal/internal/models"
)

func TestJSONBValueNilSlice(t *testing.T) {
	b, err := jsonbValue([]string(nil))
	if err != nil {
		t.Fatalf("jsonbValue: %v", err)
	}
	if string(b) != "[]" {
		t.Errorf("nil slice must marshal to empty array, got %s", b)
	}
}

func TestJSONBRoundTripStrings(t *testing.T) {
	b, err := jsonbValue([]string{"no", "en"})
	if err != nil {
		t.Fatalf("jsonbValue: %v", err)
	}

	var out []string
	if err := scanJSONB(b, &out); err != nil {
		t.Fatalf("scanJSONB: %v", err)
	}
	if !reflect.DeepEqual(out, []string{"no", "en"}) {
		t.Errorf("round trip: got %v", out)
	}
}

func TestJSONBRoundTripMedia(t *testing.T) {
	in := []models.MediaItem{
		{Type: "image", URL: "https://cdn/1.jpg", Alt: "Gruppebilde"},
		{Type: "video", URL: "https://cdn/2.mp4"},
	}
	b, err := jsonbValue(in)
	if err != nil {
		t.Fatalf("jsonbValue: %v", err)
	}

	var out []models.MediaItem
	if err := scanJSONB(b, &out); err != nil {
		t.Fatalf("scanJSONB: %v", err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Errorf("round trip: got %v", out)
	}
}

func TestScanJSONBEmpty(t *testing.T) {
	var out []string
	if err := scanJSONB(nil, &out); err != nil {
		t.Fatalf("scanJSONB: %v", err)
	}
	if out != nil {
		t.Errorf("empty input must leave dst zero, got %v", out)
	}
}
