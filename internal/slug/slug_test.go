package slug

import "testing"

// TestGenerate exercises the slug generator with typical course and
// category names, special characters, and boundary conditions.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple two words",
			input: "Varme Arbeider",
			want:  "varme-arbeider",
		},
		{
			name:  "norwegian ae",
			input: "Værnes",
			want:  "vaernes",
		},
		{
			name:  "norwegian oe",
			input: "Truckfører",
			want:  "truckfoerer",
		},
		{
			name:  "norwegian aa",
			input: "Påbygging",
			want:  "paabygging",
		},
		{
			name:  "uppercase norwegian letters",
			input: "ØKONOMI OG HMS",
			want:  "oekonomi-og-hms",
		},
		{
			name:  "all three special letters",
			input: "Blåbær og fløte",
			want:  "blaabaer-og-floete",
		},
		{
			name:  "punctuation stripped",
			input: "Førstehjelp, del 1!",
			want:  "foerstehjelp-del-1",
		},
		{
			name:  "parentheses",
			input: "Stillasbygging (over 9 meter)",
			want:  "stillasbygging-over-9-meter",
		},
		{
			name:  "multiple spaces collapsed",
			input: "kurs    i    høyden",
			want:  "kurs-i-hoeyden",
		},
		{
			name:  "leading and trailing hyphens",
			input: "--varmearbeid--",
			want:  "varmearbeid",
		},
		{
			name:  "existing slug is stable",
			input: "varme-arbeid",
			want:  "varme-arbeid",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only special characters",
			input: "!@#$%",
			want:  "",
		},
		{
			name:  "numbers kept",
			input: "Modul 2.3 Teori",
			want:  "modul-23-teori",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.input)
			if got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestGenerate_Idempotent verifies that generating a slug from an already
// valid slug produces the same result.
func TestGenerate_Idempotent(t *testing.T) {
	slugs := []string{
		"varme-arbeider",
		"truckfoererkurs-t1-t4",
		"hms",
		"123",
	}

	for _, s := range slugs {
		t.Run(s, func(t *testing.T) {
			got := Generate(s)
			if got != s {
				t.Errorf("Generate(%q) = %q, want idempotent result %q", s, got, s)
			}
		})
	}
}
