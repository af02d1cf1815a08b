// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from Norwegian
// course and category names.
package slug

import (
	"regexp"
	"strings"
)

var (
	// norwegian transliterates the Norwegian letters before stripping.
	norwegian = strings.NewReplacer(
		"æ", "ae", "ø", "oe", "å", "aa",
		"Æ", "ae", "Ø", "oe", "Å", "aa",
	)
	// nonAlphanumeric matches anything that isn't a letter, digit, or space.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a URL-friendly slug from the given string.
// Example: "Varme arbeider på bygg" → "varme-arbeider-paa-bygg"
func Generate(s string) string {
	result := norwegian.Replace(strings.TrimSpace(s))
	result = strings.ToLower(result)
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = strings.ReplaceAll(result, " ", "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")
	return result
}
