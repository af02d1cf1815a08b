package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for content fields.
const (
	maxTitleLen   = 300
	maxSlugLen    = 300
	maxShortLen   = 1_000
	maxSectionLen = 20_000
	maxBodyLen    = 100_000
	maxNameLen    = 200
	maxLabelLen   = 300
	maxURLLen     = 2_000
	maxMessageLen = 10_000
)

// validateCourse checks course form inputs and returns the first error found.
func validateCourse(title, slug, shortDesc string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "Tittel er påkrevd."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Tittelen er for lang (maks 300 tegn)."
	}
	if utf8.RuneCountInString(slug) > maxSlugLen {
		return "Slug er for lang (maks 300 tegn)."
	}
	if utf8.RuneCountInString(shortDesc) > maxShortLen {
		return "Kort beskrivelse er for lang (maks 1 000 tegn)."
	}
	return ""
}

// validateSections checks the long-form course text sections.
func validateSections(sections ...string) string {
	for _, s := range sections {
		if utf8.RuneCountInString(s) > maxSectionLen {
			return "Et tekstfelt er for langt (maks 20 000 tegn)."
		}
	}
	return ""
}

// validateName checks a required display name field.
func validateName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Navn er påkrevd."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Navnet er for langt (maks 200 tegn)."
	}
	return ""
}

// validateLegalPage checks legal page form inputs.
func validateLegalPage(title, body string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "Tittel er påkrevd."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Tittelen er for lang (maks 300 tegn)."
	}
	if strings.TrimSpace(body) == "" {
		return "Innhold er påkrevd."
	}
	if utf8.RuneCountInString(body) > maxBodyLen {
		return "Innholdet er for langt (maks 100 000 tegn)."
	}
	return ""
}

// validateInquiry checks the public inquiry form. Name is the only
// required field; a contact channel (email or phone) must be present.
func validateInquiry(name, email, phone, message string) string {
	if strings.TrimSpace(name) == "" {
		return "Navn er påkrevd."
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Navnet er for langt (maks 200 tegn)."
	}
	if strings.TrimSpace(email) == "" && strings.TrimSpace(phone) == "" {
		return "Oppgi e-post eller telefon så vi kan nå deg."
	}
	if email != "" && (!strings.Contains(email, "@") || utf8.RuneCountInString(email) > maxNameLen) {
		return "Ugyldig e-postadresse."
	}
	if utf8.RuneCountInString(message) > maxMessageLen {
		return "Meldingen er for lang (maks 10 000 tegn)."
	}
	return ""
}
