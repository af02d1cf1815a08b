// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// CourseType classifies a course offering.
type CourseType string

const (
	CourseTypeCertified  CourseType = "certified"
	CourseTypeDocumented CourseType = "documented"
	CourseTypeOther      CourseType = "other"
)

// CourseTypeLabels maps course types to their Norwegian display labels.
var CourseTypeLabels = map[CourseType]string{
	CourseTypeCertified:  "Sertifisert",
	CourseTypeDocumented: "Dokumentert",
	CourseTypeOther:      "Annet",
}

// LanguageLabels maps language codes to their Norwegian display labels.
var LanguageLabels = map[string]string{
	"no":   "Norsk",
	"en":   "Engelsk",
	"sign": "Tegnspråk",
}

// Course represents a course offering on the public site.
type Course struct {
	ID                uuid.UUID  `json:"id"`
	Slug              string     `json:"slug"`
	Title             string     `json:"title"`
	CourseType        CourseType `json:"course_type"`
	CategorySlug      *string    `json:"category_slug"`
	ShortDescription  *string    `json:"short_description"`
	Description       *string    `json:"description"`
	TargetAudience    *string    `json:"target_audience"`
	LearningOutcomes  *string    `json:"learning_outcomes"`
	CourseStructure   *string    `json:"course_structure"`
	Requirements      *string    `json:"requirements"`
	CertificationInfo *string    `json:"certification_info"`
	PracticalInfo     *string    `json:"practical_info"`
	Duration          *string    `json:"duration"`
	Languages         []string   `json:"languages"`
	ImageURL          *string    `json:"image_url"`
	HeroImageURL      *string    `json:"hero_image_url"`
	IsActive          bool       `json:"is_active"`
	IsFeatured        bool       `json:"is_featured"`
	OfferTitle        *string    `json:"offer_title"`
	OfferBody         *string    `json:"offer_body"`
	OfferIsActive     bool       `json:"offer_is_active"`
	OfferExpiresAt    *time.Time `json:"offer_expires_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	// Virtual field joined in by handlers for card rendering.
	Category *Category `json:"category,omitempty"`
}

// TypeLabel returns the display label for the course type.
func (c *Course) TypeLabel() string {
	if l, ok := CourseTypeLabels[c.CourseType]; ok {
		return l
	}
	return string(c.CourseType)
}

// HasActiveOfferNow is a template-friendly wrapper around HasActiveOffer.
func (c *Course) HasActiveOfferNow() bool {
	return c.HasActiveOffer(time.Now())
}

// HasActiveOffer returns true if the course carries a live campaign offer.
func (c *Course) HasActiveOffer(now time.Time) bool {
	if !c.OfferIsActive {
		return false
	}
	if c.OfferExpiresAt != nil && c.OfferExpiresAt.Before(now) {
		return false
	}
	return true
}
