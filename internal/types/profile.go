// Package types provides type definitions for structured data used throughout the resume-pilot system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/google/uuid"
)

// Contact holds the candidate's contact details.
type Contact struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Experience is a single work experience entry. The ID is assigned once at
// creation and never reused; bullets are read-only to the core.
type Experience struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	Location  string   `json:"location,omitempty"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Bullets   []string `json:"bullets"`
}

// Project is a single project entry with a tech-stack token list and an
// optional external link.
type Project struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	TechStack []string `json:"tech_stack"`
	Link      string   `json:"link,omitempty"`
	Bullets   []string `json:"bullets"`
}

// Education is a single education entry.
type Education struct {
	School         string `json:"school"`
	Degree         string `json:"degree"`
	Field          string `json:"field,omitempty"`
	GraduationDate string `json:"graduation_date,omitempty"`
}

// SkillCategory groups skill tokens under a category name.
type SkillCategory struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// Certification is a single certification entry.
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// ResumeProfile is the candidate's full structured profile as produced by the
// external extraction collaborator. The core treats it as read-only.
type ResumeProfile struct {
	Contact         Contact         `json:"contact"`
	Summary         string          `json:"summary,omitempty"`
	Experiences     []Experience    `json:"experiences"`
	Projects        []Project       `json:"projects"`
	Education       []Education     `json:"education"`
	SkillCategories []SkillCategory `json:"skill_categories"`
	Certifications  []Certification `json:"certifications"`
}

// FlattenedSkills returns all profile skill tokens across categories,
// lower-cased and deduplicated in first-seen order.
func (p *ResumeProfile) FlattenedSkills() []string {
	seen := make(map[string]bool)
	flattened := make([]string, 0)
	for _, category := range p.SkillCategories {
		for _, skill := range category.Skills {
			normalized := strings.ToLower(strings.TrimSpace(skill))
			if normalized == "" || seen[normalized] {
				continue
			}
			seen[normalized] = true
			flattened = append(flattened, normalized)
		}
	}
	return flattened
}

// NewEntryID returns a fresh stable identifier for a profile entry.
func NewEntryID() string {
	return uuid.NewString()
}
