// Package render hands assembled resumes to output formats. The core knows
// nothing about typesetting; the only built-in format is a deterministic
// plain-text preview. Section order is caller-supplied and validated as a
// permutation of the known kinds.
package render

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-pilot/internal/types"
)

// Format identifies an output format.
type Format string

// Supported formats. Anything else is a hard failure; there is no sane
// fallback for an export format the caller asked for by name.
const (
	FormatText Format = "text"
)

// UnsupportedFormatError is returned when an unrecognized format is requested.
type UnsupportedFormatError struct {
	Format Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported export format %q", e.Format)
}

// SectionOrderError is returned when the caller-supplied section order is not
// a permutation of the renderable section kinds.
type SectionOrderError struct {
	Reason string
}

func (e *SectionOrderError) Error() string {
	return fmt.Sprintf("invalid section order: %s", e.Reason)
}

// DefaultSectionOrder is the standard ordering of renderable sections.
// The header is not part of the order; it always renders first.
var DefaultSectionOrder = []types.SectionKind{
	types.SectionSummary,
	types.SectionExperience,
	types.SectionProjects,
	types.SectionSkills,
	types.SectionEducation,
	types.SectionCertifications,
}

// ValidateSectionOrder checks that order is a permutation of the renderable
// section kinds: each of the six kinds exactly once, no header, no unknowns.
func ValidateSectionOrder(order []types.SectionKind) error {
	if len(order) != len(DefaultSectionOrder) {
		return &SectionOrderError{Reason: fmt.Sprintf("expected %d sections, got %d", len(DefaultSectionOrder), len(order))}
	}
	seen := make(map[types.SectionKind]bool, len(order))
	known := make(map[types.SectionKind]bool, len(DefaultSectionOrder))
	for _, kind := range DefaultSectionOrder {
		known[kind] = true
	}
	for _, kind := range order {
		if !known[kind] {
			return &SectionOrderError{Reason: fmt.Sprintf("unknown section kind %q", kind)}
		}
		if seen[kind] {
			return &SectionOrderError{Reason: fmt.Sprintf("section kind %q appears twice", kind)}
		}
		seen[kind] = true
	}
	return nil
}

// Render produces the resume in the requested format, iterating sections in
// the caller-supplied order.
func Render(resume *types.GeneratedResume, order []types.SectionKind, format Format) (string, error) {
	if err := ValidateSectionOrder(order); err != nil {
		return "", err
	}
	switch format {
	case FormatText:
		return renderText(resume, order), nil
	default:
		return "", &UnsupportedFormatError{Format: format}
	}
}

func renderText(resume *types.GeneratedResume, order []types.SectionKind) string {
	var sb strings.Builder

	// Header always leads.
	sb.WriteString(resume.Contact.Name)
	sb.WriteString("\n")
	contactParts := make([]string, 0, 3)
	for _, part := range []string{resume.Contact.Email, resume.Contact.Phone, resume.Contact.Location} {
		if part != "" {
			contactParts = append(contactParts, part)
		}
	}
	sb.WriteString(strings.Join(contactParts, " / "))
	sb.WriteString("\n")

	for _, kind := range order {
		switch kind {
		case types.SectionSummary:
			if resume.Summary == "" {
				continue
			}
			writeHeading(&sb, "SUMMARY")
			sb.WriteString(resume.Summary)
			sb.WriteString("\n")
		case types.SectionExperience:
			if len(resume.Experiences) == 0 {
				continue
			}
			writeHeading(&sb, "EXPERIENCE")
			for _, exp := range resume.Experiences {
				fmt.Fprintf(&sb, "%s, %s (%s - %s)\n",
					exp.Experience.Title, exp.Experience.Company,
					exp.Experience.StartDate, exp.Experience.EndDate)
				for _, bullet := range exp.Bullets {
					fmt.Fprintf(&sb, "- %s\n", bullet.Text)
				}
			}
		case types.SectionProjects:
			if len(resume.Projects) == 0 {
				continue
			}
			writeHeading(&sb, "PROJECTS")
			for _, proj := range resume.Projects {
				fmt.Fprintf(&sb, "%s (%s)\n", proj.Project.Title, strings.Join(proj.Project.TechStack, ", "))
				for _, bullet := range proj.Bullets {
					fmt.Fprintf(&sb, "- %s\n", bullet.Text)
				}
			}
		case types.SectionSkills:
			if len(resume.SkillCategories) == 0 {
				continue
			}
			writeHeading(&sb, "SKILLS")
			for _, category := range resume.SkillCategories {
				fmt.Fprintf(&sb, "%s: %s\n", category.Name, strings.Join(category.Skills, ", "))
			}
		case types.SectionEducation:
			if len(resume.Education) == 0 {
				continue
			}
			writeHeading(&sb, "EDUCATION")
			for _, edu := range resume.Education {
				fmt.Fprintf(&sb, "%s, %s %s (%s)\n", edu.School, edu.Degree, edu.Field, edu.GraduationDate)
			}
		case types.SectionCertifications:
			if len(resume.Certifications) == 0 {
				continue
			}
			writeHeading(&sb, "CERTIFICATIONS")
			for _, cert := range resume.Certifications {
				fmt.Fprintf(&sb, "%s, %s (%s)\n", cert.Name, cert.Issuer, cert.Date)
			}
		}
	}
	return sb.String()
}

func writeHeading(sb *strings.Builder, heading string) {
	sb.WriteString("\n")
	sb.WriteString(heading)
	sb.WriteString("\n")
}
