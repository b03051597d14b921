// Package types provides type definitions for structured data used throughout the resume-pilot system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SectionKind identifies a resume section. The set is closed; rendering
// iterates an explicit ordered list of kinds rather than a keyed dispatch table.
type SectionKind string

// Closed set of section kinds.
const (
	SectionHeader         SectionKind = "header"
	SectionSummary        SectionKind = "summary"
	SectionExperience     SectionKind = "experience"
	SectionProjects       SectionKind = "projects"
	SectionEducation      SectionKind = "education"
	SectionSkills         SectionKind = "skills"
	SectionCertifications SectionKind = "certifications"
)

// SummaryTier selects how many lines the professional summary is budgeted.
type SummaryTier string

// Summary length tiers.
const (
	SummaryShort  SummaryTier = "short"
	SummaryMedium SummaryTier = "medium"
	SummaryLong   SummaryTier = "long"
)

// CompressionLevel is advisory metadata describing how over or under budget
// a layout plan landed. The allocator reports it and never retries.
type CompressionLevel string

// Compression levels derived from the utilization ratio.
const (
	CompressionNone       CompressionLevel = "none"
	CompressionLight      CompressionLevel = "light"
	CompressionModerate   CompressionLevel = "moderate"
	CompressionAggressive CompressionLevel = "aggressive"
)

// LayoutConfig configures the layout allocator.
type LayoutConfig struct {
	PageCount               int         `json:"page_count"` // 1 or 2
	IncludeSummary          bool        `json:"include_summary"`
	SummaryTier             SummaryTier `json:"summary_tier"`
	IncludeSkills           bool        `json:"include_skills"`
	IncludeEducation        bool        `json:"include_education"`
	IncludeCertifications   bool        `json:"include_certifications"`
	MaxBulletsPerExperience int         `json:"max_bullets_per_experience"`
	MaxProjects             int         `json:"max_projects"`
}

// LayoutItem references one chosen entry and how many of its bullets to keep.
type LayoutItem struct {
	EntryID     string `json:"entry_id"`
	BulletCount int    `json:"bullet_count"`
}

// LayoutSection is one allocated section in the plan.
type LayoutSection struct {
	Kind  SectionKind  `json:"kind"`
	Lines int          `json:"lines"`
	Items []LayoutItem `json:"items,omitempty"`
}

// LayoutPlan is the ordered result of greedy line-budget allocation.
// Entry IDs referenced by experience/project sections are a subset of the
// ranked lists and no ID appears twice across sections.
type LayoutPlan struct {
	Sections         []LayoutSection  `json:"sections"`
	TotalLines       int              `json:"total_lines"`
	LineBudget       int              `json:"line_budget"`
	CompressionLevel CompressionLevel `json:"compression_level"`
}

// Section returns the section of the given kind, or nil if the plan omits it.
func (p *LayoutPlan) Section(kind SectionKind) *LayoutSection {
	for i := range p.Sections {
		if p.Sections[i].Kind == kind {
			return &p.Sections[i]
		}
	}
	return nil
}
