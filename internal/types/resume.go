// Package types provides type definitions for structured data used throughout the resume-pilot system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RewrittenBullet is the rewrite collaborator's result for one original
// bullet. Text is always non-empty: on collaborator failure it falls back to
// the original bullet unchanged.
type RewrittenBullet struct {
	Original     string   `json:"original"`
	Text         string   `json:"text"`
	KeywordsUsed []string `json:"keywords_used,omitempty"`
	HasMetric    bool     `json:"has_metric"`
}

// SelectedExperience is an included experience with its rewritten bullets.
// The original entry is never mutated; this is a derived record.
type SelectedExperience struct {
	Experience Experience        `json:"experience"`
	Bullets    []RewrittenBullet `json:"bullets"`
	Relevance  float64           `json:"relevance"`
}

// SelectedProject is an included project with its rewritten bullets.
type SelectedProject struct {
	Project   Project           `json:"project"`
	Bullets   []RewrittenBullet `json:"bullets"`
	Relevance float64           `json:"relevance"`
}

// GeneratedResume is the fully assembled result handed to the rendering
// collaborator, in a fixed JSON shape.
type GeneratedResume struct {
	Contact         Contact              `json:"contact"`
	Summary         string               `json:"summary,omitempty"`
	Experiences     []SelectedExperience `json:"experiences"`
	Projects        []SelectedProject    `json:"projects"`
	Education       []Education          `json:"education"`
	SkillCategories []SkillCategory      `json:"skill_categories"`
	Certifications  []Certification      `json:"certifications"`
	Layout          LayoutPlan           `json:"layout"`
	Compliance      ComplianceReport     `json:"compliance"`
	Match           MatchReport          `json:"match"`
}
