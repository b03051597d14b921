// Package types provides type definitions for structured data used throughout the resume-pilot system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// KeywordImportance tags whether a job keyword came from the primary or
// secondary set.
type KeywordImportance string

// Keyword importance values.
const (
	ImportanceRequired  KeywordImportance = "required"
	ImportancePreferred KeywordImportance = "preferred"
)

// KeywordMatch records whether one job keyword was found in the assembled
// resume text and where.
type KeywordMatch struct {
	Keyword    string            `json:"keyword"`
	Found      bool              `json:"found"`
	Importance KeywordImportance `json:"importance"`
	Locations  []string          `json:"locations"`
}

// MatchReport cross-references the job's keywords and skills against the
// assembled resume. It is recomputed whenever the layout plan changes.
type MatchReport struct {
	RoleAlignment string         `json:"role_alignment"`
	Keywords      []KeywordMatch `json:"keywords"`
	CoverageScore int            `json:"coverage_score"`
	MatchedSkills []string       `json:"matched_skills"`
	MissingSkills []string       `json:"missing_skills"`
	ExtraSkills   []string       `json:"extra_skills"`
	Suggestions   []string       `json:"suggestions"`
}
