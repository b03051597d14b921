// Package types provides type definitions for structured data used throughout the resume-pilot system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// RelevanceMap holds per-entry relevance scores (0-100) keyed by entry ID,
// plus one aggregate match figure. It is computed once per (profile, job)
// pair and treated as immutable input to layout.
type RelevanceMap struct {
	Experiences  map[string]float64 `json:"experiences"`
	Projects     map[string]float64 `json:"projects"`
	Skills       map[string]float64 `json:"skills"`
	OverallMatch int                `json:"overall_match"`
}

// ExperienceScore returns the score for an experience ID, defaulting to 0.
func (r *RelevanceMap) ExperienceScore(id string) float64 {
	if r == nil || r.Experiences == nil {
		return 0
	}
	return r.Experiences[id]
}

// ProjectScore returns the score for a project ID, defaulting to 0.
func (r *RelevanceMap) ProjectScore(id string) float64 {
	if r == nil || r.Projects == nil {
		return 0
	}
	return r.Projects[id]
}
