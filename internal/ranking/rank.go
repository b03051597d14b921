// Package ranking sorts profile entries by relevance score and selects the
// top entries under count constraints.
package ranking

import (
	"sort"

	"github.com/jonathan/resume-pilot/internal/types"
)

// RankExperiences returns a new slice of experiences sorted descending by
// relevance score. The sort is stable: entries with equal scores keep their
// original relative order. The input is never mutated.
func RankExperiences(entries []types.Experience, rel *types.RelevanceMap) []types.Experience {
	ranked := make([]types.Experience, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return rel.ExperienceScore(ranked[i].ID) > rel.ExperienceScore(ranked[j].ID)
	})
	return ranked
}

// RankProjects returns a new slice of projects sorted descending by relevance
// score, stable on ties. The input is never mutated.
func RankProjects(entries []types.Project, rel *types.RelevanceMap) []types.Project {
	ranked := make([]types.Project, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return rel.ProjectScore(ranked[i].ID) > rel.ProjectScore(ranked[j].ID)
	})
	return ranked
}

// SelectTopExperiences returns the first maxCount experiences of the ranked
// sequence.
func SelectTopExperiences(entries []types.Experience, maxCount int, rel *types.RelevanceMap) []types.Experience {
	ranked := RankExperiences(entries, rel)
	if maxCount < 0 {
		maxCount = 0
	}
	if len(ranked) > maxCount {
		ranked = ranked[:maxCount]
	}
	return ranked
}

// SelectTopProjects returns the first maxCount projects of the ranked sequence.
func SelectTopProjects(entries []types.Project, maxCount int, rel *types.RelevanceMap) []types.Project {
	ranked := RankProjects(entries, rel)
	if maxCount < 0 {
		maxCount = 0
	}
	if len(ranked) > maxCount {
		ranked = ranked[:maxCount]
	}
	return ranked
}
