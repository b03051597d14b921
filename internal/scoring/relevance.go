// Package scoring provides relevance scoring of profile entries against a job requirement model.
package scoring

import (
	"math"
	"strings"

	"github.com/jonathan/resume-pilot/internal/types"
)

// Weights for the aggregate overall match figure.
const (
	overallExperienceWeight = 0.5
	overallProjectWeight    = 0.2
	overallSkillWeight      = 0.3
)

// BuildRelevanceMap scores every experience, project, and skill token in the
// profile against the job and aggregates an overall match figure. All
// averages default to 0 when the corresponding collection is empty.
func BuildRelevanceMap(profile *types.ResumeProfile, job *types.JobRequirementModel) *types.RelevanceMap {
	rel := &types.RelevanceMap{
		Experiences: make(map[string]float64, len(profile.Experiences)),
		Projects:    make(map[string]float64, len(profile.Projects)),
		Skills:      make(map[string]float64),
	}

	expTotal := 0.0
	for i := range profile.Experiences {
		score := ScoreExperience(&profile.Experiences[i], job)
		rel.Experiences[profile.Experiences[i].ID] = score
		expTotal += score
	}

	projTotal := 0.0
	for i := range profile.Projects {
		score := ScoreProject(&profile.Projects[i], job)
		rel.Projects[profile.Projects[i].ID] = score
		projTotal += score
	}

	skills := profile.FlattenedSkills()
	matchedSkills := 0
	for _, skill := range skills {
		score := ScoreSkill(skill, job)
		rel.Skills[strings.ToLower(skill)] = score
		if score > 0 {
			matchedSkills++
		}
	}

	avgExperience := 0.0
	if len(profile.Experiences) > 0 {
		avgExperience = expTotal / float64(len(profile.Experiences))
	}
	avgProject := 0.0
	if len(profile.Projects) > 0 {
		avgProject = projTotal / float64(len(profile.Projects))
	}
	skillMatchRate := 0.0
	if len(skills) > 0 {
		skillMatchRate = float64(matchedSkills) / float64(len(skills)) * 100
	}

	rel.OverallMatch = int(math.Round(
		avgExperience*overallExperienceWeight +
			avgProject*overallProjectWeight +
			skillMatchRate*overallSkillWeight))

	return rel
}
