// Package scoring provides relevance scoring of profile entries against a job requirement model.
package scoring

import (
	"strings"

	"github.com/jonathan/resume-pilot/internal/types"
)

// Scoring constants. These feed a downstream ranking, so the formula stays a
// small auditable linear blend rather than anything adaptive.
const (
	titleMatchPoints = 20.0

	experienceKeywordCap   = 40.0
	experienceKeywordScale = 60.0
	themeBonusPerHit       = 5.0

	projectOverlapCap   = 50.0
	projectOverlapScale = 70.0
	projectKeywordCap   = 30.0
	projectKeywordScale = 45.0
	projectLinkBonus    = 10.0

	maxScore = 100.0
)

// ScoreExperience scores one experience entry against the job model,
// returning a value in [0,100].
func ScoreExperience(exp *types.Experience, job *types.JobRequirementModel) float64 {
	score := 0.0

	// Title bonus: substring match in either direction against the role label.
	titleLower := strings.ToLower(exp.Title)
	roleLower := strings.ToLower(string(job.RoleType))
	if titleLower != "" && roleLower != "" &&
		(strings.Contains(titleLower, roleLower) || strings.Contains(roleLower, titleLower)) {
		score += titleMatchPoints
	}

	bulletText := strings.ToLower(strings.Join(exp.Bullets, " "))

	score += keywordDensityScore(bulletText, job.AllKeywords(), experienceKeywordCap, experienceKeywordScale)
	score += themeBonus(bulletText, job.ImpactThemes)

	return clampScore(score)
}

// ScoreProject scores one project entry against the job model, returning a
// value in [0,100].
func ScoreProject(proj *types.Project, job *types.JobRequirementModel) float64 {
	score := 0.0

	// Tech-stack overlap with the job's flattened skill tokens.
	jobSkills := make(map[string]bool)
	for _, skill := range job.FlattenedSkills() {
		jobSkills[skill] = true
	}
	overlap := 0
	for _, tech := range proj.TechStack {
		if jobSkills[strings.ToLower(strings.TrimSpace(tech))] {
			overlap++
		}
	}
	stackSize := len(proj.TechStack)
	if stackSize < 1 {
		stackSize = 1
	}
	overlapScore := (float64(overlap) / float64(stackSize)) * projectOverlapScale
	if overlapScore > projectOverlapCap {
		overlapScore = projectOverlapCap
	}
	score += overlapScore

	bulletText := strings.ToLower(strings.Join(proj.Bullets, " "))
	score += keywordDensityScore(bulletText, job.AllKeywords(), projectKeywordCap, projectKeywordScale)

	if proj.Link != "" {
		score += projectLinkBonus
	}

	return clampScore(score)
}

// ScoreSkill scores a single skill token: 100 if the token appears in the
// job's flattened skill-cluster set, else 0.
func ScoreSkill(skill string, job *types.JobRequirementModel) float64 {
	normalized := strings.ToLower(strings.TrimSpace(skill))
	if normalized == "" {
		return 0
	}
	for _, jobSkill := range job.FlattenedSkills() {
		if jobSkill == normalized {
			return 100
		}
	}
	return 0
}

// keywordDensityScore counts how many keywords appear as substrings of the
// (already lower-cased) text and normalizes by the keyword count.
func keywordDensityScore(textLower string, keywords []string, capPoints, scale float64) float64 {
	matches := 0
	for _, keyword := range keywords {
		if strings.Contains(textLower, keyword) {
			matches++
		}
	}
	keywordCount := len(keywords)
	if keywordCount < 1 {
		keywordCount = 1
	}
	score := (float64(matches) / float64(keywordCount)) * scale
	if score > capPoints {
		score = capPoints
	}
	return score
}

// themeBonus adds a weighted bonus per impact-theme keyword hit. The sum is
// uncapped here; the caller clamps the final score.
func themeBonus(textLower string, themes []types.ImpactTheme) float64 {
	bonus := 0.0
	for _, theme := range themes {
		for _, keyword := range theme.Keywords {
			keywordLower := strings.ToLower(strings.TrimSpace(keyword))
			if keywordLower == "" {
				continue
			}
			if strings.Contains(textLower, keywordLower) {
				bonus += themeBonusPerHit * theme.Weight
			}
		}
	}
	return bonus
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
