// Package match cross-references job keywords and skills against the
// assembled resume and produces an actionable match report.
package match

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/resume-pilot/internal/types"
)

// Thresholds for templated suggestions.
const (
	lowCoverageThreshold   = 50
	missingSkillsThreshold = 5
	missingSkillsListed    = 5
	lowRelevanceThreshold  = 50.0
	skillListCap           = 10
	locationSummary        = "summary"
	locationSkills         = "skills"
)

// BuildReport computes keyword coverage, the skill-token partition, and
// templated suggestions for the assembled resume. It must be recomputed
// whenever the layout plan changes.
func BuildReport(resume *types.GeneratedResume, job *types.JobRequirementModel, rel *types.RelevanceMap) *types.MatchReport {
	summaryLower := strings.ToLower(resume.Summary)
	skillsLower := strings.Join(flattenResumeSkills(resume), " ")
	haystack := buildHaystack(resume, summaryLower, skillsLower)

	keywords := jobKeywords(job)
	primarySet := make(map[string]bool, len(job.PrimaryKeywords))
	for _, kw := range job.PrimaryKeywords {
		primarySet[strings.ToLower(kw)] = true
	}

	matches := make([]types.KeywordMatch, 0, len(keywords))
	foundCount := 0
	for _, keyword := range keywords {
		found := strings.Contains(haystack, keyword)
		if found {
			foundCount++
		}
		importance := types.ImportancePreferred
		if primarySet[keyword] {
			importance = types.ImportanceRequired
		}
		locations := []string{}
		if strings.Contains(summaryLower, keyword) {
			locations = append(locations, locationSummary)
		}
		if strings.Contains(skillsLower, keyword) {
			locations = append(locations, locationSkills)
		}
		matches = append(matches, types.KeywordMatch{
			Keyword:    keyword,
			Found:      found,
			Importance: importance,
			Locations:  locations,
		})
	}

	totalKeywords := len(keywords)
	if totalKeywords < 1 {
		totalKeywords = 1
	}
	coverage := int(math.Round(100 * float64(foundCount) / float64(totalKeywords)))

	matched, missing, extra := partitionSkills(job.FlattenedSkills(), flattenResumeSkills(resume))

	report := &types.MatchReport{
		RoleAlignment: roleAlignment(job, rel),
		Keywords:      matches,
		CoverageScore: coverage,
		MatchedSkills: matched,
		MissingSkills: capList(missing, skillListCap),
		ExtraSkills:   capList(extra, skillListCap),
		Suggestions:   buildSuggestions(coverage, missing, resume, rel),
	}
	return report
}

// jobKeywords returns primary ∪ secondary keywords, lower-cased and
// deduplicated, primary first.
func jobKeywords(job *types.JobRequirementModel) []string {
	seen := make(map[string]bool)
	keywords := make([]string, 0, len(job.PrimaryKeywords)+len(job.SecondaryKeywords))
	for _, list := range [][]string{job.PrimaryKeywords, job.SecondaryKeywords} {
		for _, kw := range list {
			normalized := strings.ToLower(strings.TrimSpace(kw))
			if normalized == "" || seen[normalized] {
				continue
			}
			seen[normalized] = true
			keywords = append(keywords, normalized)
		}
	}
	return keywords
}

// buildHaystack concatenates all included resume text, lower-cased: summary,
// rewritten experience and project bullets, and the flattened skill tokens.
func buildHaystack(resume *types.GeneratedResume, summaryLower, skillsLower string) string {
	var sb strings.Builder
	sb.WriteString(summaryLower)
	sb.WriteString(" ")
	for _, exp := range resume.Experiences {
		for _, bullet := range exp.Bullets {
			sb.WriteString(strings.ToLower(bullet.Text))
			sb.WriteString(" ")
		}
	}
	for _, proj := range resume.Projects {
		for _, bullet := range proj.Bullets {
			sb.WriteString(strings.ToLower(bullet.Text))
			sb.WriteString(" ")
		}
	}
	sb.WriteString(skillsLower)
	return sb.String()
}

func flattenResumeSkills(resume *types.GeneratedResume) []string {
	seen := make(map[string]bool)
	flattened := make([]string, 0)
	for _, category := range resume.SkillCategories {
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

// partitionSkills splits the job's skill set against the resume's skill set
// into matched, missing, and extra, all case-insensitive.
func partitionSkills(jobSkills, resumeSkills []string) (matched, missing, extra []string) {
	resumeSet := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		resumeSet[skill] = true
	}
	jobSet := make(map[string]bool, len(jobSkills))
	for _, skill := range jobSkills {
		jobSet[skill] = true
	}

	matched = make([]string, 0)
	missing = make([]string, 0)
	extra = make([]string, 0)
	for _, skill := range jobSkills {
		if resumeSet[skill] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	for _, skill := range resumeSkills {
		if !jobSet[skill] {
			extra = append(extra, skill)
		}
	}
	return matched, missing, extra
}

func capList(list []string, limit int) []string {
	if len(list) > limit {
		return list[:limit]
	}
	return list
}

func buildSuggestions(coverage int, missing []string, resume *types.GeneratedResume, rel *types.RelevanceMap) []string {
	suggestions := make([]string, 0)

	if coverage < lowCoverageThreshold {
		suggestions = append(suggestions,
			"Keyword coverage is low; work more of the job posting's terminology into bullets and the summary.")
	}

	if len(missing) > missingSkillsThreshold {
		listed := missing
		if len(listed) > missingSkillsListed {
			listed = listed[:missingSkillsListed]
		}
		suggestions = append(suggestions,
			fmt.Sprintf("The job asks for skills the resume does not list: %s.", strings.Join(listed, ", ")))
	}

	// Average relevance of the included experiences, defaulting to 0 when
	// none are included.
	avgRelevance := 0.0
	if len(resume.Experiences) > 0 {
		total := 0.0
		for _, exp := range resume.Experiences {
			total += rel.ExperienceScore(exp.Experience.ID)
		}
		avgRelevance = total / float64(len(resume.Experiences))
	}
	if avgRelevance < lowRelevanceThreshold {
		suggestions = append(suggestions,
			"The included experiences score low against this job; emphasize more relevant experience.")
	}

	return suggestions
}

func roleAlignment(job *types.JobRequirementModel, rel *types.RelevanceMap) string {
	overall := 0
	if rel != nil {
		overall = rel.OverallMatch
	}
	return fmt.Sprintf("%s %s (%s): %d%% overall match",
		job.Seniority, job.RoleType, job.Domain, overall)
}
