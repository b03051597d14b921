// Package layout performs greedy line-budget allocation of resume sections.
package layout

import (
	"github.com/jonathan/resume-pilot/internal/ranking"
	"github.com/jonathan/resume-pilot/internal/types"
)

// Fixed line-cost model for a standard typeset resume page.
const (
	linesPerPage = 55
	headerLines  = 6

	summaryShortLines  = 2
	summaryMediumLines = 3
	summaryLongLines   = 4

	skillsBaseLines = 3
	skillsMaxLines  = 6

	educationLinesPerEntry = 3
	certificationLinesEach = 1
	safetyPadLines         = 2

	// Experiences may consume at most this share of the remaining budget.
	experienceShare = 0.7

	experienceHeaderLines = 2
	linesPerBullet        = 2
	projectHeaderLines    = 1
	projectMaxBullets     = 2
	projectBlockLines     = 4
)

// Utilization thresholds for the advisory compression level.
const (
	aggressiveThreshold = 1.10
	moderateThreshold   = 1.00
	lightThreshold      = 0.95
)

// Allocate builds a layout plan for the profile under the given configuration
// and relevance map. The allocation is a single greedy pass with no
// backtracking: entries are admitted in ranked order until the first one that
// would overflow, and a smaller later entry is never pulled forward to fill
// the gap. If nothing fits a section, that section is omitted rather than
// reported as an error.
func Allocate(profile *types.ResumeProfile, cfg types.LayoutConfig, rel *types.RelevanceMap) *types.LayoutPlan {
	pageCount := cfg.PageCount
	if pageCount != 2 {
		pageCount = 1
	}
	totalLineBudget := pageCount * linesPerPage

	sections := make([]types.LayoutSection, 0, 6)
	usedLines := 0

	// Header is always present at a fixed cost.
	sections = append(sections, types.LayoutSection{Kind: types.SectionHeader, Lines: headerLines})
	usedLines += headerLines

	if cfg.IncludeSummary {
		lines := summaryLines(cfg.SummaryTier)
		sections = append(sections, types.LayoutSection{Kind: types.SectionSummary, Lines: lines})
		usedLines += lines
	}

	if cfg.IncludeSkills {
		lines := skillsBaseLines + len(profile.SkillCategories)/2
		if lines > skillsMaxLines {
			lines = skillsMaxLines
		}
		sections = append(sections, types.LayoutSection{Kind: types.SectionSkills, Lines: lines})
		usedLines += lines
	}

	educationLines := 0
	if cfg.IncludeEducation {
		educationLines = len(profile.Education) * educationLinesPerEntry
	}

	remainingLines := totalLineBudget - usedLines - educationLines - safetyPadLines

	// Experiences: greedy admission in ranked order against a 70% ceiling.
	experienceCeiling := int(float64(remainingLines) * experienceShare)
	rankedExperiences := ranking.RankExperiences(profile.Experiences, rel)
	experienceItems := make([]types.LayoutItem, 0, len(rankedExperiences))
	experienceLines := 0
	for _, exp := range rankedExperiences {
		bulletCount := len(exp.Bullets)
		if bulletCount > cfg.MaxBulletsPerExperience {
			bulletCount = cfg.MaxBulletsPerExperience
		}
		cost := experienceHeaderLines + bulletCount*linesPerBullet
		if experienceLines+cost > experienceCeiling {
			break
		}
		experienceItems = append(experienceItems, types.LayoutItem{EntryID: exp.ID, BulletCount: bulletCount})
		experienceLines += cost
	}
	if len(experienceItems) > 0 {
		sections = append(sections, types.LayoutSection{
			Kind:  types.SectionExperience,
			Lines: experienceLines,
			Items: experienceItems,
		})
		usedLines += experienceLines
	}

	// Projects: capped to maxProjects, admitted greedily against their own target.
	projectTarget := remainingLines - experienceLines
	if capLines := cfg.MaxProjects * projectBlockLines; projectTarget > capLines {
		projectTarget = capLines
	}
	rankedProjects := ranking.SelectTopProjects(profile.Projects, cfg.MaxProjects, rel)
	projectItems := make([]types.LayoutItem, 0, len(rankedProjects))
	projectLines := 0
	for _, proj := range rankedProjects {
		bulletCount := len(proj.Bullets)
		if bulletCount > projectMaxBullets {
			bulletCount = projectMaxBullets
		}
		cost := projectHeaderLines + bulletCount*linesPerBullet
		if projectLines+cost > projectTarget {
			break
		}
		projectItems = append(projectItems, types.LayoutItem{EntryID: proj.ID, BulletCount: bulletCount})
		projectLines += cost
	}
	if len(projectItems) > 0 {
		sections = append(sections, types.LayoutSection{
			Kind:  types.SectionProjects,
			Lines: projectLines,
			Items: projectItems,
		})
		usedLines += projectLines
	}

	if cfg.IncludeEducation && educationLines > 0 {
		sections = append(sections, types.LayoutSection{Kind: types.SectionEducation, Lines: educationLines})
		usedLines += educationLines
	}

	if cfg.IncludeCertifications && len(profile.Certifications) > 0 {
		lines := len(profile.Certifications) * certificationLinesEach
		sections = append(sections, types.LayoutSection{Kind: types.SectionCertifications, Lines: lines})
		usedLines += lines
	}

	return &types.LayoutPlan{
		Sections:         sections,
		TotalLines:       usedLines,
		LineBudget:       totalLineBudget,
		CompressionLevel: compressionLevel(usedLines, totalLineBudget),
	}
}

func summaryLines(tier types.SummaryTier) int {
	switch tier {
	case types.SummaryShort:
		return summaryShortLines
	case types.SummaryLong:
		return summaryLongLines
	default:
		return summaryMediumLines
	}
}

// compressionLevel derives the advisory compression verdict from the
// utilization ratio.
func compressionLevel(usedLines, budget int) types.CompressionLevel {
	if budget <= 0 {
		return types.CompressionAggressive
	}
	ratio := float64(usedLines) / float64(budget)
	switch {
	case ratio > aggressiveThreshold:
		return types.CompressionAggressive
	case ratio > moderateThreshold:
		return types.CompressionModerate
	case ratio > lightThreshold:
		return types.CompressionLight
	default:
		return types.CompressionNone
	}
}
