package match

import (
	"fmt"
	"testing"

	"github.com/jonathan/resume-pilot/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchJob() *types.JobRequirementModel {
	return &types.JobRequirementModel{
		RoleType:          types.RoleBackendEngineer,
		Seniority:         types.SenioritySenior,
		Domain:            types.DomainInfrastructure,
		PrimaryKeywords:   []string{"Python", "Kubernetes"},
		SecondaryKeywords: []string{"terraform"},
		SkillClusters: []types.SkillCluster{
			{Category: "Core", Skills: []string{"Python", "Kubernetes", "Terraform"}, Tier: types.TierRequired},
		},
	}
}

func matchResume() *types.GeneratedResume {
	return &types.GeneratedResume{
		Summary: "Backend engineer working in Python.",
		Experiences: []types.SelectedExperience{{
			Experience: types.Experience{ID: "exp_001", Title: "Backend Engineer"},
			Bullets: []types.RewrittenBullet{
				{Text: "Provisioned infrastructure with Terraform"},
			},
		}},
		SkillCategories: []types.SkillCategory{
			{Name: "Languages", Skills: []string{"Python", "Rust"}},
		},
	}
}

func TestBuildReport_KeywordCoverage(t *testing.T) {
	rel := &types.RelevanceMap{
		Experiences:  map[string]float64{"exp_001": 80},
		OverallMatch: 72,
	}

	report := BuildReport(matchResume(), matchJob(), rel)
	require.NotNil(t, report)

	// python and terraform are present, kubernetes is not: round(200/3)=67.
	assert.Equal(t, 67, report.CoverageScore)

	byKeyword := make(map[string]types.KeywordMatch)
	for _, kw := range report.Keywords {
		byKeyword[kw.Keyword] = kw
	}
	require.Len(t, byKeyword, 3)

	python := byKeyword["python"]
	assert.True(t, python.Found)
	assert.Equal(t, types.ImportanceRequired, python.Importance)
	assert.Equal(t, []string{"summary", "skills"}, python.Locations)

	kubernetes := byKeyword["kubernetes"]
	assert.False(t, kubernetes.Found)
	assert.Empty(t, kubernetes.Locations)

	terraform := byKeyword["terraform"]
	assert.True(t, terraform.Found)
	assert.Equal(t, types.ImportancePreferred, terraform.Importance)
	assert.Empty(t, terraform.Locations) // bullet text is not a reported location
}

func TestBuildReport_SkillPartition(t *testing.T) {
	report := BuildReport(matchResume(), matchJob(), &types.RelevanceMap{})

	assert.Equal(t, []string{"python"}, report.MatchedSkills)
	assert.Equal(t, []string{"kubernetes", "terraform"}, report.MissingSkills)
	assert.Equal(t, []string{"rust"}, report.ExtraSkills)
}

func TestBuildReport_MissingAndExtraCapped(t *testing.T) {
	job := matchJob()
	resume := matchResume()
	for i := 0; i < 15; i++ {
		job.SkillClusters[0].Skills = append(job.SkillClusters[0].Skills,
			fmt.Sprintf("jobskill%02d", i))
		resume.SkillCategories[0].Skills = append(resume.SkillCategories[0].Skills,
			fmt.Sprintf("resumeskill%02d", i))
	}

	report := BuildReport(resume, job, &types.RelevanceMap{})

	assert.Len(t, report.MissingSkills, 10)
	assert.Len(t, report.ExtraSkills, 10)
}

func TestBuildReport_RoleAlignment(t *testing.T) {
	rel := &types.RelevanceMap{OverallMatch: 72}
	report := BuildReport(matchResume(), matchJob(), rel)

	assert.Equal(t, "Senior Backend Engineer (Infrastructure): 72% overall match",
		report.RoleAlignment)
}

func TestBuildReport_SuggestionsFireOnWeakResume(t *testing.T) {
	job := matchJob()
	// Six missing skills trips the missing-skills suggestion; only the
	// first five are listed.
	job.SkillClusters[0].Skills = []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
	}
	resume := &types.GeneratedResume{
		Experiences: []types.SelectedExperience{{
			Experience: types.Experience{ID: "exp_weak"},
			Bullets:    []types.RewrittenBullet{{Text: "Did some unrelated work"}},
		}},
	}
	rel := &types.RelevanceMap{Experiences: map[string]float64{"exp_weak": 10}}

	report := BuildReport(resume, job, rel)

	require.Len(t, report.Suggestions, 3)
	assert.Contains(t, report.Suggestions[0], "coverage is low")
	assert.Contains(t, report.Suggestions[1], "alpha, bravo, charlie, delta, echo")
	assert.NotContains(t, report.Suggestions[1], "foxtrot")
	assert.Contains(t, report.Suggestions[2], "score low")
}

func TestBuildReport_NoSuggestionsOnStrongResume(t *testing.T) {
	resume := matchResume()
	resume.SkillCategories[0].Skills = []string{"Python", "Kubernetes", "Terraform"}
	rel := &types.RelevanceMap{Experiences: map[string]float64{"exp_001": 90}}

	report := BuildReport(resume, matchJob(), rel)

	assert.Equal(t, 100, report.CoverageScore)
	assert.Empty(t, report.Suggestions)
}

func TestBuildReport_NoKeywords(t *testing.T) {
	job := &types.JobRequirementModel{RoleType: types.RoleOther}
	report := BuildReport(&types.GeneratedResume{}, job, &types.RelevanceMap{})

	assert.Zero(t, report.CoverageScore)
	assert.Empty(t, report.Keywords)
}
