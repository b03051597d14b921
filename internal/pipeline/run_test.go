package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/jonathan/resume-pilot/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pipelineProfile() *types.ResumeProfile {
	return &types.ResumeProfile{
		Contact: types.Contact{
			Name:  "Jane Smith",
			Email: "jane@example.com",
			Phone: "555-0100",
		},
		Experiences: []types.Experience{
			{
				ID:        "exp_backend",
				Title:     "Backend Engineer",
				Company:   "Acme",
				StartDate: "Jan 2020",
				EndDate:   "Present",
				Bullets: []string{
					"Reduced p99 latency by 40% with a Python rewrite",
					"Deployed 12 services to AWS",
					"Mentored 4 junior engineers",
				},
			},
			{
				ID:        "exp_barista",
				Title:     "Barista",
				Company:   "Cafe",
				StartDate: "2016",
				EndDate:   "2018",
				Bullets:   []string{"Served coffee", "Cleaned machines"},
			},
		},
		Projects: []types.Project{{
			ID:        "proj_tool",
			Title:     "Deploy Tool",
			TechStack: []string{"Python", "AWS"},
			Link:      "https://example.com",
			Bullets:   []string{"Automated 30+ deployments per week"},
		}},
		Education: []types.Education{{
			School:         "State University",
			Degree:         "BS",
			Field:          "CS",
			GraduationDate: "2016",
		}},
		SkillCategories: []types.SkillCategory{
			{Name: "Languages", Skills: []string{"Python", "Go"}},
			{Name: "Cloud", Skills: []string{"AWS"}},
		},
	}
}

func pipelineJob() *types.JobRequirementModel {
	return &types.JobRequirementModel{
		RoleType:        types.RoleBackendEngineer,
		Seniority:       types.SenioritySenior,
		Domain:          types.DomainInfrastructure,
		PrimaryKeywords: []string{"python", "aws"},
		SkillClusters: []types.SkillCluster{
			{Category: "Core", Skills: []string{"Python", "AWS"}, Tier: types.TierRequired},
		},
	}
}

func pipelineLayout() types.LayoutConfig {
	return types.LayoutConfig{
		PageCount:               1,
		IncludeSummary:          true,
		SummaryTier:             types.SummaryMedium,
		IncludeSkills:           true,
		IncludeEducation:        true,
		IncludeCertifications:   true,
		MaxBulletsPerExperience: 4,
		MaxProjects:             3,
	}
}

func TestRun_EndToEnd(t *testing.T) {
	result, err := Run(context.Background(), Options{
		Profile: pipelineProfile(),
		Job:     pipelineJob(),
		Layout:  pipelineLayout(),
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, result.Resume)
	require.NotNil(t, result.Relevance)

	resume := result.Resume

	assert.Equal(t, "Jane Smith", resume.Contact.Name)
	assert.NotEmpty(t, resume.Summary)

	// The relevant experience ranks ahead of the barista job.
	require.NotEmpty(t, resume.Experiences)
	assert.Equal(t, "exp_backend", resume.Experiences[0].Experience.ID)
	assert.Greater(t, resume.Experiences[0].Relevance, 0.0)

	// The heuristic rewriter keeps bullet text unchanged but annotates it.
	first := resume.Experiences[0].Bullets[0]
	assert.Equal(t, first.Original, first.Text)
	assert.True(t, first.HasMetric)
	assert.Contains(t, first.KeywordsUsed, "python")

	// Sections admitted by the plan carry through to the assembled resume.
	assert.NotEmpty(t, resume.Education)
	assert.NotEmpty(t, resume.SkillCategories)
	assert.NotEmpty(t, resume.Layout.Sections)

	assert.NotZero(t, resume.Compliance.Score)
	assert.NotZero(t, resume.Match.CoverageScore)
}

func TestRun_NilInputsRejected(t *testing.T) {
	_, err := Run(context.Background(), Options{Job: pipelineJob()})
	assert.Error(t, err)

	_, err = Run(context.Background(), Options{Profile: pipelineProfile()})
	assert.Error(t, err)
}

func TestRun_ProgressEventsInOrder(t *testing.T) {
	var steps []string
	_, err := Run(context.Background(), Options{
		Profile: pipelineProfile(),
		Job:     pipelineJob(),
		Layout:  pipelineLayout(),
		OnProgress: func(event ProgressEvent) {
			steps = append(steps, event.Step)
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{StepScoring, StepLayout, StepRewriting, StepCompliance, StepMatch}, steps)
}

// failingRewriter errors on every call to exercise the degradation paths.
type failingRewriter struct{}

func (failingRewriter) RewriteBullet(context.Context, string, *types.JobRequirementModel) (types.RewrittenBullet, error) {
	return types.RewrittenBullet{}, errors.New("collaborator down")
}

func (failingRewriter) Summarize(context.Context, *types.ResumeProfile, *types.JobRequirementModel, types.SummaryTier) (string, error) {
	return "", errors.New("collaborator down")
}

func TestRun_RewriterFailureDegrades(t *testing.T) {
	result, err := Run(context.Background(), Options{
		Profile:  pipelineProfile(),
		Job:      pipelineJob(),
		Layout:   pipelineLayout(),
		Rewriter: failingRewriter{},
	})
	require.NoError(t, err)

	// Every included bullet keeps its original text and the summary falls
	// back to the heuristic template.
	for _, exp := range result.Resume.Experiences {
		for _, bullet := range exp.Bullets {
			assert.Equal(t, bullet.Original, bullet.Text)
			assert.NotEmpty(t, bullet.Text)
		}
	}
	assert.NotEmpty(t, result.Resume.Summary)
}

func TestRun_SummarySkippedWhenExcluded(t *testing.T) {
	cfg := pipelineLayout()
	cfg.IncludeSummary = false

	result, err := Run(context.Background(), Options{
		Profile: pipelineProfile(),
		Job:     pipelineJob(),
		Layout:  cfg,
	})
	require.NoError(t, err)
	assert.Empty(t, result.Resume.Summary)
}

func TestRun_WithHeuristicRewriterIsDeterministic(t *testing.T) {
	opts := Options{
		Profile: pipelineProfile(),
		Job:     pipelineJob(),
		Layout:  pipelineLayout(),
	}

	first, err := Run(context.Background(), opts)
	require.NoError(t, err)
	second, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, first.Resume, second.Resume)
}
