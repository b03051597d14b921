package scoring

import (
	"testing"

	"github.com/jonathan/resume-pilot/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRelevanceMap_AggregatesAllSections(t *testing.T) {
	profile := &types.ResumeProfile{
		Experiences: []types.Experience{
			{ID: "exp_001", Title: "Backend Engineer", Bullets: []string{"Built Python services on AWS"}},
			{ID: "exp_002", Title: "Barista", Bullets: []string{"Made coffee"}},
		},
		Projects: []types.Project{
			{ID: "proj_001", TechStack: []string{"Python", "AWS"}, Link: "https://example.com", Bullets: []string{"python on aws"}},
		},
		SkillCategories: []types.SkillCategory{
			{Name: "Languages", Skills: []string{"Python", "PHP"}},
		},
	}

	rel := BuildRelevanceMap(profile, backendJob())
	require.NotNil(t, rel)

	assert.Len(t, rel.Experiences, 2)
	assert.InDelta(t, 60.0, rel.Experiences["exp_001"], 0.001)
	assert.Zero(t, rel.Experiences["exp_002"])

	assert.InDelta(t, 90.0, rel.Projects["proj_001"], 0.001)

	assert.Equal(t, 100.0, rel.Skills["python"])
	assert.Zero(t, rel.Skills["php"])

	// avgExp 30, avgProj 90, skill match rate 50:
	// round(30*0.5 + 90*0.2 + 50*0.3) = round(48) = 48.
	assert.Equal(t, 48, rel.OverallMatch)
}

func TestBuildRelevanceMap_EmptyProfile(t *testing.T) {
	rel := BuildRelevanceMap(&types.ResumeProfile{}, backendJob())
	require.NotNil(t, rel)

	assert.Empty(t, rel.Experiences)
	assert.Empty(t, rel.Projects)
	assert.Empty(t, rel.Skills)
	assert.Zero(t, rel.OverallMatch)
}

func TestBuildRelevanceMap_SkillsOnly(t *testing.T) {
	profile := &types.ResumeProfile{
		SkillCategories: []types.SkillCategory{
			{Name: "Languages", Skills: []string{"Python", "Go", "AWS", "PHP"}},
		},
	}

	rel := BuildRelevanceMap(profile, backendJob())

	// 3 of 4 skills match: round(0 + 0 + 75*0.3) = 23.
	assert.Equal(t, 23, rel.OverallMatch)
}
