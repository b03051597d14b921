package layout

import (
	"testing"

	"github.com/jonathan/resume-pilot/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullConfig() types.LayoutConfig {
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

func equalScoreProfile(expCount, projCount int) (*types.ResumeProfile, *types.RelevanceMap) {
	profile := &types.ResumeProfile{
		SkillCategories: []types.SkillCategory{
			{Name: "Languages", Skills: []string{"Go"}},
			{Name: "Cloud", Skills: []string{"AWS"}},
		},
		Education: []types.Education{{School: "State University", Degree: "BS"}},
	}
	rel := &types.RelevanceMap{
		Experiences: make(map[string]float64),
		Projects:    make(map[string]float64),
	}
	for i := 0; i < expCount; i++ {
		id := string(rune('a' + i))
		profile.Experiences = append(profile.Experiences, types.Experience{
			ID:      "exp_" + id,
			Bullets: []string{"one", "two", "three"},
		})
		rel.Experiences["exp_"+id] = 50
	}
	for i := 0; i < projCount; i++ {
		id := string(rune('a' + i))
		profile.Projects = append(profile.Projects, types.Project{
			ID:      "proj_" + id,
			Bullets: []string{"one", "two"},
		})
		rel.Projects["proj_"+id] = 50
	}
	return profile, rel
}

func TestAllocate_GreedyFillOnePage(t *testing.T) {
	profile, rel := equalScoreProfile(10, 5)

	plan := Allocate(profile, fullConfig(), rel)
	require.NotNil(t, plan)

	assert.Equal(t, 55, plan.LineBudget)

	// Fixed costs: header 6, summary 3, skills 3+2/2=4, education 3, pad 2.
	// Remaining 37; experience ceiling floor(37*0.7)=25 admits three 8-line
	// blocks; project target min(37-24, 3*4)=12 admits two 5-line blocks.
	expSection := plan.Section(types.SectionExperience)
	require.NotNil(t, expSection)
	assert.Equal(t, 24, expSection.Lines)
	require.Len(t, expSection.Items, 3)

	// Ties admit in original order.
	assert.Equal(t, "exp_a", expSection.Items[0].EntryID)
	assert.Equal(t, "exp_b", expSection.Items[1].EntryID)
	assert.Equal(t, "exp_c", expSection.Items[2].EntryID)

	projSection := plan.Section(types.SectionProjects)
	require.NotNil(t, projSection)
	assert.Equal(t, 10, projSection.Lines)
	assert.Len(t, projSection.Items, 2)

	// 6+3+4+24+10+3 = 50 lines used, under budget so no compression.
	assert.Equal(t, 50, plan.TotalLines)
	assert.Equal(t, types.CompressionNone, plan.CompressionLevel)
}

func TestAllocate_SectionOrder(t *testing.T) {
	profile, rel := equalScoreProfile(2, 1)
	profile.Certifications = []types.Certification{{Name: "CKA"}}

	plan := Allocate(profile, fullConfig(), rel)

	kinds := make([]types.SectionKind, len(plan.Sections))
	for i, s := range plan.Sections {
		kinds[i] = s.Kind
	}
	assert.Equal(t, []types.SectionKind{
		types.SectionHeader,
		types.SectionSummary,
		types.SectionSkills,
		types.SectionExperience,
		types.SectionProjects,
		types.SectionEducation,
		types.SectionCertifications,
	}, kinds)
}

func TestAllocate_BulletCapApplied(t *testing.T) {
	profile := &types.ResumeProfile{
		Experiences: []types.Experience{{
			ID:      "exp_many",
			Bullets: []string{"1", "2", "3", "4", "5", "6"},
		}},
	}
	cfg := fullConfig()
	cfg.MaxBulletsPerExperience = 2

	plan := Allocate(profile, cfg, &types.RelevanceMap{})

	expSection := plan.Section(types.SectionExperience)
	require.NotNil(t, expSection)
	require.Len(t, expSection.Items, 1)
	assert.Equal(t, 2, expSection.Items[0].BulletCount)
	assert.Equal(t, 6, expSection.Lines)
}

func TestAllocate_FirstOverflowStopsAdmission(t *testing.T) {
	// The greedy pass breaks on the first entry that does not fit, even when
	// a cheaper lower-ranked entry would have.
	profile := &types.ResumeProfile{
		Experiences: []types.Experience{
			{ID: "exp_big", Bullets: make([]string, 20)},
			{ID: "exp_small", Bullets: []string{"one"}},
		},
	}
	rel := &types.RelevanceMap{Experiences: map[string]float64{
		"exp_big":   90,
		"exp_small": 10,
	}}
	cfg := types.LayoutConfig{
		PageCount:               1,
		MaxBulletsPerExperience: 20,
		MaxProjects:             0,
	}

	plan := Allocate(profile, cfg, rel)

	// Remaining is 55-6-2=47, ceiling floor(47*0.7)=32. exp_big costs
	// 2+20*2=42 > 32, so the loop breaks immediately and even the 4-line
	// exp_small is excluded.
	assert.Nil(t, plan.Section(types.SectionExperience))
}

func TestAllocate_MaxProjectsCap(t *testing.T) {
	profile := &types.ResumeProfile{}
	rel := &types.RelevanceMap{Projects: make(map[string]float64)}
	for _, id := range []string{"proj_a", "proj_b", "proj_c", "proj_d"} {
		profile.Projects = append(profile.Projects, types.Project{
			ID:      id,
			Bullets: []string{"one"},
		})
		rel.Projects[id] = 50
	}
	cfg := fullConfig()
	cfg.IncludeEducation = false
	cfg.MaxProjects = 2

	plan := Allocate(profile, cfg, rel)

	// The project target is capped at 2*4=8 lines and each 1-bullet project
	// costs 3, so exactly the two top-ranked projects are admitted.
	projSection := plan.Section(types.SectionProjects)
	require.NotNil(t, projSection)
	assert.Len(t, projSection.Items, 2)
}

func TestAllocate_EmptySectionsOmitted(t *testing.T) {
	plan := Allocate(&types.ResumeProfile{}, fullConfig(), &types.RelevanceMap{})

	assert.Nil(t, plan.Section(types.SectionExperience))
	assert.Nil(t, plan.Section(types.SectionProjects))
	assert.Nil(t, plan.Section(types.SectionEducation))
	assert.Nil(t, plan.Section(types.SectionCertifications))
	require.NotNil(t, plan.Section(types.SectionHeader))
}

func TestAllocate_TwoPageBudget(t *testing.T) {
	profile, rel := equalScoreProfile(10, 3)
	cfg := fullConfig()
	cfg.PageCount = 2

	plan := Allocate(profile, cfg, rel)
	assert.Equal(t, 110, plan.LineBudget)

	expSection := plan.Section(types.SectionExperience)
	require.NotNil(t, expSection)
	assert.Greater(t, len(expSection.Items), 3)
}

func TestAllocate_SummaryTiers(t *testing.T) {
	tests := []struct {
		tier  types.SummaryTier
		lines int
	}{
		{types.SummaryShort, 2},
		{types.SummaryMedium, 3},
		{types.SummaryLong, 4},
		{types.SummaryTier("bogus"), 3},
	}
	for _, tt := range tests {
		cfg := fullConfig()
		cfg.SummaryTier = tt.tier
		plan := Allocate(&types.ResumeProfile{}, cfg, &types.RelevanceMap{})
		section := plan.Section(types.SectionSummary)
		require.NotNil(t, section)
		assert.Equal(t, tt.lines, section.Lines, "tier %s", tt.tier)
	}
}

func TestCompressionLevel_Thresholds(t *testing.T) {
	assert.Equal(t, types.CompressionNone, compressionLevel(52, 55))       // 0.945
	assert.Equal(t, types.CompressionLight, compressionLevel(54, 55))      // 0.981
	assert.Equal(t, types.CompressionModerate, compressionLevel(56, 55))   // 1.018
	assert.Equal(t, types.CompressionAggressive, compressionLevel(62, 55)) // 1.127
}

func TestAllocate_Deterministic(t *testing.T) {
	profile, rel := equalScoreProfile(8, 4)

	first := Allocate(profile, fullConfig(), rel)
	second := Allocate(profile, fullConfig(), rel)
	assert.Equal(t, first, second)
}
