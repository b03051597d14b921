package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobRequirementModel_FlattenedSkills(t *testing.T) {
	job := &JobRequirementModel{
		SkillClusters: []SkillCluster{
			{Category: "Languages", Skills: []string{"Python", "Go", " python "}},
			{Category: "Cloud", Skills: []string{"AWS", "", "go"}},
		},
	}

	assert.Equal(t, []string{"python", "go", "aws"}, job.FlattenedSkills())
}

func TestJobRequirementModel_AllKeywords(t *testing.T) {
	job := &JobRequirementModel{
		PrimaryKeywords:   []string{"Python", "AWS"},
		SecondaryKeywords: []string{"terraform", "python"},
		SkillClusters: []SkillCluster{
			{Category: "Core", Skills: []string{"Kubernetes", "aws"}},
		},
	}

	// Primary, then secondary, then cluster skills, deduplicated.
	assert.Equal(t, []string{"python", "aws", "terraform", "kubernetes"}, job.AllKeywords())
}

func TestCoerceRoleType(t *testing.T) {
	assert.Equal(t, RoleBackendEngineer, CoerceRoleType("backend engineer"))
	assert.Equal(t, RoleMLEngineer, CoerceRoleType("Machine Learning Engineer"))
	assert.Equal(t, RoleOther, CoerceRoleType("Chief Vibes Officer"))
	assert.Equal(t, RoleOther, CoerceRoleType(""))
}

func TestCoerceSeniority(t *testing.T) {
	assert.Equal(t, SenioritySenior, CoerceSeniority("SENIOR"))
	assert.Equal(t, SeniorityMid, CoerceSeniority("somewhere in the middle"))
}

func TestCoerceDomain(t *testing.T) {
	assert.Equal(t, DomainFintech, CoerceDomain("fintech"))
	assert.Equal(t, DomainGeneral, CoerceDomain("unknown"))
}

func TestResumeProfile_FlattenedSkills(t *testing.T) {
	profile := &ResumeProfile{
		SkillCategories: []SkillCategory{
			{Name: "Languages", Skills: []string{"Go", "Python"}},
			{Name: "Tools", Skills: []string{"go", "Docker"}},
		},
	}

	assert.Equal(t, []string{"go", "python", "docker"}, profile.FlattenedSkills())
}

func TestNewEntryID_Unique(t *testing.T) {
	assert.NotEqual(t, NewEntryID(), NewEntryID())
	assert.NotEmpty(t, NewEntryID())
}

func TestLayoutPlan_Section(t *testing.T) {
	plan := &LayoutPlan{Sections: []LayoutSection{
		{Kind: SectionHeader, Lines: 6},
		{Kind: SectionExperience, Lines: 20},
	}}

	assert.NotNil(t, plan.Section(SectionHeader))
	assert.Equal(t, 20, plan.Section(SectionExperience).Lines)
	assert.Nil(t, plan.Section(SectionProjects))
}
