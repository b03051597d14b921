// Package types provides type definitions for structured data used throughout the resume-pilot system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// RoleType classifies a job into a coarse role family.
type RoleType string

// Closed set of role types. Unrecognized values coerce to RoleOther.
const (
	RoleSoftwareEngineer  RoleType = "Software Engineer"
	RoleFrontendEngineer  RoleType = "Frontend Engineer"
	RoleBackendEngineer   RoleType = "Backend Engineer"
	RoleFullStackEngineer RoleType = "Full-Stack Engineer"
	RoleDataScientist     RoleType = "Data Scientist"
	RoleDataEngineer      RoleType = "Data Engineer"
	RoleDevOpsEngineer    RoleType = "DevOps Engineer"
	RoleMLEngineer        RoleType = "Machine Learning Engineer"
	RoleProductManager    RoleType = "Product Manager"
	RoleDesigner          RoleType = "Designer"
	RoleOther             RoleType = "Other"
)

// Seniority classifies the level a job is pitched at.
type Seniority string

// Closed set of seniority levels. Unrecognized values coerce to SeniorityMid.
const (
	SeniorityEntry     Seniority = "Entry-Level"
	SeniorityMid       Seniority = "Mid-Level"
	SenioritySenior    Seniority = "Senior"
	SeniorityStaff     Seniority = "Staff"
	SeniorityPrincipal Seniority = "Principal"
	SeniorityManager   Seniority = "Manager"
	SeniorityDirector  Seniority = "Director"
	SeniorityExecutive Seniority = "Executive"
)

// Domain classifies the industry domain of a job.
type Domain string

// Closed set of domains. Unrecognized values coerce to DomainGeneral.
const (
	DomainGeneral        Domain = "General"
	DomainFintech        Domain = "Fintech"
	DomainHealthcare     Domain = "Healthcare"
	DomainECommerce      Domain = "E-Commerce"
	DomainGaming         Domain = "Gaming"
	DomainEnterprise     Domain = "Enterprise SaaS"
	DomainConsumer       Domain = "Consumer"
	DomainInfrastructure Domain = "Infrastructure"
	DomainAIML           Domain = "AI/ML"
	DomainSecurity       Domain = "Security"
)

// SkillTier indicates how important a skill cluster is to the job.
type SkillTier string

// Importance tiers for skill clusters.
const (
	TierRequired   SkillTier = "required"
	TierPreferred  SkillTier = "preferred"
	TierNiceToHave SkillTier = "nice-to-have"
)

// SkillCluster groups related skill tokens under a category with an importance tier.
type SkillCluster struct {
	Category string    `json:"category"`
	Skills   []string  `json:"skills"`
	Tier     SkillTier `json:"tier"`
}

// ImpactTheme represents a recurring impact theme in a job posting, with
// associated keywords and a weight in [0,1].
type ImpactTheme struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Weight   float64  `json:"weight"`
}

// JobRequirementModel is the structured requirement model for a single job.
// It is produced by the external analysis collaborator and is immutable once built.
// Keyword lists are normalized to lower-case and contain no duplicates.
type JobRequirementModel struct {
	RoleType          RoleType       `json:"role_type"`
	Seniority         Seniority      `json:"seniority"`
	Domain            Domain         `json:"domain"`
	PrimaryKeywords   []string       `json:"primary_keywords"`
	SecondaryKeywords []string       `json:"secondary_keywords"`
	SkillClusters     []SkillCluster `json:"skill_clusters"`
	ImpactThemes      []ImpactTheme  `json:"impact_themes"`
}

// FlattenedSkills returns all skill tokens across clusters, lower-cased,
// deduplicated, in first-seen order.
func (j *JobRequirementModel) FlattenedSkills() []string {
	seen := make(map[string]bool)
	flattened := make([]string, 0)
	for _, cluster := range j.SkillClusters {
		for _, skill := range cluster.Skills {
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

// AllKeywords returns the union of primary keywords, secondary keywords, and
// flattened skill-cluster tokens, lower-cased and deduplicated in first-seen order.
func (j *JobRequirementModel) AllKeywords() []string {
	seen := make(map[string]bool)
	keywords := make([]string, 0, len(j.PrimaryKeywords)+len(j.SecondaryKeywords))
	add := func(raw string) {
		normalized := strings.ToLower(strings.TrimSpace(raw))
		if normalized == "" || seen[normalized] {
			return
		}
		seen[normalized] = true
		keywords = append(keywords, normalized)
	}
	for _, kw := range j.PrimaryKeywords {
		add(kw)
	}
	for _, kw := range j.SecondaryKeywords {
		add(kw)
	}
	for _, cluster := range j.SkillClusters {
		for _, skill := range cluster.Skills {
			add(skill)
		}
	}
	return keywords
}

// CoerceRoleType maps a raw string onto the closed RoleType set, falling back to RoleOther.
func CoerceRoleType(raw string) RoleType {
	candidates := []RoleType{
		RoleSoftwareEngineer, RoleFrontendEngineer, RoleBackendEngineer,
		RoleFullStackEngineer, RoleDataScientist, RoleDataEngineer,
		RoleDevOpsEngineer, RoleMLEngineer, RoleProductManager, RoleDesigner,
	}
	for _, candidate := range candidates {
		if strings.EqualFold(raw, string(candidate)) {
			return candidate
		}
	}
	return RoleOther
}

// CoerceSeniority maps a raw string onto the closed Seniority set, falling back to SeniorityMid.
func CoerceSeniority(raw string) Seniority {
	candidates := []Seniority{
		SeniorityEntry, SeniorityMid, SenioritySenior, SeniorityStaff,
		SeniorityPrincipal, SeniorityManager, SeniorityDirector, SeniorityExecutive,
	}
	for _, candidate := range candidates {
		if strings.EqualFold(raw, string(candidate)) {
			return candidate
		}
	}
	return SeniorityMid
}

// CoerceDomain maps a raw string onto the closed Domain set, falling back to DomainGeneral.
func CoerceDomain(raw string) Domain {
	candidates := []Domain{
		DomainFintech, DomainHealthcare, DomainECommerce, DomainGaming,
		DomainEnterprise, DomainConsumer, DomainInfrastructure, DomainAIML,
		DomainSecurity,
	}
	for _, candidate := range candidates {
		if strings.EqualFold(raw, string(candidate)) {
			return candidate
		}
	}
	return DomainGeneral
}
