package parsing

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-pilot/internal/types"
)

// ParseResumeProfile validates an extraction-collaborator payload against the
// profile schema and normalizes it into the closed data model: missing
// collections become empty, and every entry without a stable ID gets one
// assigned here, once.
func ParseResumeProfile(data []byte) (*types.ResumeProfile, error) {
	if err := validate("resume profile", resumeProfileSchema, data); err != nil {
		return nil, err
	}

	var profile types.ResumeProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, &DecodeError{Artifact: "resume profile", Cause: err}
	}

	NormalizeProfile(&profile)
	return &profile, nil
}

// ParseJobRequirementModel validates an analysis-collaborator payload against
// the job schema and normalizes it: closed enums coerce to their fallback
// values, keyword lists are lower-cased and deduplicated, and theme weights
// are clamped to [0,1].
func ParseJobRequirementModel(data []byte) (*types.JobRequirementModel, error) {
	if err := validate("job requirement model", jobModelSchema, data); err != nil {
		return nil, err
	}

	var job types.JobRequirementModel
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, &DecodeError{Artifact: "job requirement model", Cause: err}
	}

	NormalizeJobModel(&job)
	return &job, nil
}

func validate(artifact, schema string, data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return &DecodeError{Artifact: artifact, Cause: err}
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return &ValidationError{Artifact: artifact, Problems: problems}
}

// NormalizeProfile fills defaults in place: nil collections become empty
// slices and entries without IDs get fresh ones.
func NormalizeProfile(profile *types.ResumeProfile) {
	if profile.Experiences == nil {
		profile.Experiences = []types.Experience{}
	}
	if profile.Projects == nil {
		profile.Projects = []types.Project{}
	}
	if profile.Education == nil {
		profile.Education = []types.Education{}
	}
	if profile.SkillCategories == nil {
		profile.SkillCategories = []types.SkillCategory{}
	}
	if profile.Certifications == nil {
		profile.Certifications = []types.Certification{}
	}

	for i := range profile.Experiences {
		if profile.Experiences[i].ID == "" {
			profile.Experiences[i].ID = types.NewEntryID()
		}
		if profile.Experiences[i].Bullets == nil {
			profile.Experiences[i].Bullets = []string{}
		}
	}
	for i := range profile.Projects {
		if profile.Projects[i].ID == "" {
			profile.Projects[i].ID = types.NewEntryID()
		}
		if profile.Projects[i].Bullets == nil {
			profile.Projects[i].Bullets = []string{}
		}
		if profile.Projects[i].TechStack == nil {
			profile.Projects[i].TechStack = []string{}
		}
	}
	for i := range profile.SkillCategories {
		if profile.SkillCategories[i].Skills == nil {
			profile.SkillCategories[i].Skills = []string{}
		}
	}
}

// NormalizeJobModel coerces enums to the closed sets, normalizes keyword
// lists, and clamps theme weights, all in place.
func NormalizeJobModel(job *types.JobRequirementModel) {
	job.RoleType = types.CoerceRoleType(string(job.RoleType))
	job.Seniority = types.CoerceSeniority(string(job.Seniority))
	job.Domain = types.CoerceDomain(string(job.Domain))

	job.PrimaryKeywords = normalizeKeywords(job.PrimaryKeywords)
	job.SecondaryKeywords = normalizeKeywords(job.SecondaryKeywords)

	if job.SkillClusters == nil {
		job.SkillClusters = []types.SkillCluster{}
	}
	for i := range job.SkillClusters {
		if job.SkillClusters[i].Skills == nil {
			job.SkillClusters[i].Skills = []string{}
		}
		job.SkillClusters[i].Tier = coerceTier(job.SkillClusters[i].Tier)
	}

	if job.ImpactThemes == nil {
		job.ImpactThemes = []types.ImpactTheme{}
	}
	for i := range job.ImpactThemes {
		if job.ImpactThemes[i].Keywords == nil {
			job.ImpactThemes[i].Keywords = []string{}
		}
		if job.ImpactThemes[i].Weight < 0 {
			job.ImpactThemes[i].Weight = 0
		}
		if job.ImpactThemes[i].Weight > 1 {
			job.ImpactThemes[i].Weight = 1
		}
	}
}

// normalizeKeywords lower-cases, trims, and deduplicates a keyword list,
// preserving first-seen order.
func normalizeKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	normalized := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		kw := strings.ToLower(strings.TrimSpace(keyword))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		normalized = append(normalized, kw)
	}
	return normalized
}

func coerceTier(tier types.SkillTier) types.SkillTier {
	switch types.SkillTier(strings.ToLower(string(tier))) {
	case types.TierRequired:
		return types.TierRequired
	case types.TierNiceToHave:
		return types.TierNiceToHave
	default:
		return types.TierPreferred
	}
}
