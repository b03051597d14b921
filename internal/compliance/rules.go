// Package compliance audits an assembled resume against a fixed catalogue of
// ATS parsing rules and scores the result.
package compliance

import "github.com/jonathan/resume-pilot/internal/types"

// Rule IDs are stable across releases; downstream consumers key off them.
const (
	RuleIDEmailMissing    = "contact_email_missing"
	RuleIDNameInvalid     = "contact_name_invalid"
	RuleIDPhoneMissing    = "contact_phone_missing"
	RuleIDNoExperience    = "experience_none_included"
	RuleIDSkillsEmpty     = "skills_empty"
	RuleIDBulletsTooFew   = "experience_bullets_too_few"
	RuleIDBulletsTooMany  = "experience_bullets_too_many"
	RuleIDMetricDensity   = "bullet_metric_density_low"
	RuleIDActionVerbs     = "bullet_action_verb_ratio_low"
	RuleIDDateFormat      = "date_format_invalid"
	RuleIDGlyphs          = "problematic_glyphs"
	RuleIDKeywordStuffing = "keyword_stuffing"
	RuleIDSummaryPresent  = "summary_recommended"
)

// Catalogue is the fixed, ordered rule catalogue. Every rule is evaluated on
// every check; info rules are tracked but never block or warn on their own.
var Catalogue = []types.Rule{
	{
		ID:          RuleIDEmailMissing,
		Name:        "Email present",
		Description: "The resume must include an email address so ATS parsers can build a contact record.",
		Severity:    types.SeverityError,
	},
	{
		ID:          RuleIDNameInvalid,
		Name:        "Candidate name present",
		Description: "The candidate name must be present and at least 2 characters long.",
		Severity:    types.SeverityError,
	},
	{
		ID:          RuleIDPhoneMissing,
		Name:        "Phone present",
		Description: "A phone number improves contact-record extraction.",
		Severity:    types.SeverityWarning,
	},
	{
		ID:          RuleIDNoExperience,
		Name:        "Experience section populated",
		Description: "At least one experience entry should make it into the resume.",
		Severity:    types.SeverityWarning,
	},
	{
		ID:          RuleIDSkillsEmpty,
		Name:        "Skills section populated",
		Description: "Skill categories should exist and contain at least one token.",
		Severity:    types.SeverityWarning,
	},
	{
		ID:          RuleIDBulletsTooFew,
		Name:        "Enough bullets per experience",
		Description: "Each included experience should carry at least 2 bullets.",
		Severity:    types.SeverityWarning,
	},
	{
		ID:          RuleIDBulletsTooMany,
		Name:        "Not too many bullets per experience",
		Description: "Each included experience should carry at most 5 bullets.",
		Severity:    types.SeverityWarning,
	},
	{
		ID:          RuleIDMetricDensity,
		Name:        "Quantified impact",
		Description: "At least 40% of bullets should contain a quantified metric.",
		Severity:    types.SeverityWarning,
	},
	{
		ID:          RuleIDActionVerbs,
		Name:        "Action verbs lead bullets",
		Description: "At least 80% of bullets should start with a recognized action verb.",
		Severity:    types.SeverityWarning,
	},
	{
		ID:          RuleIDDateFormat,
		Name:        "Canonical date labels",
		Description: "Dates must match \"Mon YYYY\", \"YYYY\", \"Present\", or \"Current\".",
		Severity:    types.SeverityWarning,
	},
	{
		ID:          RuleIDGlyphs,
		Name:        "No problematic glyphs",
		Description: "Vertical bars, bullet-variant glyphs, and box-drawing characters confuse ATS parsers.",
		Severity:    types.SeverityWarning,
	},
	{
		ID:          RuleIDKeywordStuffing,
		Name:        "No keyword stuffing",
		Description: "No single word should dominate the resume text.",
		Severity:    types.SeverityWarning,
	},
	{
		ID:          RuleIDSummaryPresent,
		Name:        "Summary recommended",
		Description: "A short professional summary helps human reviewers; ATS parsers ignore it.",
		Severity:    types.SeverityInfo,
	},
}

// ruleByID returns the catalogue rule with the given ID. The catalogue is
// fixed, so a miss is a programming error and returns a zero Rule.
func ruleByID(id string) types.Rule {
	for _, rule := range Catalogue {
		if rule.ID == id {
			return rule
		}
	}
	return types.Rule{}
}
