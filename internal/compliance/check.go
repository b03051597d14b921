package compliance

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-pilot/internal/types"
)

// Numeric thresholds for the catalogue checks. These are fixed for
// reproducibility: two runs over the same resume must produce identical
// reports.
const (
	minNameLength           = 2
	minBulletsPerExperience = 2
	maxBulletsPerExperience = 5
	minMetricRatio          = 0.4
	minActionVerbRatio      = 0.8
	stuffingMinCount        = 5
	stuffingMinFrequency    = 0.05
	stuffingMinWordLength   = 3

	errorPenalty   = 20
	warningPenalty = 5
)

var (
	// metricPattern matches quantified impact: percentages, dollar amounts,
	// multipliers ("3x"), open-ended counts ("50+"), and bare integers.
	metricPattern = regexp.MustCompile(`(?i)\$\d[\d,]*(\.\d+)?|\d+(\.\d+)?%|\d+(\.\d+)?x\b|\d+\+|\b\d+\b`)

	// datePattern matches the canonical date labels accepted by ATS parsers.
	datePattern = regexp.MustCompile(`^(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec) \d{4}$|^\d{4}$|^Present$|^Current$`)

	wordPattern = regexp.MustCompile(`[a-z0-9]+`)
)

// problematicGlyphs are single characters known to break ATS text extraction.
// Box-drawing characters are matched by range in containsProblematicGlyph.
const problematicGlyphs = "|•‣◦▪●·∙"

// Check evaluates every catalogue rule against the assembled resume and
// produces a compliance report. All checks are closed-form string predicates;
// the report is deterministic for a given input.
func Check(resume *types.GeneratedResume) *types.ComplianceReport {
	var violations, warnings []types.Issue

	record := func(issue types.Issue) {
		switch issue.Rule.Severity {
		case types.SeverityError:
			violations = append(violations, issue)
		case types.SeverityWarning:
			warnings = append(warnings, issue)
		}
	}

	for _, issue := range checkContact(resume.Contact) {
		record(issue)
	}
	for _, issue := range checkSections(resume) {
		record(issue)
	}
	for _, issue := range checkBulletCounts(resume.Experiences) {
		record(issue)
	}
	if issue := checkMetricDensity(resume); issue != nil {
		record(*issue)
	}
	if issue := checkActionVerbs(resume); issue != nil {
		record(*issue)
	}
	if issue := checkDates(resume); issue != nil {
		record(*issue)
	}
	if issue := checkGlyphs(resume); issue != nil {
		record(*issue)
	}
	if issue := checkKeywordStuffing(resume); issue != nil {
		record(*issue)
	}

	score := 100 - errorPenalty*len(violations) - warningPenalty*len(warnings)
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	checked := make([]types.Rule, len(Catalogue))
	copy(checked, Catalogue)

	return &types.ComplianceReport{
		Passed:       len(violations) == 0,
		Score:        score,
		Violations:   violations,
		Warnings:     warnings,
		CheckedRules: checked,
	}
}

func checkContact(contact types.Contact) []types.Issue {
	var issues []types.Issue
	if strings.TrimSpace(contact.Email) == "" {
		issues = append(issues, types.Issue{
			Rule:       ruleByID(RuleIDEmailMissing),
			Suggestion: "Add an email address to the contact header.",
			Location:   "contact",
		})
	}
	if len(strings.TrimSpace(contact.Name)) < minNameLength {
		issues = append(issues, types.Issue{
			Rule:       ruleByID(RuleIDNameInvalid),
			Suggestion: "Add the candidate's full name to the contact header.",
			Location:   "contact",
		})
	}
	if strings.TrimSpace(contact.Phone) == "" {
		issues = append(issues, types.Issue{
			Rule:       ruleByID(RuleIDPhoneMissing),
			Suggestion: "Add a phone number to the contact header.",
			Location:   "contact",
		})
	}
	return issues
}

func checkSections(resume *types.GeneratedResume) []types.Issue {
	var issues []types.Issue
	if len(resume.Experiences) == 0 {
		issues = append(issues, types.Issue{
			Rule:       ruleByID(RuleIDNoExperience),
			Suggestion: "No experience entries fit the layout; consider a larger page budget or fewer other sections.",
			Location:   "experience",
		})
	}
	hasSkill := false
	for _, category := range resume.SkillCategories {
		if len(category.Skills) > 0 {
			hasSkill = true
			break
		}
	}
	if !hasSkill {
		issues = append(issues, types.Issue{
			Rule:       ruleByID(RuleIDSkillsEmpty),
			Suggestion: "Add at least one populated skill category.",
			Location:   "skills",
		})
	}
	return issues
}

func checkBulletCounts(experiences []types.SelectedExperience) []types.Issue {
	var issues []types.Issue
	for _, exp := range experiences {
		location := fmt.Sprintf("experience: %s", exp.Experience.Title)
		if len(exp.Bullets) < minBulletsPerExperience {
			issues = append(issues, types.Issue{
				Rule:       ruleByID(RuleIDBulletsTooFew),
				Suggestion: "Add more bullets to this experience.",
				Location:   location,
			})
		} else if len(exp.Bullets) > maxBulletsPerExperience {
			issues = append(issues, types.Issue{
				Rule:       ruleByID(RuleIDBulletsTooMany),
				Suggestion: "Reduce the number of bullets for this experience.",
				Location:   location,
			})
		}
	}
	return issues
}

// includedBullets collects the final text of every included experience and
// project bullet, in section order.
func includedBullets(resume *types.GeneratedResume) []string {
	var bullets []string
	for _, exp := range resume.Experiences {
		for _, bullet := range exp.Bullets {
			bullets = append(bullets, bullet.Text)
		}
	}
	for _, proj := range resume.Projects {
		for _, bullet := range proj.Bullets {
			bullets = append(bullets, bullet.Text)
		}
	}
	return bullets
}

func checkMetricDensity(resume *types.GeneratedResume) *types.Issue {
	bullets := includedBullets(resume)
	if len(bullets) == 0 {
		return nil
	}
	withMetric := 0
	for _, bullet := range bullets {
		if metricPattern.MatchString(bullet) {
			withMetric++
		}
	}
	ratio := float64(withMetric) / float64(len(bullets))
	if ratio >= minMetricRatio {
		return nil
	}
	return &types.Issue{
		Rule: ruleByID(RuleIDMetricDensity),
		Suggestion: fmt.Sprintf("Only %d of %d bullets contain a metric; quantify more of them (percentages, counts, dollar amounts).",
			withMetric, len(bullets)),
	}
}

func checkActionVerbs(resume *types.GeneratedResume) *types.Issue {
	bullets := includedBullets(resume)
	if len(bullets) == 0 {
		return nil
	}
	withVerb := 0
	for _, bullet := range bullets {
		if startsWithActionVerb(bullet) {
			withVerb++
		}
	}
	ratio := float64(withVerb) / float64(len(bullets))
	if ratio >= minActionVerbRatio {
		return nil
	}
	return &types.Issue{
		Rule: ruleByID(RuleIDActionVerbs),
		Suggestion: fmt.Sprintf("Only %d of %d bullets start with a recognized action verb; rephrase the rest.",
			withVerb, len(bullets)),
	}
}

// checkDates validates every experience and education date label and reports
// the first offending value.
func checkDates(resume *types.GeneratedResume) *types.Issue {
	var dates []string
	for _, exp := range resume.Experiences {
		dates = append(dates, exp.Experience.StartDate, exp.Experience.EndDate)
	}
	for _, edu := range resume.Education {
		dates = append(dates, edu.GraduationDate)
	}
	for _, date := range dates {
		if date == "" {
			continue
		}
		if !datePattern.MatchString(date) {
			return &types.Issue{
				Rule:       ruleByID(RuleIDDateFormat),
				Suggestion: fmt.Sprintf("Date %q does not match \"Mon YYYY\", \"YYYY\", \"Present\", or \"Current\".", date),
				Location:   "dates",
			}
		}
	}
	return nil
}

func checkGlyphs(resume *types.GeneratedResume) *types.Issue {
	text := assembleText(resume)
	for _, r := range text {
		if strings.ContainsRune(problematicGlyphs, r) || (r >= 0x2500 && r <= 0x257F) {
			return &types.Issue{
				Rule:       ruleByID(RuleIDGlyphs),
				Suggestion: fmt.Sprintf("Remove the %q character; ATS parsers often mangle it.", r),
			}
		}
	}
	return nil
}

// checkKeywordStuffing tokenizes the resume text and flags any word longer
// than 3 characters whose count exceeds 5 and whose frequency exceeds 5% of
// all counted words.
func checkKeywordStuffing(resume *types.GeneratedResume) *types.Issue {
	words := wordPattern.FindAllString(strings.ToLower(assembleText(resume)), -1)
	counts := make(map[string]int)
	total := 0
	for _, word := range words {
		if len(word) <= stuffingMinWordLength {
			continue
		}
		counts[word]++
		total++
	}
	if total == 0 {
		return nil
	}
	// Deterministic report: pick the most frequent offender, ties broken
	// lexicographically.
	offender := ""
	offenderCount := 0
	for word, count := range counts {
		if count <= stuffingMinCount {
			continue
		}
		if float64(count)/float64(total) <= stuffingMinFrequency {
			continue
		}
		if count > offenderCount || (count == offenderCount && word < offender) {
			offender = word
			offenderCount = count
		}
	}
	if offender == "" {
		return nil
	}
	return &types.Issue{
		Rule: ruleByID(RuleIDKeywordStuffing),
		Suggestion: fmt.Sprintf("The word %q appears %d times (%.0f%% of the text); vary the phrasing.",
			offender, offenderCount, float64(offenderCount)/float64(total)*100),
	}
}

// assembleText flattens all user-visible resume text into one string, the
// same surface an ATS parser would see.
func assembleText(resume *types.GeneratedResume) string {
	var sb strings.Builder
	sb.WriteString(resume.Contact.Name)
	sb.WriteString(" ")
	sb.WriteString(resume.Summary)
	sb.WriteString(" ")
	for _, exp := range resume.Experiences {
		sb.WriteString(exp.Experience.Title)
		sb.WriteString(" ")
		sb.WriteString(exp.Experience.Company)
		sb.WriteString(" ")
		for _, bullet := range exp.Bullets {
			sb.WriteString(bullet.Text)
			sb.WriteString(" ")
		}
	}
	for _, proj := range resume.Projects {
		sb.WriteString(proj.Project.Title)
		sb.WriteString(" ")
		for _, bullet := range proj.Bullets {
			sb.WriteString(bullet.Text)
			sb.WriteString(" ")
		}
	}
	for _, category := range resume.SkillCategories {
		sb.WriteString(strings.Join(category.Skills, " "))
		sb.WriteString(" ")
	}
	for _, cert := range resume.Certifications {
		sb.WriteString(cert.Name)
		sb.WriteString(" ")
	}
	return sb.String()
}
