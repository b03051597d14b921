// Package rewriting issues bullet-rewrite and summary-generation requests to
// the external collaborator and degrades deterministically when it fails.
package rewriting

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-pilot/internal/types"
)

// metricPattern matches quantified impact in bullet text: percentages, dollar
// amounts, multipliers, open-ended counts, and bare integers.
var metricPattern = regexp.MustCompile(`(?i)\$\d[\d,]*(\.\d+)?|\d+(\.\d+)?%|\d+(\.\d+)?x\b|\d+\+|\b\d+\b`)

// DetectMetric reports whether the text contains a quantifiable metric pattern.
func DetectMetric(text string) bool {
	return metricPattern.MatchString(text)
}

// KeywordsPresent returns the job keywords (primary then secondary, deduplicated)
// that appear case-insensitively in the text.
func KeywordsPresent(text string, job *types.JobRequirementModel) []string {
	textLower := strings.ToLower(text)
	seen := make(map[string]bool)
	present := make([]string, 0)
	for _, list := range [][]string{job.PrimaryKeywords, job.SecondaryKeywords} {
		for _, keyword := range list {
			kw := strings.ToLower(strings.TrimSpace(keyword))
			if kw == "" || seen[kw] {
				continue
			}
			seen[kw] = true
			if strings.Contains(textLower, kw) {
				present = append(present, kw)
			}
		}
	}
	return present
}

// annotate builds the collaborator-contract result record for a final text:
// the text itself plus which keywords it carries and whether it is quantified.
func annotate(original, text string, job *types.JobRequirementModel) types.RewrittenBullet {
	return types.RewrittenBullet{
		Original:     original,
		Text:         text,
		KeywordsUsed: KeywordsPresent(text, job),
		HasMetric:    DetectMetric(text),
	}
}
