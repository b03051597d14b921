package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/resume-pilot/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintRelevanceMap(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintRelevanceMap(&types.RelevanceMap{
		Experiences:  map[string]float64{"exp_001": 60},
		Projects:     map[string]float64{"proj_001": 90},
		Skills:       map[string]float64{"python": 100, "php": 0},
		OverallMatch: 48,
	})

	out := buf.String()
	assert.Contains(t, out, "Relevance")
	assert.Contains(t, out, "Overall match: 48%")
	assert.Contains(t, out, "Skills matched: 1 of 2")
}

func TestPrintLayoutPlan(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintLayoutPlan(&types.LayoutPlan{
		Sections: []types.LayoutSection{
			{Kind: types.SectionHeader, Lines: 6},
			{Kind: types.SectionExperience, Lines: 24, Items: []types.LayoutItem{
				{EntryID: "exp_001", BulletCount: 3},
			}},
		},
		TotalLines:       30,
		LineBudget:       55,
		CompressionLevel: types.CompressionNone,
	})

	out := buf.String()
	assert.Contains(t, out, "Used 30 of 55 lines")
	assert.Contains(t, out, "compression: none")
	assert.Contains(t, out, "1 items")
}

func TestPrintComplianceReport(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintComplianceReport(&types.ComplianceReport{
		Passed: false,
		Score:  75,
		Violations: []types.Issue{{
			Rule:       types.Rule{ID: "contact_email_missing", Severity: types.SeverityError},
			Suggestion: "Add an email address.",
		}},
	})

	out := buf.String()
	assert.Contains(t, out, "Passed: false, score: 75")
	assert.Contains(t, out, "ERROR contact_email_missing")
}

func TestPrintMatchReport_SortsAndCapsMissing(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintMatchReport(&types.MatchReport{
		RoleAlignment: "Senior Backend Engineer (Fintech): 72% overall match",
		CoverageScore: 72,
		MissingSkills: []string{"zig", "cobol", "ada", "perl", "tcl", "forth"},
	})

	out := buf.String()
	assert.Contains(t, out, "Keyword coverage: 72%")
	assert.Contains(t, out, "ada, cobol, forth, perl, tcl")
	assert.NotContains(t, out, "zig")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.printBox("Title", strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len(line), boxWidth)
	}
	assert.Contains(t, buf.String(), "...")
}
