// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-pilot/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("-", boxWidth-2)
	fmt.Fprintf(p.out, "+%s+\n", border)
	fmt.Fprintf(p.out, "| %-*s |\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "+%s+\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "| %-*s |\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "+%s+\n", border)
}

// PrintRelevanceMap outputs a human-readable summary of relevance scores.
func (p *Printer) PrintRelevanceMap(rel *types.RelevanceMap) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Overall match: %d%%\n", rel.OverallMatch)
	fmt.Fprintf(&sb, "Experiences scored: %d\n", len(rel.Experiences))
	fmt.Fprintf(&sb, "Projects scored: %d\n", len(rel.Projects))

	matched := 0
	for _, score := range rel.Skills {
		if score > 0 {
			matched++
		}
	}
	fmt.Fprintf(&sb, "Skills matched: %d of %d", matched, len(rel.Skills))
	p.printBox("Relevance", sb.String())
}

// PrintLayoutPlan outputs the allocated sections and the compression verdict.
func (p *Printer) PrintLayoutPlan(plan *types.LayoutPlan) {
	var sb strings.Builder
	for _, section := range plan.Sections {
		if len(section.Items) > 0 {
			fmt.Fprintf(&sb, "%-14s %3d lines, %d items\n", section.Kind, section.Lines, len(section.Items))
		} else {
			fmt.Fprintf(&sb, "%-14s %3d lines\n", section.Kind, section.Lines)
		}
	}
	fmt.Fprintf(&sb, "Used %d of %d lines (compression: %s)", plan.TotalLines, plan.LineBudget, plan.CompressionLevel)
	p.printBox("Layout plan", sb.String())
}

// PrintComplianceReport outputs violations and warnings with suggestions.
func (p *Printer) PrintComplianceReport(report *types.ComplianceReport) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Passed: %v, score: %d\n", report.Passed, report.Score)
	for _, violation := range report.Violations {
		fmt.Fprintf(&sb, "ERROR %s: %s\n", violation.Rule.ID, violation.Suggestion)
	}
	for _, warning := range report.Warnings {
		fmt.Fprintf(&sb, "WARN  %s: %s\n", warning.Rule.ID, warning.Suggestion)
	}
	p.printBox("Compliance", strings.TrimRight(sb.String(), "\n"))
}

// PrintMatchReport outputs keyword coverage and the skill partition.
func (p *Printer) PrintMatchReport(report *types.MatchReport) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", report.RoleAlignment)
	fmt.Fprintf(&sb, "Keyword coverage: %d%%\n", report.CoverageScore)

	missing := make([]string, len(report.MissingSkills))
	copy(missing, report.MissingSkills)
	sort.Strings(missing)
	if len(missing) > maxItemsToShow {
		missing = missing[:maxItemsToShow]
	}
	if len(missing) > 0 {
		fmt.Fprintf(&sb, "Missing skills: %s\n", strings.Join(missing, ", "))
	}
	for _, suggestion := range report.Suggestions {
		fmt.Fprintf(&sb, "Suggestion: %s\n", suggestion)
	}
	p.printBox("Job match", strings.TrimRight(sb.String(), "\n"))
}
