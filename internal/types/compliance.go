// Package types provides type definitions for structured data used throughout the resume-pilot system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Severity classifies how serious a failed compliance rule is.
type Severity string

// Rule severities. Only error-severity failures block a pass.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Rule is one entry in the fixed compliance rule catalogue.
type Rule struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// Issue is a single failed rule, optionally with a suggestion and a pointer
// to where in the resume the problem was found.
type Issue struct {
	Rule       Rule   `json:"rule"`
	Suggestion string `json:"suggestion,omitempty"`
	Location   string `json:"location,omitempty"`
}

// ComplianceReport is the result of auditing an assembled resume against the
// rule catalogue. Passed is true iff no violation has error severity.
type ComplianceReport struct {
	Passed       bool    `json:"passed"`
	Score        int     `json:"score"`
	Violations   []Issue `json:"violations"`
	Warnings     []Issue `json:"warnings"`
	CheckedRules []Rule  `json:"checked_rules"`
}
