// Package filter provides filter expression parsing and record matching.
package filter

import "github.com/probsift/probsift/internal/problem"

// Config holds the filter predicate parameters. It is built once from CLI
// options (and optionally a filter expression) and read-only afterwards.
type Config struct {
	// IncludeTerms must all appear as substrings of a record's searchable
	// text for it to pass. Empty means no inclusion restriction.
	IncludeTerms []string
	// ExcludeTerms disqualify a record when any one appears as a substring.
	// Empty means no exclusion restriction.
	ExcludeTerms []string
	// IgnoreCase case-folds terms and searchable text before comparison.
	IgnoreCase bool
	// MinSeverity restricts matching to records at or above this level.
	// SeverityUnknown means no severity restriction.
	MinSeverity problem.Severity
}
