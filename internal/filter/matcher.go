package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/probsift/probsift/internal/problem"
)

// Matches reports whether p passes the filter. The searchable text is the
// record's resource and message: a term hits when it is a substring of
// either field. Empty terms keep plain substring semantics: including ""
// never filters anything out, excluding "" rejects every record.
func Matches(p problem.Problem, cfg Config) bool {
	if cfg.MinSeverity != problem.SeverityUnknown && p.Severity < cfg.MinSeverity {
		return false
	}

	resource, message := p.Resource, p.Message
	if cfg.IgnoreCase {
		resource, message = fold(resource), fold(message)
	}

	// All include terms must be present (AND)
	for _, term := range cfg.IncludeTerms {
		if cfg.IgnoreCase {
			term = fold(term)
		}
		if !strings.Contains(resource, term) && !strings.Contains(message, term) {
			return false
		}
	}

	// Any exclude term disqualifies (OR)
	for _, term := range cfg.ExcludeTerms {
		if cfg.IgnoreCase {
			term = fold(term)
		}
		if strings.Contains(resource, term) || strings.Contains(message, term) {
			return false
		}
	}

	return true
}

// fold applies one consistent Unicode case fold, used symmetrically on
// terms and searchable text.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Apply returns the problems matching cfg, preserving input order.
func Apply(problems []problem.Problem, cfg Config) []problem.Problem {
	var result []problem.Problem
	for _, p := range problems {
		if Matches(p, cfg) {
			result = append(result, p)
		}
	}
	return result
}
