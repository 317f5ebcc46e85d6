package filter

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/probsift/probsift/internal/problem"
)

// AST types for Participle grammar

// filterExpr is the root of the grammar: comma-separated items
type filterExpr struct {
	Items []*itemExpr `parser:"@@ ( ',' @@ )*"`
}

// itemExpr is either a severity constraint or an include/exclude term.
type itemExpr struct {
	Severity *severityExpr `parser:"@@"`
	Term     *termExpr     `parser:"| @@"`
}

// severityExpr represents a constraint like severity>=warning.
type severityExpr struct {
	Operator string `parser:"Severity @Operator"`
	Level    string `parser:"@Level"`
}

// termExpr represents a substring term; a leading '-' excludes.
// Level and Severity keywords are accepted as plain terms here so that
// e.g. "error" still works as an include term.
type termExpr struct {
	Exclude bool   `parser:"@'-'?"`
	Text    string `parser:"@(Term | Level | Severity)"`
}

// Build the lexer
// IMPORTANT: keyword patterns use word boundaries (\b) so that terms like
// "errors" or "severityCheck" lex as ordinary terms.
var filterLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Operator", Pattern: `>=|<=|>|<|=`},
	{Name: "Severity", Pattern: `(?i)\bseverity\b`},
	{Name: "Level", Pattern: `(?i)\bhint\b|\binfo\b|\bwarning\b|\berror\b`},
	{Name: "Minus", Pattern: `-`},
	{Name: "Term", Pattern: `[^,\s][^,]*`},
})

// Build the parser
var filterParser = participle.MustBuild[filterExpr](
	participle.Lexer(filterLexer),
	participle.Elide("Whitespace"),
)

// Parse parses a filter expression like "deprecated,-API,severity>=warning"
// into a Config. Bare items are include terms, '-'-prefixed items are
// exclude terms. Terms containing commas, starting with '-', or starting
// with a keyword followed by more words (e.g. "error in handler") cannot be
// expressed here; use the repeatable flags for those.
func Parse(expr string) (Config, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Config{}, fmt.Errorf("empty filter expression")
	}

	ast, err := filterParser.ParseString("", expr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid filter %q: %w", expr, err)
	}

	var cfg Config
	for _, item := range ast.Items {
		if item.Severity != nil {
			bound, err := severityBound(item.Severity.Operator, item.Severity.Level)
			if err != nil {
				return Config{}, err
			}
			if cfg.MinSeverity != problem.SeverityUnknown {
				return Config{}, fmt.Errorf("multiple severity constraints in %q", expr)
			}
			cfg.MinSeverity = bound
			continue
		}

		term := strings.TrimSpace(item.Term.Text)
		if item.Term.Exclude {
			cfg.ExcludeTerms = append(cfg.ExcludeTerms, term)
		} else {
			cfg.IncludeTerms = append(cfg.IncludeTerms, term)
		}
	}
	return cfg, nil
}

// severityBound normalizes an operator and level to the single lower bound
// Config can express. severity>L becomes >= the level above L;
// severity=error is the only usable equality since error is the top level.
// Upper bounds are rejected rather than silently misfiltering.
func severityBound(op, level string) (problem.Severity, error) {
	sev := problem.ParseSeverity(level) // lexer only admits known level names
	switch op {
	case ">=":
		return sev, nil
	case ">":
		if sev == problem.SeverityError {
			return 0, fmt.Errorf("no severity above %q", level)
		}
		return sev + 1, nil
	case "=":
		if sev != problem.SeverityError {
			return 0, fmt.Errorf("severity=%s cannot be expressed as a lower bound, use >=", level)
		}
		return sev, nil
	default:
		return 0, fmt.Errorf("unsupported severity operator %q", op)
	}
}
