package output

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/probsift/probsift/internal/problem"
)

// Space the message column leaves for the other columns, and the narrowest
// message column worth rendering.
const (
	messageReserve  = 50
	minMessageWidth = 40
)

// ProblemList implements Formatter for filtered diagnostic records.
// Input order is preserved in every format; filtering never reorders.
type ProblemList struct {
	Problems []problem.Problem
	// Wide disables resource shortening and message truncation.
	Wide bool
	// TermWidth is the terminal width used to size the message column in
	// text mode. Zero means no terminal, leaving messages untruncated.
	TermWidth int
}

// FormatText returns kubectl-style table output with aligned columns.
// Header: RESOURCE, LINE, SEVERITY, MESSAGE. Empty list renders as "".
func (l *ProblemList) FormatText() string {
	if len(l.Problems) == 0 {
		return ""
	}

	msgWidth := 0
	if !l.Wide && l.TermWidth > 0 {
		msgWidth = l.TermWidth - messageReserve
		if msgWidth < minMessageWidth {
			msgWidth = minMessageWidth
		}
	}

	tw := NewTableWriter()
	tw.Header("RESOURCE", "LINE", "SEVERITY", "MESSAGE")

	for _, p := range l.Problems {
		resource := p.Resource
		if !l.Wide {
			resource = shortenResource(resource)
		}

		severity := p.Severity.String()
		if severity == "" {
			severity = "-"
		}

		tw.Row(
			resource,
			strconv.Itoa(p.StartLineNumber),
			severity,
			Truncate(p.Message, msgWidth),
		)
	}

	return tw.String()
}

// FormatJSON returns JSON array output. Each element re-emits the original
// record verbatim, pass-through fields included.
func (l *ProblemList) FormatJSON() ([]byte, error) {
	if len(l.Problems) == 0 {
		return []byte("[]"), nil
	}
	return json.MarshalIndent(l.Problems, "", "  ")
}

// FormatCount returns the number of surviving records, nothing else.
func (l *ProblemList) FormatCount() string {
	return strconv.Itoa(len(l.Problems))
}

// shortenResource trims a resource to parent/file for text display, or to
// just the filename when there is no grandparent directory. JSON output
// always carries the full path.
func shortenResource(resource string) string {
	pos := strings.LastIndexByte(resource, '/')
	if pos < 0 {
		return resource
	}
	if parent := strings.LastIndexByte(resource[:pos], '/'); parent >= 0 {
		return resource[parent+1:]
	}
	return resource[pos+1:]
}
