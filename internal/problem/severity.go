package problem

import "strings"

// Severity ranks a diagnostic by importance. Editors export it either as a
// numeric marker code (8/4/2/1) or as a name; records may omit it entirely.
type Severity uint8

const (
	// SeverityUnknown is used when a record carries no recognizable severity.
	SeverityUnknown Severity = iota
	SeverityHint
	SeverityInfo
	SeverityWarning
	SeverityError
)

// Marker codes used by editor problem exports.
const (
	codeHint    = 1
	codeInfo    = 2
	codeWarning = 4
	codeError   = 8
)

func (s Severity) String() string {
	switch s {
	case SeverityHint:
		return "hint"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return ""
}

// ParseSeverity parses a severity name, case-insensitively.
// Unrecognized names map to SeverityUnknown.
func ParseSeverity(name string) Severity {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hint":
		return SeverityHint
	case "info":
		return SeverityInfo
	case "warning":
		return SeverityWarning
	case "error":
		return SeverityError
	}
	return SeverityUnknown
}

// severityFromCode maps an editor marker code to a Severity.
func severityFromCode(code int64) Severity {
	switch code {
	case codeHint:
		return SeverityHint
	case codeInfo:
		return SeverityInfo
	case codeWarning:
		return SeverityWarning
	case codeError:
		return SeverityError
	}
	return SeverityUnknown
}
