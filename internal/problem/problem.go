// Package problem defines the diagnostic record model and its JSON loader.
package problem

import "encoding/json"

// Problem is one diagnostic entry from an editor's problems export.
// It is immutable once loaded. The raw source element is retained verbatim
// so JSON output reproduces fields the tool never interprets.
type Problem struct {
	Resource        string
	Message         string
	StartLineNumber int
	Severity        Severity

	raw json.RawMessage
}

// MarshalJSON re-emits the original input element, passthrough fields
// included. Problems constructed in code (no source element) marshal just
// the required fields.
func (p Problem) MarshalJSON() ([]byte, error) {
	if p.raw != nil {
		return p.raw, nil
	}
	return json.Marshal(map[string]any{
		"resource":        p.Resource,
		"message":         p.Message,
		"startLineNumber": p.StartLineNumber,
	})
}
