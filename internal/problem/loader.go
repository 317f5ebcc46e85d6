package problem

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ParseError reports input that is not valid JSON or not a top-level array.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return "parsing problems: " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports an array element missing a required field or carrying
// one of the wrong type. Index is the element's position in the input array.
type SchemaError struct {
	Index  int
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("problem %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("problem %d: field %q: %s", e.Index, e.Field, e.Reason)
}

// Load parses data as a JSON array of problem objects.
// Any failure aborts the whole load; there is no partial result.
func Load(data []byte) ([]Problem, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, &ParseError{Err: err}
	}
	// A top-level null unmarshals into a nil slice without error; it is
	// still not an array.
	if elems == nil {
		return nil, &ParseError{Err: errors.New("top-level value is null, not an array")}
	}

	problems := make([]Problem, 0, len(elems))
	for i, raw := range elems {
		p, err := decodeElement(i, raw)
		if err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}
	return problems, nil
}

func decodeElement(idx int, raw json.RawMessage) (Problem, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Problem{}, &SchemaError{Index: idx, Reason: "element is not a JSON object"}
	}

	resource, err := requireString(idx, fields, "resource")
	if err != nil {
		return Problem{}, err
	}
	message, err := requireString(idx, fields, "message")
	if err != nil {
		return Problem{}, err
	}
	line, err := requireLine(idx, fields, "startLineNumber")
	if err != nil {
		return Problem{}, err
	}

	return Problem{
		Resource:        resource,
		Message:         message,
		StartLineNumber: line,
		Severity:        optionalSeverity(fields["severity"]),
		raw:             bytes.Clone(raw),
	}, nil
}

func requireString(idx int, fields map[string]json.RawMessage, name string) (string, error) {
	raw, ok := fields[name]
	if !ok {
		return "", &SchemaError{Index: idx, Field: name, Reason: "required field is missing"}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", &SchemaError{Index: idx, Field: name, Reason: "expected a string"}
	}
	return s, nil
}

func requireLine(idx int, fields map[string]json.RawMessage, name string) (int, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, &SchemaError{Index: idx, Field: name, Reason: "required field is missing"}
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, &SchemaError{Index: idx, Field: name, Reason: "expected an integer"}
	}
	line, err := n.Int64()
	if err != nil {
		return 0, &SchemaError{Index: idx, Field: name, Reason: "expected an integer"}
	}
	if line < 1 {
		return 0, &SchemaError{Index: idx, Field: name, Reason: "must be >= 1"}
	}
	return int(line), nil
}

// optionalSeverity reads the pass-through severity field when present.
// It is not type-checked: anything unrecognized is SeverityUnknown.
func optionalSeverity(raw json.RawMessage) Severity {
	if raw == nil {
		return SeverityUnknown
	}
	var code int64
	if err := json.Unmarshal(raw, &code); err == nil {
		return severityFromCode(code)
	}
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return ParseSeverity(name)
	}
	return SeverityUnknown
}
