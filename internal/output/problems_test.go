package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/probsift/probsift/internal/problem"
)

func loadProblems(t *testing.T, data string) []problem.Problem {
	t.Helper()
	problems, err := problem.Load([]byte(data))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	return problems
}

func TestProblemListFormatText(t *testing.T) {
	problems := loadProblems(t, `[
		{"resource":"/src/app/a.ts","message":"deprecated API","startLineNumber":5,"severity":8},
		{"resource":"b.ts","message":"unused variable","startLineNumber":12}
	]`)

	list := &ProblemList{Problems: problems}
	got := list.FormatText()

	lines := strings.Split(got, "\n")
	if len(lines) != 3 { // 1 header + 2 rows
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), got)
	}

	for _, col := range []string{"RESOURCE", "LINE", "SEVERITY", "MESSAGE"} {
		if !strings.Contains(lines[0], col) {
			t.Errorf("header missing column %q: %q", col, lines[0])
		}
	}

	// Resource shortened to parent/file, severity rendered, order preserved
	if !strings.Contains(lines[1], "app/a.ts") || !strings.Contains(lines[1], "5") ||
		!strings.Contains(lines[1], "error") || !strings.Contains(lines[1], "deprecated API") {
		t.Errorf("first row = %q", lines[1])
	}
	if strings.Contains(lines[1], "/src/app/a.ts") {
		t.Errorf("resource not shortened: %q", lines[1])
	}

	// Missing severity renders as "-"
	if !strings.Contains(lines[2], "b.ts") || !strings.Contains(lines[2], "-") {
		t.Errorf("second row = %q", lines[2])
	}
}

func TestProblemListFormatTextEmpty(t *testing.T) {
	list := &ProblemList{}
	if got := list.FormatText(); got != "" {
		t.Errorf("empty list = %q, want empty string", got)
	}
}

func TestProblemListTruncation(t *testing.T) {
	long := strings.Repeat("long diagnostic text ", 20)
	problems := loadProblems(t, `[
		{"resource":"/src/app/a.ts","message":"`+long+`","startLineNumber":1}
	]`)

	narrow := &ProblemList{Problems: problems, TermWidth: 100}
	got := narrow.FormatText()
	if strings.Contains(got, long) {
		t.Error("message not truncated at TermWidth 100")
	}
	if !strings.Contains(got, "...") {
		t.Error("truncated message missing ellipsis")
	}

	wide := &ProblemList{Problems: problems, TermWidth: 100, Wide: true}
	if got := wide.FormatText(); !strings.Contains(got, long) {
		t.Error("wide mode must not truncate messages")
	}
	if got := wide.FormatText(); !strings.Contains(got, "/src/app/a.ts") {
		t.Error("wide mode must keep the full resource path")
	}

	noTerm := &ProblemList{Problems: problems}
	if got := noTerm.FormatText(); !strings.Contains(got, long) {
		t.Error("zero TermWidth must not truncate messages")
	}
}

func TestProblemListFormatJSONRoundTrip(t *testing.T) {
	problems := loadProblems(t, `[
		{"resource":"a.ts","message":"deprecated API","startLineNumber":5,"source":"ts","severity":4},
		{"resource":"b.ts","message":"unused","startLineNumber":2}
	]`)

	list := &ProblemList{Problems: problems}
	data, err := list.FormatJSON()
	if err != nil {
		t.Fatalf("FormatJSON error: %v", err)
	}

	var parsed []map[string]any
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("got %d elements, want 2", len(parsed))
	}

	first := parsed[0]
	if first["resource"] != "a.ts" || first["message"] != "deprecated API" {
		t.Errorf("required fields lost: %v", first)
	}
	if first["startLineNumber"] != float64(5) {
		t.Errorf("startLineNumber = %v, want 5", first["startLineNumber"])
	}
	// Pass-through fields survive re-emission
	if first["source"] != "ts" || first["severity"] != float64(4) {
		t.Errorf("pass-through fields lost: %v", first)
	}

	if parsed[1]["resource"] != "b.ts" {
		t.Errorf("order not preserved: %v", parsed[1])
	}
}

func TestProblemListFormatJSONEmpty(t *testing.T) {
	list := &ProblemList{}
	data, err := list.FormatJSON()
	if err != nil {
		t.Fatalf("FormatJSON error: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("empty list JSON = %q, want []", data)
	}
}

func TestProblemListFormatCount(t *testing.T) {
	problems := loadProblems(t, `[
		{"resource":"a.ts","message":"m","startLineNumber":1},
		{"resource":"b.ts","message":"m","startLineNumber":2}
	]`)

	tests := []struct {
		name string
		list *ProblemList
		want string
	}{
		{"two records", &ProblemList{Problems: problems}, "2"},
		{"empty", &ProblemList{}, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.list.FormatCount(); got != tt.want {
				t.Errorf("FormatCount() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatOutput(t *testing.T) {
	problems := loadProblems(t, `[{"resource":"a.ts","message":"m","startLineNumber":1}]`)
	list := &ProblemList{Problems: problems}

	text, err := FormatOutput(list, FormatText)
	if err != nil || !strings.Contains(text, "RESOURCE") {
		t.Errorf("FormatText output = %q, err = %v", text, err)
	}

	jsonOut, err := FormatOutput(list, FormatJSON)
	if err != nil || !strings.HasPrefix(jsonOut, "[") {
		t.Errorf("FormatJSON output = %q, err = %v", jsonOut, err)
	}

	count, err := FormatOutput(list, FormatCount)
	if err != nil || count != "1" {
		t.Errorf("FormatCount output = %q, err = %v", count, err)
	}
}

func TestShortenResource(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/src/app/a.ts", "app/a.ts"},
		{"app/a.ts", "a.ts"},
		{"a.ts", "a.ts"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := shortenResource(tt.in); got != tt.want {
			t.Errorf("shortenResource(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
