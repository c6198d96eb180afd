package transfer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/nibzard/tasks-go/internal/task"
)

func sampleTasks() []task.Task {
	return []task.Task{
		{ID: 1, Description: "Buy milk", Deadline: task.Ptr("2024-01-01"), Status: task.StatusPending, Priority: task.Ptr("low")},
		{ID: 2, Description: "File taxes", Status: task.StatusCompleted},
	}
}

func TestExportJSONThenDecode(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, sampleTasks(), FormatJSON); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if strings.Contains(buf.String(), `"deadline": null`) {
		t.Errorf("unset deadline should be omitted, got:\n%s", buf.String())
	}

	doc, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if doc.SchemaVersion != SchemaVersion {
		t.Errorf("SchemaVersion: got %d, want %d", doc.SchemaVersion, SchemaVersion)
	}

	drafts := doc.Drafts()
	if len(drafts) != 2 {
		t.Fatalf("Drafts: got %d, want 2", len(drafts))
	}
	if drafts[0].Description != "Buy milk" || task.Value(drafts[0].Deadline) != "2024-01-01" || task.Value(drafts[0].Priority) != "low" {
		t.Errorf("first draft: got %#v", drafts[0])
	}
	if drafts[1].Deadline != nil || drafts[1].Status != task.StatusCompleted {
		t.Errorf("second draft: got %#v", drafts[1])
	}
}

func TestExportYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, sampleTasks(), FormatYAML); err != nil {
		t.Fatalf("Export: %v", err)
	}

	var doc Document
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("yaml.Unmarshal: %v\n%s", err, buf.String())
	}
	if len(doc.Tasks) != 2 || doc.Tasks[1].Description != "File taxes" {
		t.Errorf("unexpected yaml document: %#v", doc)
	}
	if doc.Tasks[1].Priority != nil {
		t.Errorf("unset priority should stay unset, got %q", *doc.Tasks[1].Priority)
	}
}

func TestExportEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Export(&buf, nil, FormatJSON); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(buf.String(), `"tasks": []`) {
		t.Errorf("expected empty tasks array, got:\n%s", buf.String())
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"YAML", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"", FormatJSON, false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q): got %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantPath string
	}{
		{"not json", `{`, ""},
		{"missing tasks", `{"schema_version": 1}`, ""},
		{"wrong version", `{"schema_version": 2, "tasks": []}`, "schema_version"},
		{"missing description", `{"schema_version": 1, "tasks": [{"status": "pending"}]}`, "tasks[0]"},
		{"blank description", `{"schema_version": 1, "tasks": [{"description": "  "}]}`, "tasks[0].description"},
		{"unknown field", `{"schema_version": 1, "tasks": [{"description": "a", "owner": "me"}]}`, "tasks[0]"},
		{"numeric deadline", `{"schema_version": 1, "tasks": [{"description": "a", "deadline": 20240101}]}`, "tasks[0].deadline"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			var ve *task.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Decode: want *task.ValidationError, got %v", err)
			}
			if tt.wantPath != "" && !strings.Contains(err.Error(), tt.wantPath) {
				t.Errorf("error %q does not mention %q", err, tt.wantPath)
			}
		})
	}
}

func TestDecodeAcceptsNulls(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"schema_version": 1, "tasks": [{"description": "a", "deadline": null, "priority": null}]}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	d := doc.Drafts()[0].Normalize()
	if d.Deadline != nil || d.Priority != nil || d.Status != task.StatusPending {
		t.Errorf("unexpected draft: %#v", d)
	}
}

func TestJSONPointerToPath(t *testing.T) {
	tests := map[string]string{
		"":                  "",
		"/":                 "",
		"/tasks":            "tasks",
		"/tasks/3/deadline": "tasks[3].deadline",
		"#/schema_version":  "schema_version",
		"/tasks/0/a~1b":     "tasks[0].a/b",
	}
	for in, want := range tests {
		if got := jsonPointerToPath(in); got != want {
			t.Errorf("jsonPointerToPath(%q): got %q, want %q", in, got, want)
		}
	}
}
