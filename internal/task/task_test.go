package task

import (
	"errors"
	"strings"
	"testing"
)

func TestDraftValidate(t *testing.T) {
	tests := []struct {
		name    string
		draft   Draft
		wantErr bool
	}{
		{"valid", Draft{Description: "Buy milk"}, false},
		{"empty description", Draft{}, true},
		{"whitespace description", Draft{Description: "   "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if ve.Field != "description" {
				t.Errorf("Field: got %q, want description", ve.Field)
			}
		})
	}
}

func TestDraftNormalize(t *testing.T) {
	blank := ""
	d := Draft{Description: "x", Deadline: &blank, Priority: Ptr("low")}.Normalize()

	if d.Status != StatusPending {
		t.Errorf("Status: got %q, want %q", d.Status, StatusPending)
	}
	if d.Deadline != nil {
		t.Errorf("Deadline: got %q, want nil", *d.Deadline)
	}
	if d.Priority == nil || *d.Priority != "low" {
		t.Errorf("Priority: got %v, want low", d.Priority)
	}

	d = Draft{Description: "x", Status: StatusCompleted}.Normalize()
	if d.Status != StatusCompleted {
		t.Errorf("Status: got %q, want %q", d.Status, StatusCompleted)
	}
}

func TestPatchColumns(t *testing.T) {
	blank := "  "
	tests := []struct {
		name  string
		patch Patch
		want  []string
	}{
		{"empty", Patch{}, nil},
		{"all blank", Patch{Description: &blank, Deadline: &blank, Status: &blank, Priority: &blank}, nil},
		{"status only", Patch{Status: Ptr("completed")}, []string{"status"}},
		{"mixed", Patch{Description: Ptr("d"), Deadline: &blank, Priority: Ptr("high")}, []string{"description", "priority"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols := tt.patch.Columns()
			var got []string
			for _, c := range cols {
				got = append(got, c.Column)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Columns(): got %v, want %v", got, tt.want)
			}
			if tt.patch.Empty() != (len(tt.want) == 0) {
				t.Errorf("Empty(): got %v, want %v", tt.patch.Empty(), len(tt.want) == 0)
			}
		})
	}
}

func TestTaskString(t *testing.T) {
	task := Task{ID: 1, Description: "Buy milk", Deadline: Ptr("2024-01-01"), Status: StatusPending}
	got := task.String()
	want := "ID: 1, Description: Buy milk, Deadline: 2024-01-01, Status: pending, Priority: -"
	if got != want {
		t.Errorf("String(): got %q, want %q", got, want)
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want int
	}{
		{"clean", Task{Description: "a", Deadline: Ptr("2024-02-29"), Status: StatusPending, Priority: Ptr("high")}, 0},
		{"bad date", Task{Description: "a", Deadline: Ptr("tomorrow"), Status: StatusPending}, 1},
		{"impossible date", Task{Description: "a", Deadline: Ptr("2023-02-30"), Status: StatusCompleted}, 1},
		{"odd status", Task{Description: "a", Status: "doing"}, 1},
		{"odd priority", Task{Description: "a", Status: StatusPending, Priority: Ptr("urgent")}, 1},
		{"everything odd", Task{Description: "a", Deadline: Ptr("x"), Status: "y", Priority: Ptr("z")}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(tt.task)
			if len(got) != tt.want {
				t.Errorf("Check(): got %d warnings %v, want %d", len(got), got, tt.want)
			}
		})
	}
}

func TestCheckPatchIgnoresUnsetStatus(t *testing.T) {
	if got := CheckPatch(Patch{Description: Ptr("new")}); len(got) != 0 {
		t.Errorf("CheckPatch(): got %v, want no warnings", got)
	}
	if got := CheckPatch(Patch{Status: Ptr("archived")}); len(got) != 1 {
		t.Errorf("CheckPatch(): got %v, want 1 warning", got)
	}
}
