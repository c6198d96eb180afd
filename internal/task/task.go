// Package task defines the task record and its input shapes.
package task

import (
	"errors"
	"fmt"
	"strings"
)

// Status represents a task status.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Conventional priority values. The store does not enforce them.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// DateLayout is the expected deadline format.
const DateLayout = "2006-01-02"

// Sortable fields accepted by SortBy.
const (
	FieldDeadline = "deadline"
	FieldStatus   = "status"
	FieldPriority = "priority"
)

// SortFields returns the fields tasks can be sorted by.
func SortFields() []string {
	return []string{FieldDeadline, FieldStatus, FieldPriority}
}

// Task is a single persisted to-do item.
// Deadline and Priority are nil when unset.
type Task struct {
	ID          int64   `db:"id" json:"id" yaml:"id"`
	Description string  `db:"description" json:"description" yaml:"description"`
	Deadline    *string `db:"deadline" json:"deadline,omitempty" yaml:"deadline,omitempty"`
	Status      Status  `db:"status" json:"status" yaml:"status"`
	Priority    *string `db:"priority" json:"priority,omitempty" yaml:"priority,omitempty"`
}

// String renders the task on one line.
func (t *Task) String() string {
	return fmt.Sprintf("ID: %d, Description: %s, Deadline: %s, Status: %s, Priority: %s",
		t.ID, t.Description, display(t.Deadline), t.Status, display(t.Priority))
}

// DeadlineValue returns the deadline or "" when unset.
func (t *Task) DeadlineValue() string {
	return Value(t.Deadline)
}

// PriorityValue returns the priority or "" when unset.
func (t *Task) PriorityValue() string {
	return Value(t.Priority)
}

func display(p *string) string {
	if p == nil {
		return "-"
	}
	return *p
}

// Draft is the input for creating a task.
// A blank Status means pending; blank Deadline or Priority means unset.
type Draft struct {
	Description string
	Deadline    *string
	Status      Status
	Priority    *string
}

// Validate checks that the draft can be stored.
func (d Draft) Validate() error {
	if IsBlank(d.Description) {
		return &ValidationError{Field: "description", Err: errors.New("must not be empty")}
	}
	return nil
}

// Normalize returns a copy with defaults applied and blank optionals cleared.
func (d Draft) Normalize() Draft {
	out := d
	if IsBlank(string(out.Status)) {
		out.Status = StatusPending
	}
	out.Deadline = Optional(out.Deadline)
	out.Priority = Optional(out.Priority)
	return out
}

// Patch is a partial update. A nil or blank field is left unchanged.
type Patch struct {
	Description *string
	Deadline    *string
	Status      *string
	Priority    *string
}

// Empty reports whether the patch would change nothing.
func (p Patch) Empty() bool {
	return len(p.Columns()) == 0
}

// Columns returns the column/value pairs that the patch sets, in a fixed
// column order.
func (p Patch) Columns() []Assignment {
	var out []Assignment
	add := func(column string, v *string) {
		if v == nil || IsBlank(*v) {
			return
		}
		out = append(out, Assignment{Column: column, Value: *v})
	}
	add("description", p.Description)
	add("deadline", p.Deadline)
	add("status", p.Status)
	add("priority", p.Priority)
	return out
}

// Assignment is one column set by a Patch.
type Assignment struct {
	Column string
	Value  string
}

// ValidationError reports input that cannot be accepted.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Optional returns nil for a nil or blank value and p otherwise.
func Optional(p *string) *string {
	if p == nil || IsBlank(*p) {
		return nil
	}
	return p
}

// Ptr returns a pointer to s, or nil when s is blank.
func Ptr(s string) *string {
	if IsBlank(s) {
		return nil
	}
	return &s
}

// Value dereferences p, returning "" for nil.
func Value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
