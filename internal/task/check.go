package task

import (
	"fmt"
	"time"
)

// Check returns soft warnings for values outside the usual conventions.
// None of them prevent a task from being stored.
func Check(t Task) []string {
	var warnings []string

	if t.Deadline != nil {
		if _, err := time.Parse(DateLayout, *t.Deadline); err != nil {
			warnings = append(warnings, fmt.Sprintf("deadline %q is not a YYYY-MM-DD date; due queries compare it as text", *t.Deadline))
		}
	}

	switch t.Status {
	case StatusPending, StatusCompleted:
	default:
		warnings = append(warnings, fmt.Sprintf("status %q is not one of: pending, completed", t.Status))
	}

	if t.Priority != nil {
		switch *t.Priority {
		case PriorityHigh, PriorityMedium, PriorityLow:
		default:
			warnings = append(warnings, fmt.Sprintf("priority %q is not one of: high, medium, low", *t.Priority))
		}
	}

	return warnings
}

// CheckDraft runs Check on the task a draft would produce.
func CheckDraft(d Draft) []string {
	n := d.Normalize()
	return Check(Task{
		Description: n.Description,
		Deadline:    n.Deadline,
		Status:      n.Status,
		Priority:    n.Priority,
	})
}

// CheckPatch returns warnings for the fields a patch would set.
func CheckPatch(p Patch) []string {
	t := Task{Status: StatusPending}
	for _, a := range p.Columns() {
		v := a.Value
		switch a.Column {
		case "deadline":
			t.Deadline = &v
		case "status":
			t.Status = Status(v)
		case "priority":
			t.Priority = &v
		}
	}
	return Check(t)
}
