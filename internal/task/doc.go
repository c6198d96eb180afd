// Package task defines the task record and its input shapes.
//
// A task has five fields:
//
//   - id: assigned by the store on insert, never reused or changed
//   - description: required, never empty
//   - deadline: optional, conventionally YYYY-MM-DD
//   - status: "pending" (default) or "completed"
//   - priority: optional, conventionally "high", "medium" or "low"
//
// Optional fields use a nil pointer for "no value". An empty string is
// never stored in their place.
//
// # Inputs
//
// Draft carries the fields of a new task. Patch carries a partial update:
// a field that is nil or blank leaves the stored value unchanged, so a
// Patch cannot clear a field.
//
// # Conventions
//
// Status, priority and the deadline format are conventions, not
// constraints. Check reports values outside them as warnings.
package task
