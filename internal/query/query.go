// Package query answers read-only questions about the task collection.
package query

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nibzard/tasks-go/internal/task"
)

// DefaultWindow is the reminder window used when none is configured.
const DefaultWindow = 24 * time.Hour

// Reader is the part of the store the query layer reads from.
type Reader interface {
	List(ctx context.Context) ([]task.Task, error)
	ListByStatus(ctx context.Context, status task.Status) ([]task.Task, error)
	ListOrdered(ctx context.Context, field string) ([]task.Task, error)
	ListDueBetween(ctx context.Context, from, to string) ([]task.Task, error)
}

// Service runs queries against a Reader. It never writes.
type Service struct {
	r Reader
}

// New returns a query service reading from r.
func New(r Reader) *Service {
	return &Service{r: r}
}

// All returns every task in id order.
func (s *Service) All(ctx context.Context) ([]task.Task, error) {
	tasks, err := s.r.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// FilterByStatus returns tasks whose status equals status.
func (s *Service) FilterByStatus(ctx context.Context, status task.Status) ([]task.Task, error) {
	tasks, err := s.r.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("filter by status %q: %w", status, err)
	}
	return tasks, nil
}

// Search returns tasks whose description contains keyword, ignoring case.
// A blank keyword matches every task.
func (s *Service) Search(ctx context.Context, keyword string) ([]task.Task, error) {
	all, err := s.r.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", keyword, err)
	}
	return MatchDescription(all, keyword), nil
}

// MatchDescription filters tasks to those whose description contains
// keyword, ignoring case.
func MatchDescription(tasks []task.Task, keyword string) []task.Task {
	needle := strings.ToLower(keyword)
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Description), needle) {
			out = append(out, t)
		}
	}
	return out
}

// SortBy returns all tasks ordered ascending by field (deadline, status or
// priority). Unset values come first; ties keep id order.
func (s *Service) SortBy(ctx context.Context, field string) ([]task.Task, error) {
	normalized, err := ParseSortField(field)
	if err != nil {
		return nil, err
	}
	tasks, err := s.r.ListOrdered(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("sort by %s: %w", normalized, err)
	}
	return tasks, nil
}

// ParseSortField validates and normalizes a sort field name.
func ParseSortField(field string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(field))
	for _, f := range task.SortFields() {
		if normalized == f {
			return f, nil
		}
	}
	return "", &task.ValidationError{
		Field: "sort",
		Err:   fmt.Errorf("unknown field %q, must be one of: %s", field, strings.Join(task.SortFields(), ", ")),
	}
}

// DueWithin returns tasks whose deadline falls between the calendar dates
// of now and now+window, inclusive. Deadlines are compared as YYYY-MM-DD
// text; tasks without a deadline are never included.
func (s *Service) DueWithin(ctx context.Context, now time.Time, window time.Duration) ([]task.Task, error) {
	if window < 0 {
		return nil, &task.ValidationError{Field: "window", Err: errors.New("must not be negative")}
	}
	from, to := Window(now, window)
	tasks, err := s.r.ListDueBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("due within %s: %w", window, err)
	}
	return tasks, nil
}

// Window returns the inclusive date bounds used by DueWithin.
func Window(now time.Time, window time.Duration) (from, to string) {
	return now.Format(task.DateLayout), now.Add(window).Format(task.DateLayout)
}
