// Package filter is the pure task filter/sort engine: it derives an ordered
// view over a user's task collection without touching the input.
package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/pveldman/tasklane/models"
)

// All is the sentinel that deactivates the category, status and priority
// predicates.
const All = "all"

// Status filter values.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusOverdue   = "overdue"
)

// Sort keys.
const (
	SortCreatedAt = "createdAt"
	SortUpdatedAt = "updatedAt"
	SortDueDate   = "dueDate"
	SortTitle     = "title"
	SortPriority  = "priority"
)

// Sort orders.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Spec is a filter specification: the set of active predicates plus the sort
// key and order. Zero or sentinel values deactivate a predicate.
type Spec struct {
	Search    string     `json:"search"`
	Category  string     `json:"category"`
	Status    string     `json:"status"`
	Priority  string     `json:"priority"`
	DueFrom   *time.Time `json:"dueDateFrom,omitempty"`
	DueTo     *time.Time `json:"dueDateTo,omitempty"`
	SortBy    string     `json:"sortBy"`
	SortOrder string     `json:"sortOrder"`
}

// Apply returns the ordered subset of tasks matching every active predicate
// of spec. The input slice is never mutated; ties keep their input order.
func Apply(tasks []models.Task, spec Spec, now time.Time) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if matches(t, spec, now) {
			out = append(out, t)
		}
	}
	sortTasks(out, spec)
	return out
}

func matches(t models.Task, spec Spec, now time.Time) bool {
	if spec.Search != "" {
		q := strings.ToLower(spec.Search)
		if !strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			return false
		}
	}

	if spec.Category != "" && spec.Category != All && t.Category != spec.Category {
		return false
	}

	switch spec.Status {
	case StatusCompleted:
		if !t.IsCompleted {
			return false
		}
	case StatusPending:
		if t.IsCompleted {
			return false
		}
	case StatusOverdue:
		if !t.Overdue(now) {
			return false
		}
	}

	if spec.Priority != "" && spec.Priority != All && string(t.Priority) != spec.Priority {
		return false
	}

	if spec.DueFrom != nil || spec.DueTo != nil {
		if t.DueDate == nil {
			return false
		}
		if spec.DueFrom != nil && t.DueDate.Before(StartOfDay(*spec.DueFrom)) {
			return false
		}
		if spec.DueTo != nil && t.DueDate.After(endOfDay(*spec.DueTo)) {
			return false
		}
	}

	return true
}

func sortTasks(tasks []models.Task, spec Spec) {
	less := lessFunc(spec.SortBy)
	if spec.SortOrder == OrderAsc {
		sort.SliceStable(tasks, func(i, j int) bool { return less(tasks[i], tasks[j]) })
		return
	}
	sort.SliceStable(tasks, func(i, j int) bool { return less(tasks[j], tasks[i]) })
}

func lessFunc(sortBy string) func(a, b models.Task) bool {
	switch sortBy {
	case SortTitle:
		return func(a, b models.Task) bool {
			return strings.ToLower(a.Title) < strings.ToLower(b.Title)
		}
	case SortDueDate:
		// A missing due date sorts as the zero instant, so undated tasks
		// come first ascending and last descending.
		return func(a, b models.Task) bool {
			return dueOrZero(a).Before(dueOrZero(b))
		}
	case SortPriority:
		return func(a, b models.Task) bool {
			return a.Priority.Rank() < b.Priority.Rank()
		}
	case SortUpdatedAt:
		return func(a, b models.Task) bool {
			return a.UpdatedAt.Before(b.UpdatedAt)
		}
	default: // createdAt
		return func(a, b models.Task) bool {
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}
}

func dueOrZero(t models.Task) time.Time {
	if t.DueDate == nil {
		return time.Time{}
	}
	return *t.DueDate
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
