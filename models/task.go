package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Priority of a task. Stored as its lowercase name.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Rank maps a priority to its ordinal so priorities compare numerically
// (urgent > high > medium > low). Unknown values rank below low.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

// Valid reports whether p is one of the four known priorities.
func (p Priority) Valid() bool {
	return p.Rank() > 0
}

// Subtask is a checklist entry owned by exactly one task. It has no
// independent persistence; the owning task's array is replaced wholesale.
type Subtask struct {
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	IsCompleted bool   `bson:"isCompleted" json:"isCompleted"`
}

// Task is a user-owned unit of work. Category is a name reference into the
// owning user's categories, not a foreign key.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"userId" json:"userId"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Priority    Priority           `bson:"priority" json:"priority"`
	DueDate     *time.Time         `bson:"dueDate,omitempty" json:"dueDate,omitempty"`
	IsCompleted bool               `bson:"isCompleted" json:"isCompleted"`
	Subtasks    []Subtask          `bson:"subtasks" json:"subtasks"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Overdue reports whether the task has a due date strictly before now and is
// not completed.
func (t Task) Overdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && !t.IsCompleted
}

// Category is a named, colored grouping label owned by one user. Tasks
// reference it by name.
type Category struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"userId" json:"userId"`
	Name      string             `bson:"name" json:"name"`
	Color     string             `bson:"color" json:"color"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// SubtaskInput is a subtask as submitted by a client; the id may be absent.
type SubtaskInput struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
}

// SanitizeSubtasks trims titles, drops entries whose trimmed title is empty
// and mints ids for entries that arrived without one.
func SanitizeSubtasks(in []SubtaskInput) []Subtask {
	out := make([]Subtask, 0, len(in))
	for _, s := range in {
		title := strings.TrimSpace(s.Title)
		if title == "" {
			continue
		}
		id := s.ID
		if id == "" {
			id = uuid.NewString()
		}
		out = append(out, Subtask{ID: id, Title: title, IsCompleted: s.IsCompleted})
	}
	return out
}

// ParseDueDate accepts either a full RFC 3339 timestamp or a bare
// yyyy-mm-dd date.
func ParseDueDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
