// Package localstore is the local, file-backed task list: a separate bounded
// context from the server-backed tasks with its own, smaller data model.
// Access is single-threaded, synchronous read-modify-write.
package localstore

import "time"

// Priority of a local task. Note: no "urgent" tier here.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Status of a local task on the board.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// ColorTag is the card color on the board.
type ColorTag string

const (
	ColorRed   ColorTag = "red"
	ColorAmber ColorTag = "amber"
	ColorGreen ColorTag = "green"
	ColorBlue  ColorTag = "blue"
	ColorGray  ColorTag = "gray"
)

// Subtask is a checklist entry of a local task.
type Subtask struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// Task is a locally stored task. It deliberately diverges from the server
// model (status enum instead of a completion flag, colorTag instead of a
// category reference) and is never unified with it.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    Priority  `json:"priority"`
	ColorTag    ColorTag  `json:"colorTag"`
	DueDate     string    `json:"dueDate,omitempty"` // yyyy-mm-dd
	Status      Status    `json:"status"`
	Subtasks    []Subtask `json:"subtasks"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
