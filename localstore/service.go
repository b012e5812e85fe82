package localstore

import (
	"errors"
	"strings"
	"time"
)

// ErrTaskNotFound is returned when an id matches no stored task.
var ErrTaskNotFound = errors.New("task not found")

// Service exposes the local task operations. Every mutation is a full
// load-modify-save cycle against the backing file.
type Service struct {
	storage *Storage
	now     func() time.Time
}

// NewService returns a Service over the given storage.
func NewService(storage *Storage) *Service {
	return &Service{storage: storage, now: time.Now}
}

// List returns all stored tasks.
func (s *Service) List() []Task {
	return s.storage.Load()
}

// CreateInput is the data needed to create a local task.
type CreateInput struct {
	Title       string
	Description string
	Priority    Priority
	ColorTag    ColorTag
	DueDate     string
	Status      Status
	Subtasks    []string // titles; seeded not done
}

// Create appends a new task and returns it.
func (s *Service) Create(input CreateInput) (Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return Task{}, errors.New("title is required")
	}

	status := input.Status
	if status == "" {
		status = StatusTodo
	}
	colorTag := input.ColorTag
	if colorTag == "" {
		colorTag = ColorGray
	}
	priority := input.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	subtasks := make([]Subtask, 0, len(input.Subtasks))
	for _, st := range input.Subtasks {
		st = strings.TrimSpace(st)
		if st == "" {
			continue
		}
		subtasks = append(subtasks, Subtask{ID: GenID(), Title: st})
	}

	now := s.now()
	task := Task{
		ID:          GenID(),
		Title:       title,
		Description: input.Description,
		Priority:    priority,
		ColorTag:    colorTag,
		DueDate:     input.DueDate,
		Status:      status,
		Subtasks:    subtasks,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	tasks := s.storage.Load()
	tasks = append(tasks, task)
	if err := s.storage.Save(tasks); err != nil {
		return Task{}, err
	}
	return task, nil
}

// Patch describes a partial local-task update.
type Patch struct {
	Title       *string
	Description *string
	Priority    *Priority
	ColorTag    *ColorTag
	DueDate     *string
	Status      *Status
}

// Update applies a patch to the task with the given id and bumps updatedAt.
func (s *Service) Update(id string, patch Patch) (Task, error) {
	return s.mutate(id, func(t *Task) {
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.ColorTag != nil {
			t.ColorTag = *patch.ColorTag
		}
		if patch.DueDate != nil {
			t.DueDate = *patch.DueDate
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}
	})
}

// Remove deletes the task with the given id.
func (s *Service) Remove(id string) error {
	tasks := s.storage.Load()
	for i, t := range tasks {
		if t.ID == id {
			tasks = append(tasks[:i], tasks[i+1:]...)
			return s.storage.Save(tasks)
		}
	}
	return ErrTaskNotFound
}

// AddSubtask appends a checklist entry to the task.
func (s *Service) AddSubtask(taskID, title string) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, errors.New("subtask title is required")
	}
	return s.mutate(taskID, func(t *Task) {
		t.Subtasks = append(t.Subtasks, Subtask{ID: GenID(), Title: title})
	})
}

// ToggleSubtask flips the done flag of one checklist entry.
func (s *Service) ToggleSubtask(taskID, subtaskID string) (Task, error) {
	return s.mutate(taskID, func(t *Task) {
		for i := range t.Subtasks {
			if t.Subtasks[i].ID == subtaskID {
				t.Subtasks[i].Done = !t.Subtasks[i].Done
			}
		}
	})
}

// RemoveSubtask deletes one checklist entry.
func (s *Service) RemoveSubtask(taskID, subtaskID string) (Task, error) {
	return s.mutate(taskID, func(t *Task) {
		kept := t.Subtasks[:0]
		for _, st := range t.Subtasks {
			if st.ID != subtaskID {
				kept = append(kept, st)
			}
		}
		t.Subtasks = kept
	})
}

func (s *Service) mutate(id string, fn func(*Task)) (Task, error) {
	tasks := s.storage.Load()
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		fn(&tasks[i])
		tasks[i].UpdatedAt = s.now()
		if err := s.storage.Save(tasks); err != nil {
			return Task{}, err
		}
		return tasks[i], nil
	}
	return Task{}, ErrTaskNotFound
}
