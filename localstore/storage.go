package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Storage reads and writes the task list as a single JSON file.
type Storage struct {
	path string
}

// NewStorage returns a Storage over the given file path.
func NewStorage(path string) *Storage {
	return &Storage{path: path}
}

// Load returns the stored task list. A missing or unreadable file yields an
// empty list rather than an error, matching a fresh install.
func (s *Storage) Load() []Task {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []Task{}
	}
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil || tasks == nil {
		return []Task{}
	}
	return tasks
}

// Save writes the task list back, creating parent directories as needed.
func (s *Storage) Save(tasks []Task) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write tasks: %w", err)
	}
	return nil
}

// GenID mints an id for tasks and subtasks.
func GenID() string {
	return uuid.NewString()
}
