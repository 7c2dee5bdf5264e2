package file

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mesh-intelligence/taskpad/pkg/types"
)

// JSON persists tasks as a pretty-printed array of task objects.
type JSON struct {
	path string
}

// Compile-time interface check: JSON must implement FilePersister.
var _ types.FilePersister = (*JSON)(nil)

// NewJSON returns a JSON adapter for the given path.
func NewJSON(path string) *JSON {
	return &JSON{path: path}
}

// Path returns the file location.
func (j *JSON) Path() string {
	return j.path
}

// Default returns the empty array that initializes a JSON target.
func (j *JSON) Default() string {
	return "[]"
}

// Read returns the non-empty lines of the file.
func (j *JSON) Read() ([]string, error) {
	return readLines(j.path)
}

// Write replaces the file content with the serialized task array.
func (j *JSON) Write(todo *types.Todo) error {
	tasks := todo.Tasks
	if tasks == nil {
		tasks = []types.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", j.path, err)
	}
	if err := os.WriteFile(j.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", j.path, err)
	}
	return nil
}

// Tasks deserializes the task array. Structurally invalid JSON is a
// decode error, never a silent drop.
func (j *JSON) Tasks() ([]types.Task, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", j.path, err)
	}

	var tasks []types.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", j.path, err)
	}
	return tasks, nil
}
