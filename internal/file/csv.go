package file

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/mesh-intelligence/taskpad/pkg/types"
)

// csvHeader is the first line of every CSV target.
const csvHeader = "id,content,priority,checked"

// CSV persists tasks as a header line followed by one canonical task line
// per row.
type CSV struct {
	path string
}

// Compile-time interface check: CSV must implement FilePersister.
var _ types.FilePersister = (*CSV)(nil)

// NewCSV returns a CSV adapter for the given path.
func NewCSV(path string) *CSV {
	return &CSV{path: path}
}

// Path returns the file location.
func (c *CSV) Path() string {
	return c.path
}

// Default returns the header line that initializes an empty CSV target.
func (c *CSV) Default() string {
	return csvHeader + "\n"
}

// Read returns the non-empty lines of the file, header included.
func (c *CSV) Read() ([]string, error) {
	return readLines(c.path)
}

// Write replaces the file content with the header and one line per task,
// using the platform line separator.
func (c *CSV) Write(todo *types.Todo) error {
	sep := "\n"
	if runtime.GOOS == "windows" {
		sep = "\r\n"
	}

	lines := make([]string, 0, len(todo.Tasks)+1)
	lines = append(lines, csvHeader)
	for i := range todo.Tasks {
		lines = append(lines, todo.Tasks[i].Line())
	}

	content := strings.Join(lines, sep) + sep
	if err := os.WriteFile(c.path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", c.path, err)
	}
	return nil
}

// Tasks parses every line after the header into a domain task.
func (c *CSV) Tasks() ([]types.Task, error) {
	lines, err := c.Read()
	if err != nil {
		return nil, err
	}

	var tasks []types.Task
	for _, line := range lines {
		if line == csvHeader {
			continue
		}
		task, err := types.ParseTask(line)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", c.path, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// readLines returns a file's lines with carriage returns and blank lines
// stripped. Shared across the file adapters.
func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}
