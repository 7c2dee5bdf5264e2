package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Task state transition errors.
var (
	ErrAlreadyChecked   = errors.New("task is already checked")
	ErrAlreadyUnchecked = errors.New("task is already unchecked")
	ErrMalformedLine    = errors.New("malformed task line")
)

// Task is the core unit of task management. Its canonical textual form is
// "id,content,priority,checked", with booleans rendered as true/false.
type Task struct {
	ID       uint32   `json:"id"`
	Content  string   `json:"content"`
	Priority Priority `json:"priority"`
	Checked  bool     `json:"checked"`
}

// NewTask builds a Task from explicit fields.
func NewTask(id uint32, content string, priority Priority, checked bool) Task {
	return Task{ID: id, Content: content, Priority: priority, Checked: checked}
}

// ParseTask builds a Task from its canonical line form. The priority and
// checked fields are anchored at the tail, so content may itself contain
// commas. A malformed id is a fatal input error; a missing priority
// defaults to med and a missing checked flag defaults to false.
func ParseTask(line string) (Task, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 2 {
		return Task{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}

	id64, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return Task{}, fmt.Errorf("%w: id %q must be a natural number", ErrMalformedLine, parts[0])
	}

	task := Task{ID: uint32(id64), Priority: PriorityMed}

	switch len(parts) {
	case 2:
		task.Content = strings.TrimSpace(parts[1])
	case 3:
		task.Content = strings.TrimSpace(parts[1])
		task.Priority = ParsePriority(parts[2])
	default:
		task.Content = strings.TrimSpace(strings.Join(parts[1:len(parts)-2], ","))
		task.Priority = ParsePriority(parts[len(parts)-2])
		checked := strings.TrimSpace(parts[len(parts)-1])
		task.Checked = checked == "true" || checked == "1"
	}

	return task, nil
}

// Line renders the Task into its canonical textual form.
func (t *Task) Line() string {
	return fmt.Sprintf("%d,%s,%s,%t", t.ID, t.Content, t.Priority, t.Checked)
}

// Check marks the task as checked.
// Returns ErrAlreadyChecked if it already is.
func (t *Task) Check() error {
	if t.Checked {
		return fmt.Errorf("task %d: %w", t.ID, ErrAlreadyChecked)
	}
	t.Checked = true
	return nil
}

// Uncheck marks the task as unchecked.
// Returns ErrAlreadyUnchecked if it already is.
func (t *Task) Uncheck() error {
	if !t.Checked {
		return fmt.Errorf("task %d: %w", t.ID, ErrAlreadyUnchecked)
	}
	t.Checked = false
	return nil
}

// priorityColors maps each priority to its display color.
var priorityColors = map[Priority]lipgloss.Color{
	PriorityHigh: lipgloss.Color("1"),
	PriorityMed:  lipgloss.Color("3"),
	PriorityLow:  lipgloss.Color("4"),
	PriorityNone: lipgloss.Color("7"),
}

// Render returns the task styled for terminal display: bold, colored by
// priority, struck through when checked.
func (t *Task) Render() string {
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(priorityColors[ParsePriority(string(t.Priority))]).
		Strikethrough(t.Checked)

	return style.Render(fmt.Sprintf("Task(%d: %s)", t.ID, t.Content))
}
