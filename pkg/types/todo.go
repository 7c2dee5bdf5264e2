package types

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Todo is an ordered collection of tasks. Insertion order is significant
// for display and for id-collision tie-breaks. A Todo is owned exclusively
// by the caller for the duration of one command; persisters never retain
// one beyond the call that produced or consumed it.
type Todo struct {
	Tasks []Task
}

// NewTodo returns an empty Todo.
func NewTodo() *Todo {
	return &Todo{}
}

// Load materializes a Todo from a persister's current contents.
func Load(p Persister) (*Todo, error) {
	tasks, err := p.Tasks()
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	return &Todo{Tasks: tasks}, nil
}

// Get returns mutable references to every task whose id is in ids,
// preserving the Todo's own order. Unmatched ids are silently ignored.
func (t *Todo) Get(ids []uint32) []*Task {
	wanted := make(map[uint32]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var tasks []*Task
	for i := range t.Tasks {
		if wanted[t.Tasks[i].ID] {
			tasks = append(tasks, &t.Tasks[i])
		}
	}
	return tasks
}

// IDs returns the ids of every task in insertion order.
func (t *Todo) IDs() []uint32 {
	ids := make([]uint32, len(t.Tasks))
	for i := range t.Tasks {
		ids[i] = t.Tasks[i].ID
	}
	return ids
}

// Add appends a task to the collection and returns the id it was stored
// under. When the task's id collides with an existing one, the inclusive
// range [min(ids), max(ids)] is scanned ascending for the first free
// value; if every value is taken, max+1 is used. This reclaims ids freed
// by prior drops before growing past the current maximum. A reassignment
// is reported as a warning, never an error.
func (t *Todo) Add(task Task) uint32 {
	used := make(map[uint32]bool, len(t.Tasks))
	var minID, maxID uint32
	for i, existing := range t.Tasks {
		used[existing.ID] = true
		if i == 0 || existing.ID < minID {
			minID = existing.ID
		}
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}

	if used[task.ID] {
		newID := maxID + 1
		for id := minID; id <= maxID; id++ {
			if !used[id] {
				newID = id
				break
			}
		}

		log.Warn("id already used; reassigning", "old", task.ID, "new", newID)
		task.ID = newID
	}

	t.Tasks = append(t.Tasks, task)
	return task.ID
}

// Check marks the matched tasks as checked. Tasks that were already
// checked are reported in errs and skipped; the rest of the batch still
// proceeds. The returned ids are the tasks whose state actually changed.
func (t *Todo) Check(ids []uint32) (changed []uint32, errs []error) {
	for _, task := range t.Get(ids) {
		if err := task.Check(); err != nil {
			errs = append(errs, err)
			continue
		}
		changed = append(changed, task.ID)
	}
	return changed, errs
}

// Uncheck marks the matched tasks as unchecked, with the same batch
// semantics as Check.
func (t *Todo) Uncheck(ids []uint32) (changed []uint32, errs []error) {
	for _, task := range t.Get(ids) {
		if err := task.Uncheck(); err != nil {
			errs = append(errs, err)
			continue
		}
		changed = append(changed, task.ID)
	}
	return changed, errs
}

// SetContent overwrites the content of every matched task.
func (t *Todo) SetContent(ids []uint32, content string) {
	for _, task := range t.Get(ids) {
		task.Content = content
	}
}

// SetPriority overwrites the priority of every matched task.
func (t *Todo) SetPriority(ids []uint32, priority Priority) {
	for _, task := range t.Get(ids) {
		task.Priority = priority
	}
}

// Drop removes matched tasks from the collection. Without force, a
// matched task must be checked to be removed; refusals are reported in
// errs and the task is retained. With force every matched task is
// removed regardless of checked state. Unmatched tasks are always
// retained. The returned ids are the tasks that were removed.
func (t *Todo) Drop(ids []uint32, force bool) (removed []uint32, errs []error) {
	wanted := make(map[uint32]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	kept := t.Tasks[:0]
	for _, task := range t.Tasks {
		if !wanted[task.ID] {
			kept = append(kept, task)
			continue
		}
		if !force && !task.Checked {
			errs = append(errs, fmt.Errorf("task %d: %w", task.ID, ErrMustBeChecked))
			kept = append(kept, task)
			continue
		}
		removed = append(removed, task.ID)
	}
	t.Tasks = kept

	return removed, errs
}

// Sample returns a Todo populated with example data, used by the sample
// command and the adapter test matrix.
func Sample() *Todo {
	return &Todo{Tasks: []Task{
		NewTask(1, "Fix the leaking tap", PriorityLow, false),
		NewTask(2, "Write the quarterly report", PriorityMed, false),
		NewTask(3, "Call the bank", PriorityHigh, true),
		NewTask(4, "Water the plants", PriorityNone, true),
	}}
}
