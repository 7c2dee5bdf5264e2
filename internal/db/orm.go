package db

import (
	"github.com/mesh-intelligence/taskpad/pkg/types"
)

// Orm lifts a database adapter to the full Persister contract with
// incremental-statement semantics.
type Orm struct {
	db types.DBPersister
}

// Compile-time interface check: Orm must implement Persister.
var _ types.Persister = (*Orm)(nil)

// New wraps an already-constructed database adapter.
func New(persister types.DBPersister) *Orm {
	return &Orm{db: persister}
}

// String returns the connection string.
func (o *Orm) String() string {
	return o.db.Conn()
}

// Exists reports whether the backend target exists.
func (o *Orm) Exists() bool {
	return o.db.Exists()
}

// Create initializes the table or collection.
func (o *Orm) Create() error {
	return o.db.Create()
}

// Count returns the number of stored tasks, 0 when the target is missing.
func (o *Orm) Count() (int, error) {
	return o.db.Count()
}

// Tasks materializes the stored rows into domain tasks.
func (o *Orm) Tasks() ([]types.Task, error) {
	return o.db.Tasks()
}

// Read returns the stored rows as canonical task lines.
func (o *Orm) Read() ([]string, error) {
	return o.db.Select()
}

// Save persists the Todo with the asymmetric database contract: when the
// target is empty the whole Todo is bulk-inserted; otherwise only the
// LAST task is inserted. This encodes the calling convention that a
// non-empty target receives a Todo differing from the stored state by
// exactly one appended task, and avoids re-inserting unchanged rows.
// Callers that need full replacement use Replace instead.
func (o *Orm) Save(todo *types.Todo) error {
	count, err := o.db.Count()
	if err != nil {
		return err
	}
	if count == 0 {
		return o.db.Insert(todo)
	}
	if len(todo.Tasks) == 0 {
		return nil
	}

	tail := types.Todo{Tasks: todo.Tasks[len(todo.Tasks)-1:]}
	return o.db.Insert(&tail)
}

// Replace makes the Todo the authoritative stored content.
func (o *Orm) Replace(todo *types.Todo) error {
	if err := o.db.Clean(); err != nil {
		return err
	}
	return o.db.Insert(todo)
}

// Edit translates the action into a native statement scoped to ids.
func (o *Orm) Edit(todo *types.Todo, ids []uint32, action types.Action) error {
	return o.db.Update(todo, ids, action)
}

// Clean removes all stored rows, keeping the target.
func (o *Orm) Clean() error {
	return o.db.Clean()
}

// Remove deletes the target entirely.
func (o *Orm) Remove() error {
	return o.db.Drop()
}

// Close releases the adapter's connection.
func (o *Orm) Close() error {
	return o.db.Close()
}
