package types

import "errors"

// Persister operation errors.
var (
	ErrMustBeChecked  = errors.New("task must be checked before dropping")
	ErrSameTarget     = errors.New("source and destination are the same")
	ErrSourceMissing  = errors.New("source has no tasks to copy")
	ErrTargetOccupied = errors.New("destination already has tasks")
	ErrTargetMissing  = errors.New("persister does not exist; add a task first")
)

// Persister is the uniform contract every storage backend satisfies.
// File backends implement it by whole-file rewrite; database backends by
// incremental statements. Callers resolve a Persister from a path or
// connection string, load a Todo, apply one mutation, and persist back
// through the same instance.
type Persister interface {
	// String returns the path or connection string identifying the target.
	String() string

	// Exists reports whether the backend target exists.
	Exists() bool

	// Create initializes an empty backend target (default file content or
	// table schema).
	Create() error

	// Count returns the number of persisted tasks, 0 if the target does
	// not exist.
	Count() (int, error)

	// Tasks materializes the persisted content into domain tasks. Fails
	// with a backend-specific decode error on structurally invalid
	// content; malformed records are never silently dropped.
	Tasks() ([]Task, error)

	// Read returns the raw record view: file lines for file backends,
	// canonical task lines for databases. Used for diagnostics and
	// cross-backend equality checks.
	Read() ([]string, error)

	// Save persists the Todo. File backends replace the whole file.
	// Database backends are asymmetric: see the Orm documentation.
	Save(todo *Todo) error

	// Replace makes the Todo the authoritative content, discarding
	// whatever was stored before.
	Replace(todo *Todo) error

	// Edit applies one targeted action scoped to ids.
	Edit(todo *Todo, ids []uint32, action Action) error

	// Clean removes all records but keeps the target itself.
	Clean() error

	// Remove deletes the target entirely (file or table).
	Remove() error
}

// FilePersister is the capability set of a single file format adapter.
// The file.File wrapper lifts it to the full Persister contract.
type FilePersister interface {
	// Path returns the file location.
	Path() string

	// Default returns the bytes written to initialize an empty file.
	Default() string

	// Read returns the non-empty lines of the file.
	Read() ([]string, error)

	// Write replaces the file content with the serialized Todo.
	Write(todo *Todo) error

	// Tasks deserializes the file content into domain tasks.
	Tasks() ([]Task, error)
}

// DBPersister is the capability set of a database adapter. The db.Orm
// wrapper lifts it to the full Persister contract.
type DBPersister interface {
	// Conn returns the connection string.
	Conn() string

	// Exists reports whether the tasks table or collection exists.
	Exists() bool

	// Count returns the number of stored rows, 0 if the table or
	// collection does not exist.
	Count() (int, error)

	// Create initializes the tasks table or collection.
	Create() error

	// Select returns every stored row rendered as a canonical task line.
	Select() ([]string, error)

	// Tasks returns every stored row as a domain task.
	Tasks() ([]Task, error)

	// Insert appends every task of the Todo.
	Insert(todo *Todo) error

	// Update applies a non-drop action as a native statement scoped to ids.
	Update(todo *Todo, ids []uint32, action Action) error

	// Delete removes the rows matching ids.
	Delete(ids []uint32) error

	// Clean removes all rows but keeps the table or collection.
	Clean() error

	// Drop deletes the table or collection (and its backing file, for
	// file-backed engines).
	Drop() error

	// Close releases the connection held for the adapter's lifetime.
	Close() error
}
