package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/mesh-intelligence/taskpad/pkg/types"
)

// File lifts a format adapter to the full Persister contract. Every write
// replaces the file content wholesale; there is no incremental file
// mutation.
type File struct {
	persister types.FilePersister
}

// Compile-time interface check: File must implement Persister.
var _ types.Persister = (*File)(nil)

// New wraps an already-constructed format adapter.
func New(persister types.FilePersister) *File {
	return &File{persister: persister}
}

// Resolve builds the File for a path: the name is normalized, the format
// chosen from the extension, and missing or empty targets are populated
// with the format's default content. File resolution never fails over the
// format; an unusable path surfaces on the first operation instead.
func Resolve(path string) (*File, error) {
	path = NormalizeName(path)

	var persister types.FilePersister
	switch ParseFormat(filepath.Ext(path)) {
	case FormatJSON:
		persister = NewJSON(path)
	case FormatXML:
		persister = NewXML(path)
	default:
		persister = NewCSV(path)
	}

	f := New(persister)
	if err := f.ensureContent(); err != nil {
		return nil, err
	}
	return f, nil
}

// ensureContent populates the target with the default content when the
// file is missing or empty.
func (f *File) ensureContent() error {
	path := f.persister.Path()

	info, err := os.Stat(path)
	if err == nil && info.Size() > 0 {
		return nil
	}

	log.Info("creating file", "path", path)
	return f.Create()
}

// String returns the file path.
func (f *File) String() string {
	return f.persister.Path()
}

// Exists reports whether the file exists.
func (f *File) Exists() bool {
	_, err := os.Stat(f.persister.Path())
	return err == nil
}

// Create writes the format's default content, initializing the target.
func (f *File) Create() error {
	path := f.persister.Path()
	if err := os.WriteFile(path, []byte(f.persister.Default()), 0o644); err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	return nil
}

// Count returns the number of persisted tasks, 0 when the file is missing.
func (f *File) Count() (int, error) {
	if !f.Exists() {
		return 0, nil
	}
	tasks, err := f.persister.Tasks()
	if err != nil {
		return 0, err
	}
	return len(tasks), nil
}

// Tasks materializes the file content into domain tasks.
func (f *File) Tasks() ([]types.Task, error) {
	return f.persister.Tasks()
}

// Read returns the raw line view of the file.
func (f *File) Read() ([]string, error) {
	return f.persister.Read()
}

// Save persists the Todo as the authoritative file content.
func (f *File) Save(todo *types.Todo) error {
	return f.persister.Write(todo)
}

// Replace is Save under whole-file semantics.
func (f *File) Replace(todo *types.Todo) error {
	return f.persister.Write(todo)
}

// Edit loads the current tasks fresh, applies the in-memory mutation
// scoped to ids, and rewrites the file. The passed Todo supplies only the
// payload already resolved by the caller; the authoritative state is the
// file itself.
func (f *File) Edit(_ *types.Todo, ids []uint32, action types.Action) error {
	fresh, err := types.Load(f)
	if err != nil {
		return err
	}

	var errs []error
	switch action.Kind {
	case types.ActionCheck:
		_, errs = fresh.Check(ids)
	case types.ActionUncheck:
		_, errs = fresh.Uncheck(ids)
	case types.ActionSetContent:
		fresh.SetContent(ids, action.Content)
	case types.ActionSetPriority:
		fresh.SetPriority(ids, action.Priority)
	case types.ActionDrop:
		_, errs = fresh.Drop(ids, action.Force)
	default:
		return fmt.Errorf("unknown action %q", action.Kind)
	}
	for _, err := range errs {
		log.Warn("edit skipped a task", "action", action.Kind, "err", err)
	}

	return f.persister.Write(fresh)
}

// Clean resets the file to its default content, keeping the file itself.
func (f *File) Clean() error {
	return f.Create()
}

// Remove deletes the file entirely.
func (f *File) Remove() error {
	path := f.persister.Path()
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}
