package db

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/taskpad/pkg/types"
)

// sqliteSchema is the single tasks table every SQLite target carries.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS tasks (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    content  TEXT NOT NULL,
    priority TEXT NOT NULL,
    checked  BOOLEAN NOT NULL CHECK (checked IN (0, 1))
)`

// SQLite persists tasks in a single-table SQLite database. The connection
// is opened once at construction and held for the adapter's lifetime.
type SQLite struct {
	conn string
	path string
	db   *sql.DB
}

// Compile-time interface check: SQLite must implement DBPersister.
var _ types.DBPersister = (*SQLite)(nil)

// NewSQLite opens (and initializes, when needed) the SQLite target named
// by the connection string. An explicit sqlite:/// prefix is stripped to
// obtain the file path; ":memory:" is passed through.
func NewSQLite(conn string) (*SQLite, error) {
	path := strings.TrimPrefix(conn, sqlitePrefix)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// A pooled second connection would see a different in-memory database.
	db.SetMaxOpenConns(1)

	s := &SQLite{conn: conn, path: path, db: db}
	if !s.Exists() {
		if err := s.Create(); err != nil {
			db.Close()
			return nil, err
		}
	}
	return s, nil
}

// Conn returns the connection string.
func (s *SQLite) Conn() string {
	return s.conn
}

// Exists reports whether the tasks table exists.
func (s *SQLite) Exists() bool {
	var name string
	err := s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'tasks'",
	).Scan(&name)
	return err == nil
}

// Create initializes the tasks table.
func (s *SQLite) Create() error {
	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("creating tasks table: %w", err)
	}
	return nil
}

// Count returns the number of stored rows, 0 if the table does not exist.
func (s *SQLite) Count() (int, error) {
	if !s.Exists() {
		return 0, nil
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM tasks").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting tasks: %w", err)
	}
	return count, nil
}

// Tasks returns every stored row as a domain task, in id order.
func (s *SQLite) Tasks() ([]types.Task, error) {
	rows, err := s.db.Query("SELECT id, content, priority, checked FROM tasks ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("selecting tasks: %w", err)
	}
	defer rows.Close()

	var tasks []types.Task
	for rows.Next() {
		var (
			id       int64
			content  string
			priority string
			checked  int
		)
		if err := rows.Scan(&id, &content, &priority, &checked); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, types.NewTask(
			uint32(id), content, types.ParsePriority(priority), checked == 1,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task rows: %w", err)
	}
	return tasks, nil
}

// Select returns every stored row rendered as a canonical task line.
func (s *SQLite) Select() ([]string, error) {
	tasks, err := s.Tasks()
	if err != nil {
		return nil, err
	}

	lines := make([]string, len(tasks))
	for i := range tasks {
		lines[i] = tasks[i].Line()
	}
	return lines, nil
}

// Insert appends every task of the Todo, letting the engine assign ids.
func (s *SQLite) Insert(todo *types.Todo) error {
	for i := range todo.Tasks {
		task := &todo.Tasks[i]
		_, err := s.db.Exec(
			"INSERT INTO tasks (content, priority, checked) VALUES (?, ?, ?)",
			task.Content, task.Priority.String(), boolToInt(task.Checked),
		)
		if err != nil {
			return fmt.Errorf("inserting task: %w", err)
		}
	}
	return nil
}

// Update applies a non-insert action as a native statement scoped to ids.
// The set actions take their value from the first id-matched task of the
// passed Todo and apply it to the whole id set.
func (s *SQLite) Update(todo *types.Todo, ids []uint32, action types.Action) error {
	if action.Kind == types.ActionDrop {
		return s.Delete(ids)
	}
	if len(ids) == 0 {
		return nil
	}

	var (
		column string
		value  any
	)
	switch action.Kind {
	case types.ActionCheck:
		column, value = "checked", 1
	case types.ActionUncheck:
		column, value = "checked", 0
	case types.ActionSetContent:
		matched := todo.Get(ids)
		if len(matched) == 0 {
			return nil
		}
		column, value = "content", matched[0].Content
	case types.ActionSetPriority:
		matched := todo.Get(ids)
		if len(matched) == 0 {
			return nil
		}
		column, value = "priority", matched[0].Priority.String()
	default:
		return fmt.Errorf("unknown action %q", action.Kind)
	}

	query := fmt.Sprintf(
		"UPDATE tasks SET %s = ? WHERE id IN (%s)", column, placeholders(len(ids)),
	)
	args := append([]any{value}, idArgs(ids)...)

	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("updating tasks: %w", err)
	}
	return nil
}

// Delete removes the rows matching ids.
func (s *SQLite) Delete(ids []uint32) error {
	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf("DELETE FROM tasks WHERE id IN (%s)", placeholders(len(ids)))
	if _, err := s.db.Exec(query, idArgs(ids)...); err != nil {
		return fmt.Errorf("deleting tasks: %w", err)
	}
	return nil
}

// Clean removes all rows and resets the autoincrement counter, so the
// next insert starts again at 1. SQLite does not reset the counter on its
// own when rows are deleted.
func (s *SQLite) Clean() error {
	if _, err := s.db.Exec("DELETE FROM tasks"); err != nil {
		return fmt.Errorf("cleaning tasks table: %w", err)
	}
	return s.resetAutoincrement()
}

// resetAutoincrement zeroes the sqlite_sequence entry for the tasks
// table. The sequence table only appears after the first AUTOINCREMENT
// insert, so its absence is not an error.
func (s *SQLite) resetAutoincrement() error {
	var name string
	err := s.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'sqlite_sequence'",
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("probing sqlite_sequence: %w", err)
	}

	if _, err := s.db.Exec("UPDATE sqlite_sequence SET seq = 0 WHERE name = 'tasks'"); err != nil {
		return fmt.Errorf("resetting autoincrement: %w", err)
	}
	return nil
}

// Drop deletes the database file, or just the tasks table for an
// in-memory target.
func (s *SQLite) Drop() error {
	if s.path == ":memory:" {
		if _, err := s.db.Exec("DROP TABLE IF EXISTS tasks"); err != nil {
			return fmt.Errorf("dropping tasks table: %w", err)
		}
		return nil
	}

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", s.path, err)
	}
	if err := os.Remove(s.path); err != nil {
		return fmt.Errorf("removing %s: %w", s.path, err)
	}
	return nil
}

// Close releases the connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// placeholders returns n comma-separated SQL placeholders.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// idArgs widens ids into statement arguments.
func idArgs(ids []uint32) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = int64(id)
	}
	return args
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
