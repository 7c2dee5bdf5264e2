package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/taskpad/pkg/types"
)

// setupSQLite opens a file-backed SQLite adapter in a temp directory and
// closes it when the test finishes.
func setupSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteCreateOnOpen(t *testing.T) {
	s := setupSQLite(t)

	assert.True(t, s.Exists(), "the tasks table is created on first open")

	count, err := s.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSQLitePrefixStripped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.db")

	s, err := NewSQLite(sqlitePrefix + path)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, sqlitePrefix+path, s.Conn())
	assert.Equal(t, path, s.path)
	assert.True(t, s.Exists())
}

func TestSQLiteInsertAssignsIDs(t *testing.T) {
	s := setupSQLite(t)

	require.NoError(t, s.Insert(types.Sample()))

	tasks, err := s.Tasks()
	require.NoError(t, err)
	require.Len(t, tasks, 4)
	for i, task := range tasks {
		assert.Equal(t, uint32(i+1), task.ID, "the engine numbers rows from 1")
	}
	assert.Equal(t, types.Sample().Tasks, tasks, "content survives the round trip")
}

func TestSQLiteAutoincrementResetAfterClean(t *testing.T) {
	s := setupSQLite(t)

	require.NoError(t, s.Insert(types.Sample()))
	require.NoError(t, s.Clean())

	count, err := s.Count()
	require.NoError(t, err)
	require.Zero(t, count)

	one := &types.Todo{Tasks: []types.Task{types.NewTask(0, "fresh start", types.PriorityMed, false)}}
	require.NoError(t, s.Insert(one))

	tasks, err := s.Tasks()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, uint32(1), tasks[0].ID, "the autoincrement counter restarts at 1")
}

func TestSQLiteCleanBeforeAnyInsert(t *testing.T) {
	s := setupSQLite(t)

	// sqlite_sequence does not exist yet; Clean must still succeed.
	require.NoError(t, s.Clean())
}

func TestSQLiteUpdate(t *testing.T) {
	seed := func(t *testing.T) (*SQLite, *types.Todo) {
		t.Helper()
		s := setupSQLite(t)
		require.NoError(t, s.Insert(types.Sample()))
		todo, err := types.Load(New(s))
		require.NoError(t, err)
		return s, todo
	}

	t.Run("check sets the checked column", func(t *testing.T) {
		s, todo := seed(t)
		require.NoError(t, s.Update(todo, []uint32{1, 2}, types.Action{Kind: types.ActionCheck}))

		tasks, err := s.Tasks()
		require.NoError(t, err)
		assert.True(t, tasks[0].Checked)
		assert.True(t, tasks[1].Checked)
	})

	t.Run("uncheck clears the checked column", func(t *testing.T) {
		s, todo := seed(t)
		require.NoError(t, s.Update(todo, []uint32{3}, types.Action{Kind: types.ActionUncheck}))

		tasks, err := s.Tasks()
		require.NoError(t, err)
		assert.False(t, tasks[2].Checked)
		assert.True(t, tasks[3].Checked, "unscoped rows are untouched")
	})

	t.Run("set content applies the first matched value to the whole set", func(t *testing.T) {
		s, todo := seed(t)
		todo.SetContent([]uint32{2, 4}, "uniform")
		action := types.Action{Kind: types.ActionSetContent, Content: "uniform"}
		require.NoError(t, s.Update(todo, []uint32{2, 4}, action))

		tasks, err := s.Tasks()
		require.NoError(t, err)
		assert.Equal(t, "uniform", tasks[1].Content)
		assert.Equal(t, "uniform", tasks[3].Content)
		assert.NotEqual(t, "uniform", tasks[0].Content)
	})

	t.Run("set priority", func(t *testing.T) {
		s, todo := seed(t)
		todo.SetPriority([]uint32{1}, types.PriorityHigh)
		action := types.Action{Kind: types.ActionSetPriority, Priority: types.PriorityHigh}
		require.NoError(t, s.Update(todo, []uint32{1}, action))

		tasks, err := s.Tasks()
		require.NoError(t, err)
		assert.Equal(t, types.PriorityHigh, tasks[0].Priority)
	})

	t.Run("drop deletes the matching rows", func(t *testing.T) {
		s, todo := seed(t)
		require.NoError(t, s.Update(todo, []uint32{3, 4}, types.Action{Kind: types.ActionDrop}))

		tasks, err := s.Tasks()
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, uint32(1), tasks[0].ID)
		assert.Equal(t, uint32(2), tasks[1].ID)
	})

	t.Run("empty id set is a no-op", func(t *testing.T) {
		s, todo := seed(t)
		require.NoError(t, s.Update(todo, nil, types.Action{Kind: types.ActionCheck}))
	})
}

func TestSQLiteDropRemovesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tasks.db")

	s, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Insert(types.Sample()))

	require.NoError(t, s.Drop())
	assert.NoFileExists(t, path)
}

func TestSQLiteInMemoryDrop(t *testing.T) {
	s, err := NewSQLite(":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Insert(types.Sample()))
	require.NoError(t, s.Drop())

	assert.False(t, s.Exists(), "dropping an in-memory target removes the table")

	count, err := s.Count()
	require.NoError(t, err)
	assert.Zero(t, count, "a missing table counts as zero")
}
