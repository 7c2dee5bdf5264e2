package persister

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/taskpad/pkg/types"
)

// seedCSV creates a CSV target in dir populated with the sample tasks and
// returns its path.
func seedCSV(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "source.csv")
	src, err := Resolve(path)
	require.NoError(t, err)
	require.NoError(t, src.Replace(types.Sample()))
	return path
}

func TestCopyRejectsSameTarget(t *testing.T) {
	err := Copy("tasks.csv", "tasks.csv", types.Config{})
	require.ErrorIs(t, err, types.ErrSameTarget)
}

func TestCopyRejectsEmptySource(t *testing.T) {
	dir := t.TempDir()

	err := Copy(filepath.Join(dir, "empty.csv"), filepath.Join(dir, "dest.csv"), types.Config{})
	require.ErrorIs(t, err, types.ErrSourceMissing)
}

func TestCopyRejectsOccupiedDestinationWithoutForce(t *testing.T) {
	dir := t.TempDir()
	src := seedCSV(t, dir)

	dst := filepath.Join(dir, "dest.csv")
	occupied, err := Resolve(dst)
	require.NoError(t, err)
	require.NoError(t, occupied.Replace(types.Sample()))

	err = Copy(src, dst, types.Config{})
	require.ErrorIs(t, err, types.ErrTargetOccupied)
}

func TestCopyBetweenFileFormats(t *testing.T) {
	for _, ext := range []string{"json", "xml", "csv"} {
		t.Run("csv to "+ext, func(t *testing.T) {
			dir := t.TempDir()
			src := seedCSV(t, dir)
			dst := filepath.Join(dir, "dest."+ext)

			require.NoError(t, Copy(src, dst, types.Config{}))

			source, err := Resolve(src)
			require.NoError(t, err)
			dest, err := Resolve(dst)
			require.NoError(t, err)

			srcTasks, err := source.Tasks()
			require.NoError(t, err)
			dstTasks, err := dest.Tasks()
			require.NoError(t, err)
			assert.Equal(t, srcTasks, dstTasks)
		})
	}
}

func TestCopyFileToDatabase(t *testing.T) {
	dir := t.TempDir()
	src := seedCSV(t, dir)
	dst := filepath.Join(dir, "dest.db")

	require.NoError(t, Copy(src, dst, types.Config{}))

	dest, err := Resolve(dst)
	require.NoError(t, err)

	tasks, err := dest.Tasks()
	require.NoError(t, err)
	assert.Equal(t, types.Sample().Tasks, tasks)
}

func TestCopyDatabaseToFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "source.db")

	source, err := Resolve(src)
	require.NoError(t, err)
	require.NoError(t, source.Replace(types.Sample()))

	dst := filepath.Join(dir, "dest.json")
	require.NoError(t, Copy(src, dst, types.Config{}))

	dest, err := Resolve(dst)
	require.NoError(t, err)
	tasks, err := dest.Tasks()
	require.NoError(t, err)
	assert.Equal(t, types.Sample().Tasks, tasks)
}

func TestCopyIdempotentUnderForce(t *testing.T) {
	dir := t.TempDir()
	src := seedCSV(t, dir)
	dst := filepath.Join(dir, "dest.json")
	cfg := types.Config{ForceCopy: true}

	for i := 0; i < 2; i++ {
		require.NoError(t, Copy(src, dst, cfg))

		source, err := Resolve(src)
		require.NoError(t, err)
		dest, err := Resolve(dst)
		require.NoError(t, err)

		srcTasks, err := source.Tasks()
		require.NoError(t, err)
		dstTasks, err := dest.Tasks()
		require.NoError(t, err)
		assert.Equal(t, srcTasks, dstTasks)
	}
}

func TestCopyDropsSourceWhenConfigured(t *testing.T) {
	dir := t.TempDir()
	src := seedCSV(t, dir)
	dst := filepath.Join(dir, "dest.csv")

	require.NoError(t, Copy(src, dst, types.Config{DropAfterCopy: true}))

	assert.NoFileExists(t, src)

	dest, err := Resolve(dst)
	require.NoError(t, err)
	count, err := dest.Count()
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
