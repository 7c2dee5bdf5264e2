// Package integration runs the same persistence scenarios against every
// backend adapter.
package integration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/taskpad/internal/persister"
	"github.com/mesh-intelligence/taskpad/pkg/types"
)

// backends lists every adapter the scenario matrix runs against. Each
// entry maps a name to the file the adapter persists to inside the test's
// temp directory. Mongo is excluded: it needs a running server.
var backends = []struct {
	name     string
	fileName string
}{
	{name: "csv", fileName: "tasks.csv"},
	{name: "json", fileName: "tasks.json"},
	{name: "xml", fileName: "tasks.xml"},
	{name: "sqlite", fileName: "tasks.db"},
}

// setupPersister resolves a fresh adapter in an isolated temp directory.
func setupPersister(t *testing.T, fileName string) types.Persister {
	t.Helper()
	p, err := persister.Resolve(filepath.Join(t.TempDir(), fileName))
	require.NoError(t, err)
	return p
}

// mustTasks loads the persisted tasks or fails the test.
func mustTasks(t *testing.T, p types.Persister) []types.Task {
	t.Helper()
	tasks, err := p.Tasks()
	require.NoError(t, err)
	return tasks
}

// mustCount returns the persisted task count or fails the test.
func mustCount(t *testing.T, p types.Persister) int {
	t.Helper()
	n, err := p.Count()
	require.NoError(t, err)
	return n
}
