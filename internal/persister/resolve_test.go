package persister

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/taskpad/internal/db"
	"github.com/mesh-intelligence/taskpad/internal/file"
)

func TestResolveDispatch(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   any
	}{
		{name: "csv path", target: "tasks.csv", want: &file.File{}},
		{name: "json path", target: "tasks.json", want: &file.File{}},
		{name: "xml path", target: "tasks.xml", want: &file.File{}},
		{name: "extensionless path", target: "tasks", want: &file.File{}},
		{name: "db extension", target: "tasks.db", want: &db.Orm{}},
		{name: "sqlite extension", target: "tasks.sqlite", want: &db.Orm{}},
		{name: "memory", target: ":memory:", want: &db.Orm{}},
		{name: "sqlite prefix", target: "sqlite:///tasks.db", want: &db.Orm{}},
		{name: "mongo uri", target: "mongodb://localhost:27017", want: &db.Orm{}},
		{name: "mongo srv uri", target: "mongodb+srv://cluster.example.com", want: &db.Orm{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()

			target := tt.target
			switch target {
			case ":memory:", "mongodb://localhost:27017", "mongodb+srv://cluster.example.com":
				// Not path-based; use as is.
			case "sqlite:///tasks.db":
				target = "sqlite:///" + filepath.Join(dir, "tasks.db")
			default:
				target = filepath.Join(dir, target)
			}

			p, err := Resolve(target)
			require.NoError(t, err)
			assert.IsType(t, tt.want, p)
		})
	}
}
