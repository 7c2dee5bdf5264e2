// Package persister resolves path-or-connection strings to concrete
// storage backends and implements the cross-backend copy operator.
package persister

import (
	"strings"

	"github.com/mesh-intelligence/taskpad/internal/db"
	"github.com/mesh-intelligence/taskpad/internal/file"
	"github.com/mesh-intelligence/taskpad/pkg/types"
)

// Resolve returns the backend for a path or connection string: anything
// carrying a scheme or an SQLite-like form is a database, everything else
// is a file. Selection is a pure string-pattern decision; it never
// inspects the target's content.
func Resolve(pathOrConn string) (types.Persister, error) {
	if strings.Contains(pathOrConn, "://") || db.IsSQLite(pathOrConn) {
		return db.Resolve(pathOrConn)
	}
	return file.Resolve(pathOrConn)
}
