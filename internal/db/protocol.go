// Package db implements the database persistence backends (SQLite, Mongo)
// and the Protocol selection rules that map a connection string to one of
// them.
package db

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Protocol identifies a supported database engine.
type Protocol string

// Supported database protocols.
const (
	ProtocolSQLite Protocol = "sqlite"
	ProtocolMongo  Protocol = "mongodb"
)

// sqlitePrefix is the explicit SQLite connection string form.
const sqlitePrefix = "sqlite:///"

// IsSQLite reports whether a connection string names an SQLite target:
// ":memory:", an explicit sqlite:/// prefix, or a path with a
// db/sqlite/sqlite3 extension.
func IsSQLite(conn string) bool {
	if conn == ":memory:" || strings.HasPrefix(conn, sqlitePrefix) {
		return true
	}

	switch strings.TrimPrefix(filepath.Ext(conn), ".") {
	case "db", "sqlite", "sqlite3":
		return true
	default:
		return false
	}
}

// ParseProtocol maps a connection string scheme to a Protocol.
// Unrecognized schemes fall back to SQLite with a warning; protocol
// selection never fails.
func ParseProtocol(scheme string) Protocol {
	switch strings.ToLower(scheme) {
	case "sqlite":
		return ProtocolSQLite
	case "mongodb", "mongodb+srv":
		return ProtocolMongo
	default:
		log.Warn("unsupported database protocol; defaulting to SQLite", "scheme", scheme)
		return ProtocolSQLite
	}
}

// Resolve builds the Orm for a connection string. SQLite-like strings are
// recognized before scheme parsing; an empty scheme is reported as an
// incorrect connection string and replaced by the default SQLite file.
func Resolve(conn string) (*Orm, error) {
	parts := strings.SplitN(conn, "://", 2)

	if parts[0] == "" {
		log.Warn("incorrect connection string; defaulting to tasks.db", "conn", conn)
		conn = "tasks.db"
		parts = []string{conn}
	}

	if len(parts) == 1 {
		// Bare path. The selector only sends SQLite-like paths here, but a
		// plain path still resolves rather than erroring.
		persister, err := NewSQLite(conn)
		if err != nil {
			return nil, err
		}
		return New(persister), nil
	}

	switch ParseProtocol(parts[0]) {
	case ProtocolMongo:
		persister, err := NewMongo(conn)
		if err != nil {
			return nil, err
		}
		return New(persister), nil
	default:
		target := conn
		if !strings.EqualFold(parts[0], "sqlite") {
			// Unknown scheme: fall back to the path component as an
			// SQLite file.
			target = parts[1]
		}
		persister, err := NewSQLite(target)
		if err != nil {
			return nil, err
		}
		return New(persister), nil
	}
}
