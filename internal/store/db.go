package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/duckdb/duckdb-go/v2"
)

const dbFilename = "tracker.duckdb"

// NewDB opens a DuckDB database. ":memory:" or "" opens an in-memory database,
// anything else is treated as a file path.
func NewDB(path string) (*sql.DB, error) {
	if path == "" {
		path = ":memory:"
	}
	dsn := path
	if path == ":memory:" {
		dsn = ""
	}

	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb at %q: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping duckdb at %q: %w", path, err)
	}

	// an in-memory database lives as long as its connection
	if dsn == "" {
		db.SetMaxOpenConns(1)
	}

	return db, nil
}

// DBPath returns the database file inside dataFolder, or ":memory:" when no folder is set
// or the folder is ":memory:" itself.
func DBPath(dataFolder string) (string, error) {
	if dataFolder == "" || dataFolder == ":memory:" {
		return ":memory:", nil
	}
	if err := os.MkdirAll(dataFolder, 0o750); err != nil {
		return "", fmt.Errorf("failed to create data folder %q: %w", dataFolder, err)
	}
	return filepath.Join(dataFolder, dbFilename), nil
}
