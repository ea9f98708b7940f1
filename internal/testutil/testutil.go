package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/sorteio/api/internal/db"
)

// OpenTestDB opens a migrated SQLite database in a per-test temporary
// directory. The database is closed when the test finishes.
func OpenTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.Migrate(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
	})
	return conn
}

// SeedNames inserts values into the loose roster in order
func SeedNames(t *testing.T, conn *sql.DB, values ...string) {
	t.Helper()

	queries := db.New(conn)
	for i, value := range values {
		err := queries.CreateName(context.Background(), db.CreateNameParams{
			NameID: fmt.Sprintf("seed-%s-%d", t.Name(), i),
			Value:  value,
		})
		if err != nil {
			t.Fatalf("Failed to seed name %q: %v", value, err)
		}
	}
}
