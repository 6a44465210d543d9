package testutil

import (
	"database/sql"
	"testing"

	"github.com/Drakarta/Solide-Inc/internal/db"
)

// OpenInMemoryDB opens an in-memory SQLite database and applies migrations.
// The DB is closed via t.Cleanup. A shared-cache memory database is used so
// that multiple pooled connections observe the same data.
func OpenInMemoryDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	d, err := db.Open("sqlite3", "file:"+name+"?mode=memory&cache=shared", db.Options{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}
