package db

import "testing"

func TestOpen_AppliesMigrations(t *testing.T) {
	d, err := Open("sqlite3", "file:migrate?mode=memory&cache=shared", Options{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	for _, table := range []string{"user", "bottle", "waterdata"} {
		var n int
		if err := d.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&n); err != nil || n != 1 {
			t.Fatalf("table %s missing: n=%d err=%v", table, n, err)
		}
	}

	// Reopening is a no-op: versions are recorded in schema_migrations.
	var applied int
	if err := d.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied); err != nil || applied == 0 {
		t.Fatalf("no recorded migrations: %d %v", applied, err)
	}
}

func TestRollbackLast(t *testing.T) {
	d, err := Open("sqlite3", "file:rollback?mode=memory&cache=shared", Options{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	if err := RollbackLast(d, "sqlite3"); err != nil {
		t.Fatalf("rollback: %v", err)
	}
	var n int
	if err := d.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='user'`).Scan(&n); err != nil || n != 0 {
		t.Fatalf("user table should be dropped: n=%d err=%v", n, err)
	}
	if err := d.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&n); err != nil || n != 0 {
		t.Fatalf("ledger should be empty after rollback: n=%d err=%v", n, err)
	}

	// Rolling back an empty ledger is a no-op.
	if err := RollbackLast(d, "sqlite3"); err != nil {
		t.Fatalf("rollback on empty ledger: %v", err)
	}
}

func TestOpen_RejectsUnknownDriver(t *testing.T) {
	if _, err := Open("oracle", "whatever", Options{}); err == nil {
		t.Fatalf("expected error for unknown driver")
	}
}
