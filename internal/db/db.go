package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	stdfs "io/fs"
	"regexp"
	"sort"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

// Options tunes the connection pool. The zero value keeps database/sql
// defaults except MaxOpenConns, which Open always bounds.
type Options struct {
	MaxOpenConns int
	MaxIdleConns int
}

// Open opens a database using the given driver ("sqlite3" or "mysql") and
// DSN, bounds the connection pool, and applies pending migrations for that
// dialect. Migrations are versioned .sql files embedded under
// internal/db/migrations/<driver> following the pattern:
//
//	0001_name.up.sql / 0001_name.down.sql
//
// Only new migrations are applied. Use RollbackLast to revert the last
// applied migration.
func Open(driver, dsn string, opts Options) (*sql.DB, error) {
	if driver == "" {
		driver = "sqlite3"
	}
	if _, ok := dialects[driver]; !ok {
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
	if dsn == "" {
		return nil, errors.New("empty dsn")
	}
	d, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	// Requests beyond the pool bound queue on checkout rather than failing.
	if opts.MaxOpenConns <= 0 {
		opts.MaxOpenConns = 10
	}
	d.SetMaxOpenConns(opts.MaxOpenConns)
	if opts.MaxIdleConns > 0 {
		d.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if err := d.Ping(); err != nil {
		_ = d.Close()
		return nil, err
	}
	if driver == "sqlite3" {
		// Pragmas for robustness. journal_mode may not be supported in some
		// contexts (e.g., in-memory); ignore errors.
		_, _ = d.Exec(`PRAGMA journal_mode=WAL`)
		if _, err := d.Exec(`PRAGMA busy_timeout=5000`); err != nil {
			_ = d.Close()
			return nil, err
		}
		if _, err := d.Exec(`PRAGMA foreign_keys=ON`); err != nil {
			_ = d.Close()
			return nil, err
		}
	}
	if err := applyMigrations(d, driver); err != nil {
		_ = d.Close()
		return nil, err
	}
	return d, nil
}

// dialects maps supported driver names to their embedded migration directory.
var dialects = map[string]string{
	"sqlite3": "migrations/sqlite3",
	"mysql":   "migrations/mysql",
}

//go:embed migrations/sqlite3/*.sql migrations/mysql/*.sql
var migrationsFS embed.FS

type migration struct {
	version  int
	name     string
	upFile   string // path inside embedded FS
	downFile string // path inside embedded FS
}

var migFileRe = regexp.MustCompile(`^([0-9]{4})_(.+)\.(up|down)\.sql$`)

func loadMigrations(driver string) (map[int]migration, error) {
	dir := dialects[driver]
	entries := map[int]migration{}
	list, err := stdfs.ReadDir(migrationsFS, dir)
	if err != nil {
		// if directory missing, just return empty set
		return entries, nil
	}
	for _, de := range list {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		m := migFileRe.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		verStr, migName, kind := m[1], m[2], m[3]
		var ver int
		if _, err := fmt.Sscanf(verStr, "%04d", &ver); err != nil {
			continue
		}
		item := entries[ver]
		item.version = ver
		item.name = migName
		p := dir + "/" + name
		if kind == "up" {
			item.upFile = p
		} else {
			item.downFile = p
		}
		entries[ver] = item
	}
	return entries, nil
}

func ensureMigrationsTable(d *sql.DB) error {
	_, err := d.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
        version INTEGER PRIMARY KEY,
        applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
    )`)
	return err
}

func appliedVersions(d *sql.DB) (map[int]bool, error) {
	if err := ensureMigrationsTable(d); err != nil {
		return nil, err
	}
	rows, err := d.Query(`SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	got := map[int]bool{}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		got[v] = true
	}
	return got, rows.Err()
}

func applyMigrations(d *sql.DB, driver string) error {
	migs, err := loadMigrations(driver)
	if err != nil {
		return err
	}
	if len(migs) == 0 {
		// nothing to do
		return nil
	}
	applied, err := appliedVersions(d)
	if err != nil {
		return err
	}
	// order versions
	versions := make([]int, 0, len(migs))
	for v := range migs {
		versions = append(versions, v)
	}
	sort.Ints(versions)
	for _, v := range versions {
		if applied[v] {
			continue
		}
		m := migs[v]
		if strings.TrimSpace(m.upFile) == "" {
			return fmt.Errorf("missing up migration for version %04d", v)
		}
		sqlText, err := migrationsFS.ReadFile(m.upFile)
		if err != nil {
			return err
		}
		if err := execStatements(d, string(sqlText)); err != nil {
			return fmt.Errorf("migration %04d failed: %w", v, err)
		}
		if _, err := d.Exec(`INSERT INTO schema_migrations(version) VALUES(?)`, v); err != nil {
			return err
		}
	}
	return nil
}

// RollbackLast rolls back the most recently applied migration, if its down
// script exists.
func RollbackLast(d *sql.DB, driver string) error {
	if d == nil {
		return errors.New("nil db")
	}
	if err := ensureMigrationsTable(d); err != nil {
		return err
	}
	var version int
	err := d.QueryRow(`SELECT version FROM schema_migrations ORDER BY version DESC LIMIT 1`).Scan(&version)
	if err == sql.ErrNoRows {
		return nil // nothing to rollback
	} else if err != nil {
		return err
	}
	migs, err := loadMigrations(driver)
	if err != nil {
		return err
	}
	m, ok := migs[version]
	if !ok || m.downFile == "" {
		return fmt.Errorf("no down migration found for version %d", version)
	}
	sqlText, err := migrationsFS.ReadFile(m.downFile)
	if err != nil {
		return err
	}
	if err := execStatements(d, string(sqlText)); err != nil {
		return err
	}
	_, err = d.Exec(`DELETE FROM schema_migrations WHERE version = ?`, version)
	return err
}

// execStatements runs a migration script statement by statement. MySQL's
// driver rejects multi-statement Exec by default, so scripts are split on
// the trailing semicolon of each statement.
func execStatements(d *sql.DB, script string) error {
	for _, stmt := range strings.Split(script, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := d.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
