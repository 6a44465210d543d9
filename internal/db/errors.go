package db

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// Sentinel errors shared by all repositories. Callers check them with
// errors.Is; the original driver error stays reachable via %w wrapping.
var (
	// ErrNotFound is returned when a query matches no rows.
	ErrNotFound = errors.New("db: record not found")

	// ErrDuplicateKey is returned on unique constraint violations.
	ErrDuplicateKey = errors.New("db: duplicate key")

	// ErrForeignKeyViolation is returned when a foreign key constraint is
	// violated.
	ErrForeignKeyViolation = errors.New("db: foreign key violation")
)

func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

func IsDuplicateKey(err error) bool { return errors.Is(err, ErrDuplicateKey) }

func IsForeignKeyViolation(err error) bool { return errors.Is(err, ErrForeignKeyViolation) }

// MapError translates driver-level errors into the package sentinels.
// Unrecognized errors are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	// MySQL exposes typed errors with server error numbers.
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case 1062: // ER_DUP_ENTRY
			return errors.Join(ErrDuplicateKey, err)
		case 1216, 1217, 1451, 1452: // referenced-row violations
			return errors.Join(ErrForeignKeyViolation, err)
		}
		return err
	}

	// mattn/go-sqlite3 does not export stable typed errors for constraint
	// classes, so match on the message like everyone else does.
	s := err.Error()
	switch {
	case strings.Contains(s, "UNIQUE constraint failed"):
		return errors.Join(ErrDuplicateKey, err)
	case strings.Contains(s, "FOREIGN KEY constraint failed"):
		return errors.Join(ErrForeignKeyViolation, err)
	}
	return err
}
