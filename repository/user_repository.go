package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/Drakarta/Solide-Inc/internal/db"
	"github.com/Drakarta/Solide-Inc/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(d *sql.DB) *UserRepository {
	return &UserRepository{db: d}
}

// Create inserts a new user. water_goal and created_at come from column
// defaults. A second user with the same email fails with db.ErrDuplicateKey
// (unique constraint on user.email).
func (r *UserRepository) Create(ctx context.Context, email, passwordHash, username string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `INSERT INTO user (email, password, username) VALUES (?, ?, ?)`,
		email, passwordHash, username)
	if err != nil {
		return nil, db.MapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.User{ID: id, Email: email, Password: passwordHash, Username: username, WaterGoal: 2000}, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx, `SELECT id, email, password, username, water_goal, created_at FROM user WHERE id = ?`, id).
		Scan(&u.ID, &u.Email, &u.Password, &u.Username, &u.WaterGoal, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by email only; the caller verifies the password
// against the stored hash. Email matching is case-sensitive.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx, `SELECT id, email, password, username, water_goal, created_at FROM user WHERE email = ?`, email).
		Scan(&u.ID, &u.Email, &u.Password, &u.Username, &u.WaterGoal, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT id, email, password, username, water_goal, created_at FROM user`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Password, &u.Username, &u.WaterGoal, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update applies a partial update built from the non-nil fields of upd.
// The column list is computed from which fields are present; values are
// always bound as parameters, never interpolated.
func (r *UserRepository) Update(ctx context.Context, id int64, upd models.UserUpdate) error {
	if upd.Empty() {
		return errors.New("no fields to update")
	}
	setClauses := make([]string, 0, 3)
	args := make([]any, 0, 4)
	if upd.Username != nil {
		setClauses = append(setClauses, "username = ?")
		args = append(args, *upd.Username)
	}
	if upd.Email != nil {
		setClauses = append(setClauses, "email = ?")
		args = append(args, *upd.Email)
	}
	if upd.PasswordHash != nil {
		setClauses = append(setClauses, "password = ?")
		args = append(args, *upd.PasswordHash)
	}
	args = append(args, id)

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `UPDATE user SET `+strings.Join(setClauses, ", ")+` WHERE id = ?`, args...)
	return db.MapError(err)
}

// Delete removes the user row and returns the number of rows affected.
// Dependent bottle/waterdata rows are not touched; if the engine enforces
// the foreign keys the error surfaces as db.ErrForeignKeyViolation.
func (r *UserRepository) Delete(ctx context.Context, id int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM user WHERE id = ?`, id)
	if err != nil {
		return 0, db.MapError(err)
	}
	return res.RowsAffected()
}

// WaterGoal returns the user's water_goal or db.ErrNotFound when no row
// matches.
func (r *UserRepository) WaterGoal(ctx context.Context, id int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var goal int64
	err := r.db.QueryRowContext(ctx, `SELECT water_goal FROM user WHERE id = ?`, id).Scan(&goal)
	if err != nil {
		return 0, db.MapError(err)
	}
	return goal, nil
}

// SetWaterGoal updates water_goal unconditionally; updating a non-existent
// id affects zero rows and is not an error.
func (r *UserRepository) SetWaterGoal(ctx context.Context, id, goal int64) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `UPDATE user SET water_goal = ? WHERE id = ?`, goal, id)
	return err
}
