package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Drakarta/Solide-Inc/internal/db"
	"github.com/Drakarta/Solide-Inc/models"
)

type BottleRepository struct {
	db *sql.DB
}

func NewBottleRepository(d *sql.DB) *BottleRepository {
	return &BottleRepository{db: d}
}

// Create inserts a new bottle. user_id is stored as supplied; it is not
// checked against existing users here.
func (r *BottleRepository) Create(ctx context.Context, b *models.Bottle) (*models.Bottle, error) {
	if b == nil {
		return nil, errors.New("bottle is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `INSERT INTO bottle (weight, name, user_id) VALUES (?, ?, ?)`,
		b.Weight, b.Name, b.UserID)
	if err != nil {
		return nil, db.MapError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	b.ID = id
	return b, nil
}

// Rename sets the bottle name by id. Renaming a non-existent id affects
// zero rows and is not an error; the count is returned for callers that
// care.
func (r *BottleRepository) Rename(ctx context.Context, id int64, name string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `UPDATE bottle SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes the bottle by id with the same zero-rows semantics as
// Rename.
func (r *BottleRepository) Delete(ctx context.Context, id int64) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM bottle WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// GetByID returns the rows matching id. The id column is unique, but the
// read surface returns a sequence so the response shape matches the list
// endpoints.
func (r *BottleRepository) GetByID(ctx context.Context, id int64) ([]models.Bottle, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return r.query(ctx, `SELECT id, name, weight, user_id FROM bottle WHERE id = ?`, id)
}

func (r *BottleRepository) ListByUser(ctx context.Context, userID int64) ([]models.Bottle, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.query(ctx, `SELECT id, name, weight, user_id FROM bottle WHERE user_id = ?`, userID)
}

func (r *BottleRepository) List(ctx context.Context) ([]models.Bottle, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.query(ctx, `SELECT id, name, weight, user_id FROM bottle`)
}

func (r *BottleRepository) query(ctx context.Context, q string, args ...any) ([]models.Bottle, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Bottle
	for rows.Next() {
		var b models.Bottle
		if err := rows.Scan(&b.ID, &b.Name, &b.Weight, &b.UserID); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
