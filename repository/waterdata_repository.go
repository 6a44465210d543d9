package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Drakarta/Solide-Inc/internal/db"
	"github.com/Drakarta/Solide-Inc/models"
)

type WaterDataRepository struct {
	db *sql.DB
}

func NewWaterDataRepository(d *sql.DB) *WaterDataRepository {
	return &WaterDataRepository{db: d}
}

// Create appends a water-intake record; created_at comes from the column
// default. Records are never updated or deleted.
func (r *WaterDataRepository) Create(ctx context.Context, userID, intake int64) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `INSERT INTO waterdata (user_id, water_intake) VALUES (?, ?)`, userID, intake)
	return db.MapError(err)
}

// ListByUser returns the user's records in natural row order; no ordering
// is imposed beyond what the engine provides.
func (r *WaterDataRepository) ListByUser(ctx context.Context, userID int64) ([]models.WaterData, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.query(ctx, `SELECT water_intake, user_id, created_at FROM waterdata WHERE user_id = ?`, userID)
}

func (r *WaterDataRepository) List(ctx context.Context) ([]models.WaterData, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.query(ctx, `SELECT water_intake, user_id, created_at FROM waterdata`)
}

func (r *WaterDataRepository) query(ctx context.Context, q string, args ...any) ([]models.WaterData, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.WaterData
	for rows.Next() {
		var w models.WaterData
		if err := rows.Scan(&w.WaterIntake, &w.UserID, &w.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
