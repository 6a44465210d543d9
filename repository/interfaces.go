package repository

import (
	"context"

	"github.com/Drakarta/Solide-Inc/models"
)

// UserRepositoryI defines operations on User entities.
type UserRepositoryI interface {
	Create(ctx context.Context, email, passwordHash, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id int64, upd models.UserUpdate) error
	Delete(ctx context.Context, id int64) (int64, error)
	WaterGoal(ctx context.Context, id int64) (int64, error)
	SetWaterGoal(ctx context.Context, id, goal int64) error
}

// BottleRepositoryI defines operations on Bottle entities.
type BottleRepositoryI interface {
	Create(ctx context.Context, b *models.Bottle) (*models.Bottle, error)
	Rename(ctx context.Context, id int64, name string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	GetByID(ctx context.Context, id int64) ([]models.Bottle, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Bottle, error)
	List(ctx context.Context) ([]models.Bottle, error)
}

// WaterDataRepositoryI defines operations on water-intake records.
type WaterDataRepositoryI interface {
	Create(ctx context.Context, userID, intake int64) error
	ListByUser(ctx context.Context, userID int64) ([]models.WaterData, error)
	List(ctx context.Context) ([]models.WaterData, error)
}
