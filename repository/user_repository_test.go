package repository

import (
	"context"
	"testing"

	"github.com/Drakarta/Solide-Inc/internal/db"
	"github.com/Drakarta/Solide-Inc/internal/testutil"
	"github.com/Drakarta/Solide-Inc/models"
)

func TestUserRepository_CRUDAndQueries(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "userrepo")

	repo := NewUserRepository(d)
	ctx := context.Background()

	// Create
	u, err := repo.Create(ctx, "alice@example.com", "hash-1", "alice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == 0 || u.Email != "alice@example.com" {
		t.Fatalf("unexpected created user: %+v", u)
	}

	// GetByID picks up column defaults
	g, err := repo.GetByID(ctx, u.ID)
	if err != nil || g == nil {
		t.Fatalf("get by id: %v %+v", err, g)
	}
	if g.WaterGoal != 2000 {
		t.Fatalf("expected default water_goal 2000, got %d", g.WaterGoal)
	}
	if g.CreatedAt.IsZero() {
		t.Fatalf("created_at not set: %+v", g)
	}

	// GetByEmail
	g2, err := repo.GetByEmail(ctx, "alice@example.com")
	if err != nil || g2 == nil || g2.ID != u.ID {
		t.Fatalf("get by email: %v %+v", err, g2)
	}
	// Case-sensitive email match: different casing finds nothing.
	miss, err := repo.GetByEmail(ctx, "ALICE@example.com")
	if err != nil || miss != nil {
		t.Fatalf("expected no match for different casing, got %+v err=%v", miss, err)
	}

	// Duplicate email violates the unique constraint
	if _, err := repo.Create(ctx, "alice@example.com", "hash-2", "bob"); !db.IsDuplicateKey(err) {
		t.Fatalf("expected duplicate key error, got %v", err)
	}

	// List
	list, err := repo.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list: %v len=%d", err, len(list))
	}

	// Missing id reads as nil, nil
	none, err := repo.GetByID(ctx, 9999)
	if err != nil || none != nil {
		t.Fatalf("expected nil for missing id, got %+v err=%v", none, err)
	}
}

func TestUserRepository_PartialUpdate(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "userupdate")

	repo := NewUserRepository(d)
	ctx := context.Background()

	u, err := repo.Create(ctx, "carol@example.com", "hash-orig", "carol")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Updating only the email leaves username and password untouched.
	newEmail := "carol@new.example.com"
	if err := repo.Update(ctx, u.ID, models.UserUpdate{Email: &newEmail}); err != nil {
		t.Fatalf("update email: %v", err)
	}
	g, err := repo.GetByID(ctx, u.ID)
	if err != nil || g == nil {
		t.Fatalf("get: %v", err)
	}
	if g.Email != newEmail || g.Username != "carol" || g.Password != "hash-orig" {
		t.Fatalf("partial update touched extra columns: %+v", g)
	}

	// Multiple fields at once.
	newName := "caroline"
	newHash := "hash-new"
	if err := repo.Update(ctx, u.ID, models.UserUpdate{Username: &newName, PasswordHash: &newHash}); err != nil {
		t.Fatalf("update name+password: %v", err)
	}
	g, _ = repo.GetByID(ctx, u.ID)
	if g.Username != "caroline" || g.Password != "hash-new" || g.Email != newEmail {
		t.Fatalf("unexpected row after update: %+v", g)
	}

	// Empty update set is rejected.
	if err := repo.Update(ctx, u.ID, models.UserUpdate{}); err == nil {
		t.Fatalf("expected error for empty update")
	}
}

func TestUserRepository_DeleteAndGoal(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "userdelete")

	repo := NewUserRepository(d)
	ctx := context.Background()

	u, err := repo.Create(ctx, "dave@example.com", "h", "dave")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Goal read and write
	goal, err := repo.WaterGoal(ctx, u.ID)
	if err != nil || goal != 2000 {
		t.Fatalf("water goal: %v %d", err, goal)
	}
	if err := repo.SetWaterGoal(ctx, u.ID, 3000); err != nil {
		t.Fatalf("set goal: %v", err)
	}
	goal, err = repo.WaterGoal(ctx, u.ID)
	if err != nil || goal != 3000 {
		t.Fatalf("goal after change: %v %d", err, goal)
	}
	// Goal of a missing user is a not-found, not a crash.
	if _, err := repo.WaterGoal(ctx, 9999); !db.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	// Changing a missing user's goal affects nothing and succeeds.
	if err := repo.SetWaterGoal(ctx, 9999, 1500); err != nil {
		t.Fatalf("set goal on missing id: %v", err)
	}

	// Delete reports rows affected.
	n, err := repo.Delete(ctx, u.ID)
	if err != nil || n != 1 {
		t.Fatalf("delete: %v n=%d", err, n)
	}
	n, err = repo.Delete(ctx, u.ID)
	if err != nil || n != 0 {
		t.Fatalf("second delete should affect zero rows: %v n=%d", err, n)
	}
}
