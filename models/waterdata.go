package models

import "time"

// WaterData represents a single water-intake record in the `waterdata`
// table. Records are append-only: there is no id column, no update and no
// delete.
type WaterData struct {
	WaterIntake int64     `db:"water_intake" json:"water_intake"`
	UserID      int64     `db:"user_id" json:"user_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
