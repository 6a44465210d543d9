package models

// Bottle represents a named bottle device associated with a user.
// It maps to the `bottle` table. UserID references user.id but is not
// validated against existing users at the application layer.
type Bottle struct {
	ID     int64  `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Weight int64  `db:"weight" json:"weight"`
	UserID int64  `db:"user_id" json:"user_id"`
}
