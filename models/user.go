package models

import "time"

// User represents a registered account in the system.
// It maps to the `user` table. Password holds the bcrypt hash, never the
// raw secret, and is excluded from JSON so reads cannot leak it.
type User struct {
	ID        int64     `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	Username  string    `db:"username" json:"username"`
	WaterGoal int64     `db:"water_goal" json:"water_goal"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// UserUpdate describes a partial update of a user row. Nil fields are left
// untouched. PasswordHash must already be hashed by the caller.
type UserUpdate struct {
	Username     *string
	Email        *string
	PasswordHash *string
}

// Empty reports whether the update would touch no columns.
func (u UserUpdate) Empty() bool {
	return u.Username == nil && u.Email == nil && u.PasswordHash == nil
}
