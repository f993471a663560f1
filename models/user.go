package models

import "time"

// User represents an account that owns cost records.
// Users are created once and are immutable afterwards: there is no update or
// delete operation anywhere in the API surface.
type User struct {
	// UserPK is the internal storage identifier of the row.
	// It is never exposed via JSON and is used only at the persistence layer.
	UserPK int64 `json:"-"`

	// ID is the application-level user identifier supplied by the caller at
	// registration time. Positive and unique; distinct from UserPK.
	ID int64 `json:"id"`

	// FirstName is the user's given name. Must be non-empty.
	FirstName string `json:"first_name"`

	// LastName is the user's family name. Must be non-empty.
	LastName string `json:"last_name"`

	// Birthday is the user's date of birth. Must not be in the future.
	Birthday time.Time `json:"birthday"`

	// CreatedAt is the timestamp when the account was persisted.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
