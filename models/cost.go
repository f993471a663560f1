package models

import "time"

// Cost represents a single expense event recorded by a user.
// Costs are append-only: once created they are never modified or deleted,
// and the full set of a user's costs is the source of truth for reports.
type Cost struct {
	// CostPK is the internal storage identifier of the row.
	// Not exposed via JSON.
	CostPK int64 `json:"-"`

	// UserID references the application-level ID of an existing user.
	UserID int64 `json:"userid"`

	// Description is a free-form, non-empty description of the expense.
	Description string `json:"description"`

	// Category is one of the registered expense categories.
	// Stored trimmed and lower-cased.
	Category string `json:"category"`

	// Sum is the expense amount. Finite and non-negative.
	Sum float64 `json:"sum"`

	// Date is the moment the expense occurred. Defaults to "now" when omitted
	// at creation time; must not precede the start of the current day.
	Date time.Time `json:"date"`

	// CreatedAt is the timestamp when the record was persisted.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Cost model.
func (c Cost) TableName() string {
	return "costs"
}
