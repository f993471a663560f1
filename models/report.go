package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// CostEntry is a single expense inside a report's category breakdown.
type CostEntry struct {
	// Sum is the expense amount.
	Sum float64 `json:"sum"`

	// Description is the expense description as recorded on the cost.
	Description string `json:"description"`

	// Day is the day of month (1-31) the expense occurred on.
	Day int `json:"day"`
}

// CategoryGroup is one element of a report's breakdown: a registered category
// name paired with the (possibly empty) list of matching cost entries.
//
// On the wire each group is a single-key JSON object, e.g.
//
//	{"food": [{"sum": 85.5, "description": "groceries", "day": 15}]}
//
// so the breakdown serializes as an ordered array of such objects, one per
// registered category.
type CategoryGroup struct {
	Category string
	Entries  []CostEntry
}

// MarshalJSON serializes the group as a single-key object.
// A nil entry list is emitted as [] rather than null.
func (g CategoryGroup) MarshalJSON() ([]byte, error) {
	entries := g.Entries
	if entries == nil {
		entries = []CostEntry{}
	}
	return json.Marshal(map[string][]CostEntry{g.Category: entries})
}

// UnmarshalJSON restores a group from its single-key object form.
func (g *CategoryGroup) UnmarshalJSON(data []byte) error {
	var raw map[string][]CostEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("category group must contain exactly one category, got %d", len(raw))
	}
	for category, entries := range raw {
		g.Category = category
		g.Entries = entries
	}
	if g.Entries == nil {
		g.Entries = []CostEntry{}
	}
	return nil
}

// Report is the memoized monthly cost breakdown for one user.
// At most one report exists per (UserID, Year, Month); reports for past months
// are computed once, persisted verbatim, and never invalidated.
type Report struct {
	// ReportPK is the internal storage identifier of the row.
	// Not exposed via JSON.
	ReportPK int64 `json:"-"`

	// UserID is the application-level ID of the report's owner.
	UserID int64 `json:"userId"`

	// Year is the calendar year the report covers.
	Year int `json:"year"`

	// Month is the calendar month (1-12) the report covers.
	Month int `json:"month"`

	// Costs is the category breakdown, one group per registered category in
	// registry order, each holding that month's matching entries in retrieval
	// order.
	Costs []CategoryGroup `json:"costs"`

	// CreatedAt is the timestamp when the report was cached.
	// Zero for reports that were computed but never persisted.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Report model.
func (r Report) TableName() string {
	return "reports"
}
