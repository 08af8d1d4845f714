package models

import "time"

// Checkin is the daily mood journal entry. Date is "YYYY-MM-DD"; the client
// keeps one entry per date.
type Checkin struct {
	ID           int64  `json:"-"`
	OwnerID      int64  `json:"-"`
	ClientSideID string `json:"client_side_id"`

	Date      string  `json:"date"`
	Mood      *int    `json:"mood,omitempty"`
	Energy    *int    `json:"energy,omitempty"`
	Focus     *int    `json:"focus,omitempty"`
	Gratitude *string `json:"gratitude,omitempty"`
	Notes     *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}
