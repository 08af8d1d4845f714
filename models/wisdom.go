package models

import (
	"slices"
	"time"
)

// WisdomNote is a saved insight, usually offered by a guru during chat.
//
// Source and Tags come from older clients. They are read and stored but new
// notes never set them.
type WisdomNote struct {
	ID           int64  `json:"-"`
	OwnerID      int64  `json:"-"`
	ClientSideID string `json:"client_side_id"`

	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
	GuruID   string `json:"guru_id,omitempty"`
	Favorite bool   `json:"favorite"`

	Source string   `json:"source,omitempty"`
	Tags   []string `json:"tags,omitempty"`

	CreatedAt time.Time `json:"created_at,omitzero"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// Clone returns a deep copy of w.
func (w WisdomNote) Clone() WisdomNote {
	out := w
	out.Tags = slices.Clone(w.Tags)
	return out
}
