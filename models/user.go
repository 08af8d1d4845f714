package models

import "time"

// User is an account owning one profile and its collections. Every remote
// row's owner_id refers to User.ID.
type User struct {
	ID    int64  `json:"-"`
	Login string `json:"login"`

	// Password is plaintext on the wire and never stored. PasswordHash is the
	// bcrypt digest kept in the users table.
	Password     string `json:"password,omitempty"`
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at,omitzero"`
}
