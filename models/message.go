package models

// Role of a chat message author.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant || r == RoleSystem
}

// Message is one turn of a guru conversation. Messages are append-only.
type Message struct {
	ID           int64  `json:"-"`
	OwnerID      int64  `json:"-"`
	ClientSideID string `json:"client_side_id"`

	GuruID  string `json:"guru_id"`
	Role    Role   `json:"role"`
	Content string `json:"content"`
	// Timestamp is milliseconds since the Unix epoch.
	Timestamp int64 `json:"timestamp"`
}
