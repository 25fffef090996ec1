package entity

import "time"

// Chat roles.
const (
	ChatRoleUser      = "USER"
	ChatRoleAssistant = "ASSISTANT"
)

// ChatMessage one turn of the dashboard chat panel.
type ChatMessage struct {
	ID        string
	UserID    string
	Role      string
	Content   string
	CreatedAt time.Time
}
