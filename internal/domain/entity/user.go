package entity

import "time"

// User roles.
const (
	RoleAdmin    = "ADMIN"
	RoleManager  = "MANAGER"
	RoleOperator = "OPERATOR"
)

// User represents an operator of the dashboard.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Company      string
	Role         string
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
