package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is supplied by the identity provider and read here only for role
// checks and notification addressing.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Actor is the authenticated identity performing a request.
type Actor struct {
	ID   string
	Role string
}
