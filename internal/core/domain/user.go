package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleCore  = "core"
)

// ValidRole reports whether role is one of the recognised access tiers.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCore
}

// User models an authenticated actor in the system. PasswordHash never leaves
// the persistence boundary: it is excluded from every JSON payload.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sanitized returns a copy safe for response payloads.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}

// UserUpdate is a partial update; nil fields are left untouched.
type UserUpdate struct {
	Username *string
	Email    *string
	Role     *string
}

// UserStats is the aggregate returned by the admin stats endpoint.
type UserStats struct {
	TotalUsers int64 `json:"totalUsers"`
	AdminUsers int64 `json:"adminUsers"`
	CoreUsers  int64 `json:"coreUsers"`
}
