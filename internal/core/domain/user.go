package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether role is one of the two enumerated roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// User models an account in the CRM. PasswordHash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the authenticated identity attached to a request by the
// session middleware. It carries only what the token proves.
type Principal struct {
	ID       string
	Username string
	Role     string
}

// IsAdmin reports whether the principal holds the administrative role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanAccess is the ownership-or-admin predicate applied to every
// single-resource operation: a principal may act on a resource iff they own
// it or hold the administrative role.
func (p Principal) CanAccess(ownerID string) bool {
	return p.Role == RoleAdmin || p.ID == ownerID
}

// ListScope returns the owner filter for list queries: empty for admins
// (no filter, all resources) and the principal's own id otherwise.
func (p Principal) ListScope() string {
	if p.Role == RoleAdmin {
		return ""
	}
	return p.ID
}
