package ports

import (
	"context"

	"github.com/salesflow/crm-api/internal/core/domain"
)

// AuthService handles account issuance and credential verification.
type AuthService interface {
	// Register creates a new account with the non-privileged role.
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login verifies the credentials and returns a signed session token plus
	// the sanitized user. Unknown username and wrong password both yield
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
