package ports

import (
	"context"

	"github.com/salesflow/crm-api/internal/core/domain"
)

// UpdateUserInput carries the fields an admin may change on any account.
// Nil pointers mean "leave unchanged".
type UpdateUserInput struct {
	Username *string
	Email    *string
	Role     *string
}

// UpdateProfileInput carries the fields a user may change on their own
// account. Changing the password requires proving the current one.
type UpdateProfileInput struct {
	Username        *string
	Email           *string
	CurrentPassword string
	NewPassword     string
}

// UserService covers admin account management and self-service profile
// operations.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	// Delete removes the account and cascades deletion of every resource it
	// owns. The acting admin cannot delete their own account.
	Delete(ctx context.Context, actor domain.Principal, id string) error

	Profile(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (*domain.User, error)
}
