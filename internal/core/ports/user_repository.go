package ports

import (
	"context"

	"github.com/salesflow/crm-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindConflict returns a user (other than excludeID) holding the given
	// username or email, or domain.ErrUserNotFound when neither is taken.
	FindConflict(ctx context.Context, excludeID, username, email string) (*domain.User, error)
	// List returns all users sorted by creation time, newest first.
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
