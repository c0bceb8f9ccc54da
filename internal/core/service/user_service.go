package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/salesflow/crm-api/internal/core/domain"
	"github.com/salesflow/crm-api/internal/core/ports"
	"github.com/salesflow/crm-api/internal/infrastructure/cascade"
)

// UserService implements admin account management and self-service profile
// updates. Deleting an account cascades deletion of everything it owns.
type UserService struct {
	users      ports.UserRepository
	clients    ports.ClientRepository
	quotations ports.QuotationRepository
	reminders  ports.ReminderRepository
	cascade    *cascade.Runner
	log        zerolog.Logger
}

func NewUserService(
	users ports.UserRepository,
	clients ports.ClientRepository,
	quotations ports.QuotationRepository,
	reminders ports.ReminderRepository,
	runner *cascade.Runner,
	log zerolog.Logger,
) *UserService {
	return &UserService{
		users:      users,
		clients:    clients,
		quotations: quotations,
		reminders:  reminders,
		cascade:    runner,
		log:        log,
	}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Update applies an admin edit to any account: username, email, or role.
func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Role != nil {
		if !domain.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if err := s.applyIdentity(ctx, user, in.Username, in.Email); err != nil {
		return nil, err
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the account and best-effort deletes every resource whose
// owner matches. An admin cannot delete their own account.
func (s *UserService) Delete(ctx context.Context, actor domain.Principal, id string) error {
	if actor.ID == id {
		return domain.ErrForbidden
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.cascade.Run(ctx, "user_id", id,
		cascade.Job{Name: "clients", Run: func(ctx context.Context) (int64, error) {
			return s.clients.DeleteByOwner(ctx, id)
		}},
		cascade.Job{Name: "quotations", Run: func(ctx context.Context) (int64, error) {
			return s.quotations.DeleteByOwner(ctx, id)
		}},
		cascade.Job{Name: "reminders", Run: func(ctx context.Context) (int64, error) {
			return s.reminders.DeleteByOwner(ctx, id)
		}},
	)

	s.log.Info().Str("user_id", id).Str("deleted_by", actor.ID).Msg("user deleted with owned resources")
	return nil
}

func (s *UserService) Profile(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// UpdateProfile applies a self-service edit. A new password is only accepted
// together with proof of the current one.
func (s *UserService) UpdateProfile(ctx context.Context, id string, in ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.NewPassword != "" {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)) != nil {
			return nil, domain.ErrIncorrectPassword
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.applyIdentity(ctx, user, in.Username, in.Email); err != nil {
		return nil, err
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// applyIdentity sets username/email on user after checking that neither is
// already taken by another account.
func (s *UserService) applyIdentity(ctx context.Context, user *domain.User, username, email *string) error {
	if username == nil && email == nil {
		return nil
	}

	checkUsername := user.Username
	if username != nil {
		checkUsername = *username
	}
	checkEmail := user.Email
	if email != nil {
		checkEmail = *email
	}

	conflict, err := s.users.FindConflict(ctx, user.ID, checkUsername, checkEmail)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	if conflict != nil {
		return domain.ErrUserExists
	}

	user.Username = checkUsername
	user.Email = checkEmail
	return nil
}
