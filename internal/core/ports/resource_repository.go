package ports

import (
	"context"

	"github.com/salesflow/crm-api/internal/core/domain"
)

// ClientRepository defines persistence operations for client records.
// List-type queries take an ownerID filter: empty means no filter (admin),
// non-empty scopes the query to that owner.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context, ownerID string) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id string) error
	// DeleteByOwner removes every client owned by ownerID and returns the
	// number of documents removed.
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
	Count(ctx context.Context, ownerID string) (int64, error)
	CountByPriority(ctx context.Context, ownerID string, priority domain.Priority) (int64, error)
}

// QuotationRepository defines persistence operations for quotations.
type QuotationRepository interface {
	Create(ctx context.Context, quotation *domain.Quotation) (*domain.Quotation, error)
	FindByID(ctx context.Context, id string) (*domain.Quotation, error)
	List(ctx context.Context, ownerID string) ([]*domain.Quotation, error)
	Update(ctx context.Context, quotation *domain.Quotation) error
	Delete(ctx context.Context, id string) error
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
	DeleteByClient(ctx context.Context, clientID string) (int64, error)
	// RefreshClientName rewrites the denormalized client_name snapshot on
	// every quotation referencing clientID.
	RefreshClientName(ctx context.Context, clientID, name string) error
	Count(ctx context.Context, ownerID string) (int64, error)
}

// ReminderRepository defines persistence operations for reminders.
type ReminderRepository interface {
	Create(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error)
	FindByID(ctx context.Context, id string) (*domain.Reminder, error)
	// List returns reminders sorted by remind_at ascending.
	List(ctx context.Context, ownerID string) ([]*domain.Reminder, error)
	Update(ctx context.Context, reminder *domain.Reminder) error
	Delete(ctx context.Context, id string) error
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
	DeleteByClient(ctx context.Context, clientID string) (int64, error)
	RefreshClientName(ctx context.Context, clientID, name string) error
	CountPending(ctx context.Context, ownerID string) (int64, error)
}
