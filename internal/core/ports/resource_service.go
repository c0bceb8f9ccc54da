package ports

import (
	"context"
	"time"

	"github.com/salesflow/crm-api/internal/core/domain"
)

// CreateClientInput carries all data needed to create a client record.
type CreateClientInput struct {
	Name         string
	Email        string
	Phone        string
	Requirements string
	Priority     domain.Priority
}

// UpdateClientInput enumerates exactly the mutable client fields. Ownership
// is immutable and absent here.
type UpdateClientInput struct {
	Name         string
	Email        string
	Phone        string
	Requirements string
	Priority     domain.Priority
}

// ClientService covers the client CRUD use cases. Every single-resource
// operation enforces the ownership-or-admin check after fetching.
type ClientService interface {
	Create(ctx context.Context, p domain.Principal, in CreateClientInput) (*domain.Client, error)
	Get(ctx context.Context, p domain.Principal, id string) (*domain.Client, error)
	List(ctx context.Context, p domain.Principal) ([]*domain.Client, error)
	Update(ctx context.Context, p domain.Principal, id string, in UpdateClientInput) (*domain.Client, error)
	// Delete removes the client and cascades deletion of its quotations and
	// reminders.
	Delete(ctx context.Context, p domain.Principal, id string) error
}

// CreateQuotationInput carries all data needed to create a quotation.
type CreateQuotationInput struct {
	ClientID string
	Details  string
	Amount   float64
	Status   domain.QuotationStatus
}

// UpdateQuotationInput enumerates the mutable quotation fields. A non-empty
// ClientID re-targets the relation and refreshes the denormalized name.
type UpdateQuotationInput struct {
	ClientID string
	Details  string
	Amount   float64
	Status   domain.QuotationStatus
}

type QuotationService interface {
	Create(ctx context.Context, p domain.Principal, in CreateQuotationInput) (*domain.Quotation, error)
	Get(ctx context.Context, p domain.Principal, id string) (*domain.Quotation, error)
	List(ctx context.Context, p domain.Principal) ([]*domain.Quotation, error)
	Update(ctx context.Context, p domain.Principal, id string, in UpdateQuotationInput) (*domain.Quotation, error)
	Delete(ctx context.Context, p domain.Principal, id string) error
}

// CreateReminderInput carries all data needed to create a reminder.
type CreateReminderInput struct {
	ClientID string
	Message  string
	RemindAt time.Time
	Type     domain.ReminderType
}

type ReminderService interface {
	Create(ctx context.Context, p domain.Principal, in CreateReminderInput) (*domain.Reminder, error)
	Get(ctx context.Context, p domain.Principal, id string) (*domain.Reminder, error)
	List(ctx context.Context, p domain.Principal) ([]*domain.Reminder, error)
	// SetCompleted toggles the completion flag.
	SetCompleted(ctx context.Context, p domain.Principal, id string, completed bool) (*domain.Reminder, error)
	Delete(ctx context.Context, p domain.Principal, id string) error
}

// DashboardStats is the summary view backing the dashboard landing page.
type DashboardStats struct {
	TotalClients        int64 `json:"total_clients"`
	TotalQuotations     int64 `json:"total_quotations"`
	HighPriorityClients int64 `json:"high_priority_clients"`
	PendingReminders    int64 `json:"pending_reminders"`
}

type DashboardService interface {
	// Stats returns counts scoped to the caller: admins see totals across
	// all owners, everyone else sees only their own records.
	Stats(ctx context.Context, p domain.Principal) (*DashboardStats, error)
}
