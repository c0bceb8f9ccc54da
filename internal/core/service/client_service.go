package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/salesflow/crm-api/internal/api/metrics"
	"github.com/salesflow/crm-api/internal/core/domain"
	"github.com/salesflow/crm-api/internal/core/ports"
	"github.com/salesflow/crm-api/internal/infrastructure/cascade"
)

// ClientService implements the client CRUD use cases with the
// ownership-or-admin check on every single-resource operation.
type ClientService struct {
	clients    ports.ClientRepository
	quotations ports.QuotationRepository
	reminders  ports.ReminderRepository
	cascade    *cascade.Runner
	log        zerolog.Logger
}

func NewClientService(
	clients ports.ClientRepository,
	quotations ports.QuotationRepository,
	reminders ports.ReminderRepository,
	runner *cascade.Runner,
	log zerolog.Logger,
) *ClientService {
	return &ClientService{
		clients:    clients,
		quotations: quotations,
		reminders:  reminders,
		cascade:    runner,
		log:        log,
	}
}

func (s *ClientService) Create(ctx context.Context, p domain.Principal, in ports.CreateClientInput) (*domain.Client, error) {
	client := &domain.Client{
		OwnerID:      p.ID,
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Requirements: in.Requirements,
		Priority:     in.Priority,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.clients.Create(ctx, client)
	if err != nil {
		return nil, err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues("client").Inc()
	s.log.Info().Str("client_id", created.ID).Str("owner_id", p.ID).Msg("client created")
	return created, nil
}

func (s *ClientService) Get(ctx context.Context, p domain.Principal, id string) (*domain.Client, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanAccess(client.OwnerID) {
		return nil, domain.ErrForbidden
	}
	return client, nil
}

func (s *ClientService) List(ctx context.Context, p domain.Principal) ([]*domain.Client, error) {
	return s.clients.List(ctx, p.ListScope())
}

// Update rewrites the mutable client fields. A name change is propagated to
// the denormalized client_name snapshots on dependent quotations and
// reminders.
func (s *ClientService) Update(ctx context.Context, p domain.Principal, id string, in ports.UpdateClientInput) (*domain.Client, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanAccess(client.OwnerID) {
		return nil, domain.ErrForbidden
	}

	renamed := client.Name != in.Name
	client.Name = in.Name
	client.Email = in.Email
	client.Phone = in.Phone
	client.Requirements = in.Requirements
	client.Priority = in.Priority

	if err := s.clients.Update(ctx, client); err != nil {
		return nil, err
	}

	if renamed {
		if err := s.quotations.RefreshClientName(ctx, client.ID, client.Name); err != nil {
			s.log.Error().Err(err).Str("client_id", client.ID).Msg("failed to refresh client name on quotations")
		}
		if err := s.reminders.RefreshClientName(ctx, client.ID, client.Name); err != nil {
			s.log.Error().Err(err).Str("client_id", client.ID).Msg("failed to refresh client name on reminders")
		}
	}

	return client, nil
}

// Delete removes the client and best-effort deletes its dependent quotations
// and reminders.
func (s *ClientService) Delete(ctx context.Context, p domain.Principal, id string) error {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.CanAccess(client.OwnerID) {
		return domain.ErrForbidden
	}

	if err := s.clients.Delete(ctx, id); err != nil {
		return err
	}

	s.cascade.Run(ctx, "client_id", id,
		cascade.Job{Name: "quotations", Run: func(ctx context.Context) (int64, error) {
			return s.quotations.DeleteByClient(ctx, id)
		}},
		cascade.Job{Name: "reminders", Run: func(ctx context.Context) (int64, error) {
			return s.reminders.DeleteByClient(ctx, id)
		}},
	)

	s.log.Info().Str("client_id", id).Str("deleted_by", p.ID).Msg("client deleted with dependents")
	return nil
}
