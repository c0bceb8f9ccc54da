package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/salesflow/crm-api/internal/api/metrics"
	"github.com/salesflow/crm-api/internal/core/domain"
	"github.com/salesflow/crm-api/internal/core/ports"
)

// QuotationService implements the quotation CRUD use cases. The referenced
// client must pass the same ownership-or-admin check as the quotation
// itself, and its display name is snapshotted on the quotation.
type QuotationService struct {
	quotations ports.QuotationRepository
	clients    ports.ClientRepository
	log        zerolog.Logger
}

func NewQuotationService(quotations ports.QuotationRepository, clients ports.ClientRepository, log zerolog.Logger) *QuotationService {
	return &QuotationService{quotations: quotations, clients: clients, log: log}
}

func (s *QuotationService) Create(ctx context.Context, p domain.Principal, in ports.CreateQuotationInput) (*domain.Quotation, error) {
	client, err := s.relatedClient(ctx, p, in.ClientID)
	if err != nil {
		return nil, err
	}

	quotation := &domain.Quotation{
		OwnerID:    p.ID,
		ClientID:   client.ID,
		ClientName: client.Name,
		Details:    in.Details,
		Amount:     in.Amount,
		Status:     in.Status,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.quotations.Create(ctx, quotation)
	if err != nil {
		return nil, err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues("quotation").Inc()
	s.log.Info().Str("quotation_id", created.ID).Str("client_id", client.ID).Msg("quotation created")
	return created, nil
}

func (s *QuotationService) Get(ctx context.Context, p domain.Principal, id string) (*domain.Quotation, error) {
	quotation, err := s.quotations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanAccess(quotation.OwnerID) {
		return nil, domain.ErrForbidden
	}
	return quotation, nil
}

func (s *QuotationService) List(ctx context.Context, p domain.Principal) ([]*domain.Quotation, error) {
	return s.quotations.List(ctx, p.ListScope())
}

// Update rewrites the mutable quotation fields. When the client relation
// changes, the new client is re-checked and its name snapshotted.
func (s *QuotationService) Update(ctx context.Context, p domain.Principal, id string, in ports.UpdateQuotationInput) (*domain.Quotation, error) {
	quotation, err := s.quotations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanAccess(quotation.OwnerID) {
		return nil, domain.ErrForbidden
	}

	if in.ClientID != "" && in.ClientID != quotation.ClientID {
		client, err := s.relatedClient(ctx, p, in.ClientID)
		if err != nil {
			return nil, err
		}
		quotation.ClientID = client.ID
		quotation.ClientName = client.Name
	}

	quotation.Details = in.Details
	quotation.Amount = in.Amount
	quotation.Status = in.Status

	if err := s.quotations.Update(ctx, quotation); err != nil {
		return nil, err
	}
	return quotation, nil
}

func (s *QuotationService) Delete(ctx context.Context, p domain.Principal, id string) error {
	quotation, err := s.quotations.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.CanAccess(quotation.OwnerID) {
		return domain.ErrForbidden
	}
	return s.quotations.Delete(ctx, id)
}

// relatedClient fetches the referenced client and enforces that the caller
// may attach resources to it.
func (s *QuotationService) relatedClient(ctx context.Context, p domain.Principal, clientID string) (*domain.Client, error) {
	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !p.CanAccess(client.OwnerID) {
		return nil, domain.ErrForbidden
	}
	return client, nil
}
