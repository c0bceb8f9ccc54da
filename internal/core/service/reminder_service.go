package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/salesflow/crm-api/internal/api/metrics"
	"github.com/salesflow/crm-api/internal/core/domain"
	"github.com/salesflow/crm-api/internal/core/ports"
)

// ReminderService implements the reminder use cases.
type ReminderService struct {
	reminders ports.ReminderRepository
	clients   ports.ClientRepository
	log       zerolog.Logger
}

func NewReminderService(reminders ports.ReminderRepository, clients ports.ClientRepository, log zerolog.Logger) *ReminderService {
	return &ReminderService{reminders: reminders, clients: clients, log: log}
}

func (s *ReminderService) Create(ctx context.Context, p domain.Principal, in ports.CreateReminderInput) (*domain.Reminder, error) {
	client, err := s.clients.FindByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if !p.CanAccess(client.OwnerID) {
		return nil, domain.ErrForbidden
	}

	reminder := &domain.Reminder{
		OwnerID:    p.ID,
		ClientID:   client.ID,
		ClientName: client.Name,
		Message:    in.Message,
		RemindAt:   in.RemindAt.UTC(),
		Type:       in.Type,
		Completed:  false,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.reminders.Create(ctx, reminder)
	if err != nil {
		return nil, err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues("reminder").Inc()
	s.log.Info().Str("reminder_id", created.ID).Str("client_id", client.ID).Msg("reminder created")
	return created, nil
}

func (s *ReminderService) Get(ctx context.Context, p domain.Principal, id string) (*domain.Reminder, error) {
	reminder, err := s.reminders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanAccess(reminder.OwnerID) {
		return nil, domain.ErrForbidden
	}
	return reminder, nil
}

func (s *ReminderService) List(ctx context.Context, p domain.Principal) ([]*domain.Reminder, error) {
	return s.reminders.List(ctx, p.ListScope())
}

// SetCompleted toggles the completion flag on a reminder.
func (s *ReminderService) SetCompleted(ctx context.Context, p domain.Principal, id string, completed bool) (*domain.Reminder, error) {
	reminder, err := s.reminders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.CanAccess(reminder.OwnerID) {
		return nil, domain.ErrForbidden
	}

	reminder.Completed = completed
	if err := s.reminders.Update(ctx, reminder); err != nil {
		return nil, err
	}
	return reminder, nil
}

func (s *ReminderService) Delete(ctx context.Context, p domain.Principal, id string) error {
	reminder, err := s.reminders.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.CanAccess(reminder.OwnerID) {
		return domain.ErrForbidden
	}
	return s.reminders.Delete(ctx, id)
}
