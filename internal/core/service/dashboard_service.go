package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/salesflow/crm-api/internal/core/domain"
	"github.com/salesflow/crm-api/internal/core/ports"
)

// StatsCache abstracts the short-lived dashboard stats cache (Redis).
// Get returns (nil, nil) on a cache miss.
type StatsCache interface {
	Get(ctx context.Context, scope string) (*ports.DashboardStats, error)
	Set(ctx context.Context, scope string, stats *ports.DashboardStats) error
}

// DashboardService aggregates the counts behind the dashboard landing page.
type DashboardService struct {
	clients    ports.ClientRepository
	quotations ports.QuotationRepository
	reminders  ports.ReminderRepository
	cache      StatsCache
	log        zerolog.Logger
}

func NewDashboardService(
	clients ports.ClientRepository,
	quotations ports.QuotationRepository,
	reminders ports.ReminderRepository,
	cache StatsCache,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		clients:    clients,
		quotations: quotations,
		reminders:  reminders,
		cache:      cache,
		log:        log,
	}
}

// Stats returns the caller-scoped summary counts. Cache failures degrade to
// a fresh computation, never to a request failure.
func (s *DashboardService) Stats(ctx context.Context, p domain.Principal) (*ports.DashboardStats, error) {
	scope := p.ListScope()
	cacheKey := scope
	if cacheKey == "" {
		cacheKey = "all"
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey)
		if err != nil {
			s.log.Warn().Err(err).Msg("stats cache read failed, computing fresh")
		} else if cached != nil {
			return cached, nil
		}
	}

	totalClients, err := s.clients.Count(ctx, scope)
	if err != nil {
		return nil, err
	}
	totalQuotations, err := s.quotations.Count(ctx, scope)
	if err != nil {
		return nil, err
	}
	highPriority, err := s.clients.CountByPriority(ctx, scope, domain.PriorityOneMonth)
	if err != nil {
		return nil, err
	}
	pendingReminders, err := s.reminders.CountPending(ctx, scope)
	if err != nil {
		return nil, err
	}

	stats := &ports.DashboardStats{
		TotalClients:        totalClients,
		TotalQuotations:     totalQuotations,
		HighPriorityClients: highPriority,
		PendingReminders:    pendingReminders,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, stats); err != nil {
			s.log.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return stats, nil
}
