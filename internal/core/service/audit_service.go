package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shopwise/shopping-assistant/internal/api/metrics"
	"github.com/shopwise/shopping-assistant/internal/core/domain"
	"github.com/shopwise/shopping-assistant/internal/core/ports"
)

// AuditService persists admin audit events. Invoked by the dispatcher workers,
// never directly from a request path.
type AuditService struct {
	repo   ports.AuditRepository
	logger zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, logger zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, logger: logger}
}

// Record assigns the event an id and persists it.
func (s *AuditService) Record(ctx context.Context, event domain.AuditEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	if err := s.repo.Insert(ctx, &event); err != nil {
		metrics.AuditEventsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.AuditEventsTotal.WithLabelValues("recorded").Inc()
	s.logger.Debug().
		Str("action", event.Action).
		Str("actor_id", event.ActorID).
		Str("target_id", event.TargetID).
		Msg("audit event recorded")
	return nil
}
