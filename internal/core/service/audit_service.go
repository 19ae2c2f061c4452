package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Tripno08/innerview-backend/internal/api/metrics"
	"github.com/Tripno08/innerview-backend/internal/core/domain"
	"github.com/Tripno08/innerview-backend/internal/core/ports"
)

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService returns an AuditService that persists events to the
// append-only audit store. Called from the dispatcher workers.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Process(ctx context.Context, event domain.AuditEvent) error {
	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("audit insert: %w", err)
	}
	metrics.AuditEventsTotal.WithLabelValues(string(event.Action)).Inc()
	s.log.Debug().
		Str("actor_id", event.ActorID).
		Str("action", string(event.Action)).
		Str("entity", event.Entity).
		Msg("audit event recorded")
	return nil
}
