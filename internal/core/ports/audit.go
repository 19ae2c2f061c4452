package ports

import (
	"context"

	"github.com/Tripno08/innerview-backend/internal/core/domain"
)

// AuditRecorder accepts an event for asynchronous recording. Implementations
// must not block the caller beyond a bounded enqueue; audit is
// observability-grade and never gates an auth or CRUD result.
type AuditRecorder interface {
	Record(event domain.AuditEvent)
}

// AuditService processes a single audit event (called by the dispatcher
// workers, one event at a time per actor shard).
type AuditService interface {
	Process(ctx context.Context, event domain.AuditEvent) error
}

// AuditRepository is the append-only audit store.
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuditEvent) error
	ListByActor(ctx context.Context, actorID string, limit int) ([]domain.AuditEvent, error)
}
