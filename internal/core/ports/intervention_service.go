package ports

import (
	"context"

	"github.com/Tripno08/innerview-backend/internal/core/domain"
)

// InterventionRepository persists intervention records.
type InterventionRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Intervention, error)
	Save(ctx context.Context, intervention *domain.Intervention) (*domain.Intervention, error)
	Update(ctx context.Context, intervention *domain.Intervention) (*domain.Intervention, error)
	ListByStudent(ctx context.Context, studentID string) ([]*domain.Intervention, error)
}

// CreateInterventionInput carries all data needed to plan an intervention.
type CreateInterventionInput struct {
	StudentID   string
	Difficulty  string
	Description string
}

// InterventionService defines use-case operations for interventions.
type InterventionService interface {
	Create(ctx context.Context, input CreateInterventionInput) (*domain.Intervention, error)
	Get(ctx context.Context, id string) (*domain.Intervention, error)
	ListByStudent(ctx context.Context, studentID string) ([]*domain.Intervention, error)
	// ChangeStatus advances the intervention state machine; an illegal move
	// surfaces domain.ErrInvalidTransition.
	ChangeStatus(ctx context.Context, id string, next domain.InterventionStatus) (*domain.Intervention, error)
}
