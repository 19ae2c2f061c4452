package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Tripno08/innerview-backend/internal/api/metrics"
	"github.com/Tripno08/innerview-backend/internal/core/domain"
	"github.com/Tripno08/innerview-backend/internal/core/ports"
)

type interventionService struct {
	repo     ports.InterventionRepository
	students ports.StudentRepository
	log      zerolog.Logger
}

// NewInterventionService returns the intervention use-cases.
func NewInterventionService(
	repo ports.InterventionRepository,
	students ports.StudentRepository,
	log zerolog.Logger,
) ports.InterventionService {
	return &interventionService{repo: repo, students: students, log: log}
}

func (s *interventionService) Create(ctx context.Context, input ports.CreateInterventionInput) (*domain.Intervention, error) {
	// An intervention must reference an existing student.
	if _, err := s.students.FindByID(ctx, input.StudentID); err != nil {
		return nil, err
	}

	intervention, err := domain.NewIntervention(input.StudentID, input.Difficulty, input.Description)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Save(ctx, intervention)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("intervention_id", created.ID).Str("student_id", created.StudentID).Msg("intervention planned")
	return created, nil
}

func (s *interventionService) Get(ctx context.Context, id string) (*domain.Intervention, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *interventionService) ListByStudent(ctx context.Context, studentID string) ([]*domain.Intervention, error) {
	return s.repo.ListByStudent(ctx, studentID)
}

func (s *interventionService) ChangeStatus(ctx context.Context, id string, next domain.InterventionStatus) (*domain.Intervention, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	moved, err := current.Transition(next)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) {
			return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, current.Status, next)
		}
		return nil, err
	}

	updated, err := s.repo.Update(ctx, moved)
	if err != nil {
		return nil, err
	}

	metrics.InterventionTransitionsTotal.WithLabelValues(string(next)).Inc()
	return updated, nil
}
