package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Tripno08/innerview-backend/internal/api/metrics"
	"github.com/Tripno08/innerview-backend/internal/core/domain"
	"github.com/Tripno08/innerview-backend/internal/core/ports"
)

type studentService struct {
	repo  ports.StudentRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

// NewStudentService returns the student use-cases.
func NewStudentService(repo ports.StudentRepository, audit ports.AuditRecorder, log zerolog.Logger) ports.StudentService {
	return &studentService{repo: repo, audit: audit, log: log}
}

func (s *studentService) Create(ctx context.Context, actorID string, input ports.CreateStudentInput) (*domain.Student, error) {
	student, err := domain.NewStudent(input.InstitutionID, input.Name, input.BirthDate, input.Grade)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Save(ctx, student)
	if err != nil {
		return nil, err
	}

	metrics.StudentsCreatedTotal.Inc()
	s.audit.Record(domain.AuditEvent{
		ActorID:  actorID,
		Action:   domain.AuditStudentCreated,
		Entity:   "student",
		EntityID: created.ID,
		Occurred: time.Now().UTC(),
	})
	s.log.Info().Str("student_id", created.ID).Str("institution_id", created.InstitutionID).Msg("student created")

	return created, nil
}

func (s *studentService) Get(ctx context.Context, id string) (*domain.Student, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *studentService) List(ctx context.Context, institutionID string) ([]*domain.Student, error) {
	return s.repo.List(ctx, institutionID)
}

func (s *studentService) Update(ctx context.Context, input ports.UpdateStudentInput) (*domain.Student, error) {
	current, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	updated, err := current.Update(input.Name, input.Grade)
	if err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, updated)
}

func (s *studentService) Delete(ctx context.Context, actorID, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(domain.AuditEvent{
		ActorID:  actorID,
		Action:   domain.AuditStudentDeleted,
		Entity:   "student",
		EntityID: id,
		Occurred: time.Now().UTC(),
	})
	return nil
}
