package ports

import (
	"context"
	"time"

	"github.com/Tripno08/innerview-backend/internal/core/domain"
)

// StudentRepository persists student records.
type StudentRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Student, error)
	Save(ctx context.Context, student *domain.Student) (*domain.Student, error)
	Update(ctx context.Context, student *domain.Student) (*domain.Student, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, institutionID string) ([]*domain.Student, error)
}

// CreateStudentInput carries all data needed to register a student.
type CreateStudentInput struct {
	InstitutionID string
	Name          string
	BirthDate     time.Time
	Grade         string
}

// UpdateStudentInput carries the mutable student fields.
type UpdateStudentInput struct {
	ID    string
	Name  string
	Grade string
}

// StudentService defines use-case operations for students.
type StudentService interface {
	Create(ctx context.Context, actorID string, input CreateStudentInput) (*domain.Student, error)
	Get(ctx context.Context, id string) (*domain.Student, error)
	List(ctx context.Context, institutionID string) ([]*domain.Student, error)
	Update(ctx context.Context, input UpdateStudentInput) (*domain.Student, error)
	Delete(ctx context.Context, actorID, id string) error
}
