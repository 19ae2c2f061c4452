package ports

import (
	"context"
	"time"

	"github.com/Tripno08/innerview-backend/internal/core/domain"
)

// MeetingRepository persists team meeting records.
type MeetingRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Meeting, error)
	Save(ctx context.Context, meeting *domain.Meeting) (*domain.Meeting, error)
	Update(ctx context.Context, meeting *domain.Meeting) (*domain.Meeting, error)
	List(ctx context.Context, institutionID string) ([]*domain.Meeting, error)
}

// CreateMeetingInput carries all data needed to schedule a meeting.
type CreateMeetingInput struct {
	InstitutionID string
	Title         string
	ScheduledAt   time.Time
}

// MeetingService defines use-case operations for team meetings.
type MeetingService interface {
	Create(ctx context.Context, input CreateMeetingInput) (*domain.Meeting, error)
	Get(ctx context.Context, id string) (*domain.Meeting, error)
	List(ctx context.Context, institutionID string) ([]*domain.Meeting, error)
	AddParticipant(ctx context.Context, meetingID, userID string) (*domain.Meeting, error)
	RecordDecision(ctx context.Context, meetingID, decision string) (*domain.Meeting, error)
}
