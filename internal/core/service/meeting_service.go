package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Tripno08/innerview-backend/internal/core/domain"
	"github.com/Tripno08/innerview-backend/internal/core/ports"
)

type meetingService struct {
	repo  ports.MeetingRepository
	users ports.UserRepository
	log   zerolog.Logger
}

// NewMeetingService returns the team-meeting use-cases.
func NewMeetingService(repo ports.MeetingRepository, users ports.UserRepository, log zerolog.Logger) ports.MeetingService {
	return &meetingService{repo: repo, users: users, log: log}
}

func (s *meetingService) Create(ctx context.Context, input ports.CreateMeetingInput) (*domain.Meeting, error) {
	meeting, err := domain.NewMeeting(input.InstitutionID, input.Title, input.ScheduledAt)
	if err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, meeting)
}

func (s *meetingService) Get(ctx context.Context, id string) (*domain.Meeting, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *meetingService) List(ctx context.Context, institutionID string) ([]*domain.Meeting, error) {
	return s.repo.List(ctx, institutionID)
}

// AddParticipant attaches an existing user to the meeting. Unknown users are
// rejected so the participant list always references real accounts.
func (s *meetingService) AddParticipant(ctx context.Context, meetingID, userID string) (*domain.Meeting, error) {
	meeting, err := s.repo.FindByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("add participant: %w", err)
	}

	return s.repo.Update(ctx, meeting.AddParticipant(userID))
}

func (s *meetingService) RecordDecision(ctx context.Context, meetingID, decision string) (*domain.Meeting, error) {
	meeting, err := s.repo.FindByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	updated, err := meeting.RecordDecision(decision)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, updated)
}
