package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Tripno08/innerview-backend/internal/core/domain"
	"github.com/Tripno08/innerview-backend/internal/core/ports"
)

type stubMeetingRepository struct {
	byID map[string]*domain.Meeting
}

func newStubMeetingRepository() *stubMeetingRepository {
	return &stubMeetingRepository{byID: make(map[string]*domain.Meeting)}
}

func (r *stubMeetingRepository) FindByID(_ context.Context, id string) (*domain.Meeting, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMeetingNotFound
	}
	return m, nil
}

func (r *stubMeetingRepository) Save(_ context.Context, m *domain.Meeting) (*domain.Meeting, error) {
	r.byID[m.ID] = m
	return m, nil
}

func (r *stubMeetingRepository) Update(_ context.Context, m *domain.Meeting) (*domain.Meeting, error) {
	if _, ok := r.byID[m.ID]; !ok {
		return nil, domain.ErrMeetingNotFound
	}
	r.byID[m.ID] = m
	return m, nil
}

func (r *stubMeetingRepository) List(_ context.Context, institutionID string) ([]*domain.Meeting, error) {
	var out []*domain.Meeting
	for _, m := range r.byID {
		if institutionID == "" || m.InstitutionID == institutionID {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestMeetingService_Create_RejectsPast(t *testing.T) {
	svc := NewMeetingService(newStubMeetingRepository(), newStubUserRepository(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateMeetingInput{
		InstitutionID: "inst-1",
		Title:         "Reunião pedagógica",
		ScheduledAt:   time.Now().Add(-time.Hour),
	})
	if !errors.Is(err, domain.ErrMeetingInPast) {
		t.Fatalf("expected ErrMeetingInPast, got %v", err)
	}
}

func TestMeetingService_AddParticipant(t *testing.T) {
	meetings := newStubMeetingRepository()
	users := newStubUserRepository()
	svc := NewMeetingService(meetings, users, zerolog.Nop())

	member := seedUser(t, users, "teacher@x.com", domain.RoleTeacher)

	meeting, err := svc.Create(context.Background(), ports.CreateMeetingInput{
		InstitutionID: "inst-1",
		Title:         "Reunião pedagógica",
		ScheduledAt:   time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.AddParticipant(context.Background(), meeting.ID, member.ID)
	if err != nil {
		t.Fatalf("AddParticipant: %v", err)
	}
	if len(updated.Participants) != 1 || updated.Participants[0] != member.ID {
		t.Fatalf("participant not recorded: %v", updated.Participants)
	}

	// Adding the same user twice keeps the list stable.
	again, err := svc.AddParticipant(context.Background(), meeting.ID, member.ID)
	if err != nil {
		t.Fatalf("AddParticipant repeat: %v", err)
	}
	if len(again.Participants) != 1 {
		t.Fatalf("duplicate participant recorded: %v", again.Participants)
	}

	if _, err := svc.AddParticipant(context.Background(), meeting.ID, "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("unknown user accepted as participant: %v", err)
	}
}

func TestMeetingService_RecordDecision(t *testing.T) {
	meetings := newStubMeetingRepository()
	svc := NewMeetingService(meetings, newStubUserRepository(), zerolog.Nop())

	meeting, err := svc.Create(context.Background(), ports.CreateMeetingInput{
		InstitutionID: "inst-1",
		Title:         "Conselho de classe",
		ScheduledAt:   time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.RecordDecision(context.Background(), meeting.ID, "iniciar intervenção de leitura")
	if err != nil {
		t.Fatalf("RecordDecision: %v", err)
	}
	if len(updated.Decisions) != 1 {
		t.Fatalf("decision not recorded: %v", updated.Decisions)
	}

	if _, err := svc.RecordDecision(context.Background(), meeting.ID, "   "); err == nil {
		t.Fatalf("blank decision accepted")
	}
}
