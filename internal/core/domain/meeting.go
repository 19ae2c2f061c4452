package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Meeting is a team meeting discussing students and interventions.
type Meeting struct {
	ID            string    `json:"id"`
	InstitutionID string    `json:"institution_id"`
	Title         string    `json:"title"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Participants  []string  `json:"participants"`
	Decisions     []string  `json:"decisions"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewMeeting creates a meeting scheduled for a future time.
func NewMeeting(institutionID, title string, scheduledAt time.Time) (*Meeting, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyName
	}
	now := time.Now().UTC()
	if !scheduledAt.After(now) {
		return nil, ErrMeetingInPast
	}
	return &Meeting{
		ID:            uuid.NewString(),
		InstitutionID: institutionID,
		Title:         title,
		ScheduledAt:   scheduledAt.UTC(),
		Participants:  []string{},
		Decisions:     []string{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// AddParticipant returns a new instance including the given user. Adding an
// already-present participant is a no-op on the membership, not an error.
func (m *Meeting) AddParticipant(userID string) *Meeting {
	updated := *m
	updated.Participants = append([]string(nil), m.Participants...)
	for _, p := range updated.Participants {
		if p == userID {
			return &updated
		}
	}
	updated.Participants = append(updated.Participants, userID)
	updated.UpdatedAt = time.Now().UTC()
	return &updated
}

// RecordDecision returns a new instance with the decision appended.
func (m *Meeting) RecordDecision(decision string) (*Meeting, error) {
	decision = strings.TrimSpace(decision)
	if decision == "" {
		return nil, ErrEmptyName
	}
	updated := *m
	updated.Decisions = append(append([]string(nil), m.Decisions...), decision)
	updated.UpdatedAt = time.Now().UTC()
	return &updated, nil
}
