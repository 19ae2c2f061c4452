package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// InterventionStatus is the lifecycle state of an intervention.
type InterventionStatus string

const (
	InterventionPlanned   InterventionStatus = "PLANNED"
	InterventionActive    InterventionStatus = "ACTIVE"
	InterventionCompleted InterventionStatus = "COMPLETED"
	InterventionCancelled InterventionStatus = "CANCELLED"
)

// validInterventionTransitions defines the allowed state machine:
// PLANNED → ACTIVE | CANCELLED, ACTIVE → COMPLETED | CANCELLED.
var validInterventionTransitions = map[InterventionStatus][]InterventionStatus{
	InterventionPlanned: {InterventionActive, InterventionCancelled},
	InterventionActive:  {InterventionCompleted, InterventionCancelled},
}

// CanTransitionTo reports whether moving from s to next is allowed.
func (s InterventionStatus) CanTransitionTo(next InterventionStatus) bool {
	for _, allowed := range validInterventionTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// Intervention is a planned action addressing a student's learning difficulty.
type Intervention struct {
	ID          string             `json:"id"`
	StudentID   string             `json:"student_id"`
	Difficulty  string             `json:"difficulty,omitempty"`
	Description string             `json:"description"`
	Status      InterventionStatus `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// NewIntervention creates an intervention in the PLANNED state.
func NewIntervention(studentID, difficulty, description string) (*Intervention, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyName
	}
	now := time.Now().UTC()
	return &Intervention{
		ID:          uuid.NewString(),
		StudentID:   studentID,
		Difficulty:  difficulty,
		Description: description,
		Status:      InterventionPlanned,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Transition returns a new instance in the next status, or
// ErrInvalidTransition when the state machine forbids the move.
func (i *Intervention) Transition(next InterventionStatus) (*Intervention, error) {
	if !i.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}
	updated := *i
	updated.Status = next
	updated.UpdatedAt = time.Now().UTC()
	return &updated, nil
}
