package domain

import (
	"errors"
	"testing"
)

func TestInterventionStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from InterventionStatus
		to   InterventionStatus
		ok   bool
	}{
		{InterventionPlanned, InterventionActive, true},
		{InterventionPlanned, InterventionCancelled, true},
		{InterventionPlanned, InterventionCompleted, false},
		{InterventionActive, InterventionCompleted, true},
		{InterventionActive, InterventionCancelled, true},
		{InterventionActive, InterventionPlanned, false},
		{InterventionCompleted, InterventionActive, false},
		{InterventionCancelled, InterventionActive, false},
		{InterventionPlanned, InterventionPlanned, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.ok {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.ok)
		}
	}
}

func TestIntervention_Transition(t *testing.T) {
	iv, err := NewIntervention("student-1", "reading", "daily fluency sessions")
	if err != nil {
		t.Fatalf("NewIntervention: %v", err)
	}
	if iv.Status != InterventionPlanned {
		t.Fatalf("new intervention must start PLANNED, got %s", iv.Status)
	}

	active, err := iv.Transition(InterventionActive)
	if err != nil {
		t.Fatalf("PLANNED -> ACTIVE: %v", err)
	}
	if iv.Status != InterventionPlanned {
		t.Fatalf("Transition mutated the original instance")
	}

	done, err := active.Transition(InterventionCompleted)
	if err != nil {
		t.Fatalf("ACTIVE -> COMPLETED: %v", err)
	}

	if _, err := done.Transition(InterventionActive); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("COMPLETED is terminal, expected ErrInvalidTransition, got %v", err)
	}
}

func TestNewIntervention_EmptyDescription(t *testing.T) {
	if _, err := NewIntervention("student-1", "reading", "   "); err == nil {
		t.Fatalf("expected error for blank description")
	}
}
