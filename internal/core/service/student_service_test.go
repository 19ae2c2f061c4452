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

func TestStudentService_CreateAndDelete_Audited(t *testing.T) {
	repo := newStubStudentRepository()
	audit := &stubAuditRecorder{}
	svc := NewStudentService(repo, audit, zerolog.Nop())

	created, err := svc.Create(context.Background(), "actor-1", ports.CreateStudentInput{
		InstitutionID: "inst-1",
		Name:          "João",
		BirthDate:     time.Date(2015, 5, 10, 0, 0, 0, 0, time.UTC),
		Grade:         "3A",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if audit.lastAction() != domain.AuditStudentCreated {
		t.Fatalf("expected student_created audit event, got %q", audit.lastAction())
	}

	if err := svc.Delete(context.Background(), "actor-1", created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if audit.lastAction() != domain.AuditStudentDeleted {
		t.Fatalf("expected student_deleted audit event, got %q", audit.lastAction())
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("deleted student still resolves: %v", err)
	}
}

func TestStudentService_Delete_NotFound(t *testing.T) {
	audit := &stubAuditRecorder{}
	svc := NewStudentService(newStubStudentRepository(), audit, zerolog.Nop())

	err := svc.Delete(context.Background(), "actor-1", "missing")
	if !errors.Is(err, domain.ErrStudentNotFound) {
		t.Fatalf("expected ErrStudentNotFound, got %v", err)
	}
	if len(audit.events) != 0 {
		t.Fatalf("failed delete must not emit an audit event")
	}
}

func TestStudentService_Update(t *testing.T) {
	repo := newStubStudentRepository()
	svc := NewStudentService(repo, &stubAuditRecorder{}, zerolog.Nop())

	student := seedStudent(t, repo)

	updated, err := svc.Update(context.Background(), ports.UpdateStudentInput{
		ID:    student.ID,
		Name:  "João Pedro",
		Grade: "4B",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "João Pedro" || updated.Grade != "4B" {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.InstitutionID != student.InstitutionID {
		t.Fatalf("update changed the institution")
	}
}
