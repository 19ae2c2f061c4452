package domain

import "time"

// AuditAction identifies what happened.
type AuditAction string

const (
	AuditLoginSucceeded AuditAction = "login_succeeded"
	AuditLoginFailed    AuditAction = "login_failed"
	AuditUserRegistered AuditAction = "user_registered"
	AuditRoleChanged    AuditAction = "role_changed"
	AuditStudentCreated AuditAction = "student_created"
	AuditStudentDeleted AuditAction = "student_deleted"
)

// AuditEvent is an append-only record of a security-relevant action.
// ActorID is the acting user's id, or the attempted email on failed logins
// where no user resolved.
type AuditEvent struct {
	ActorID  string      `json:"actor_id"`
	Action   AuditAction `json:"action"`
	Entity   string      `json:"entity"`
	EntityID string      `json:"entity_id,omitempty"`
	Occurred time.Time   `json:"occurred"`
}
