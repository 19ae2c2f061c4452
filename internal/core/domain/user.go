package domain

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Role is the closed set of roles a user can hold.
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleCoordinator Role = "COORDINATOR"
	RoleTeacher     Role = "TEACHER"
	RoleSpecialist  Role = "SPECIALIST"
)

// DefaultRole is assigned when registration omits a role.
// TEACHER is the least-privileged role of the set.
const DefaultRole = RoleTeacher

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCoordinator, RoleTeacher, RoleSpecialist:
		return true
	}
	return false
}

// ParseRole maps a stored string onto the closed role set. The persistence
// layer must go through this function so an unknown value surfaces as
// ErrInvalidRole instead of leaking into the domain.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail maps an address to its canonical form. Every lookup and every
// stored value must go through this so uniqueness stays case-insensitive end
// to end.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail checks the address format. Registration runs this before any
// other work so a malformed address short-circuits the workflow.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

const minPasswordLength = 8

// ValidatePassword enforces the credential policy: at least eight characters
// with at least one letter and one digit.
func ValidatePassword(plaintext string) error {
	if len(plaintext) < minPasswordLength {
		return ErrWeakPassword
	}
	var hasLetter, hasDigit bool
	for _, r := range plaintext {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}

// User is the identity aggregate. Instances are only built through NewUser,
// RestoreUser, or Update; fields are never mutated in place after
// construction.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser creates a brand-new user with a fresh id and UTC timestamps.
// The email is lowercased so uniqueness is case-insensitive end to end.
func NewUser(name, email, passwordHash string, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	email = NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	now := time.Now().UTC()
	return &User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// RestoreUser rehydrates a persisted user. It deliberately skips the
// creation-only checks so historical records load even if today's policy
// would reject them. An UpdatedAt preceding CreatedAt (clock-skewed writes)
// is clamped forward.
func RestoreUser(id, name, email, passwordHash string, role Role, createdAt, updatedAt time.Time) *User {
	if updatedAt.Before(createdAt) {
		updatedAt = createdAt
	}
	return &User{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// Update returns a new validated instance with the given name and role.
// ID, email, and CreatedAt are immutable.
func (u *User) Update(name string, role Role) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	updated := *u
	updated.Name = name
	updated.Role = role
	updated.UpdatedAt = time.Now().UTC()
	return &updated, nil
}
