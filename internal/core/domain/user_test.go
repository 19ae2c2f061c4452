package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewUser_Valid(t *testing.T) {
	user, err := NewUser("Ana", "Ana@X.com", "digest", RoleTeacher)
	if err != nil {
		t.Fatalf("NewUser returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}
	if user.Email != "ana@x.com" {
		t.Fatalf("email not lowercased: %s", user.Email)
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not assigned")
	}
	if user.UpdatedAt.Before(user.CreatedAt) {
		t.Fatalf("UpdatedAt before CreatedAt")
	}
}

func TestNewUser_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		uname   string
		email   string
		role    Role
		wantErr error
	}{
		{"empty name", "", "a@x.com", RoleTeacher, ErrEmptyName},
		{"bad email", "Ana", "not-an-email", RoleTeacher, ErrInvalidEmail},
		{"no tld", "Ana", "ana@host", RoleTeacher, ErrInvalidEmail},
		{"bad role", "Ana", "a@x.com", Role("PRINCIPAL"), ErrInvalidRole},
		{"empty role", "Ana", "a@x.com", Role(""), ErrInvalidRole},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewUser(tc.uname, tc.email, "digest", tc.role); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestUser_Update_Immutability(t *testing.T) {
	original, err := NewUser("Ana", "ana@x.com", "digest", RoleTeacher)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}

	updated, err := original.Update("Ana Maria", RoleCoordinator)
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if updated == original {
		t.Fatalf("Update mutated in place, expected a new instance")
	}
	if updated.ID != original.ID || updated.Email != original.Email || !updated.CreatedAt.Equal(original.CreatedAt) {
		t.Fatalf("Update changed an immutable field")
	}
	if updated.Name != "Ana Maria" || updated.Role != RoleCoordinator {
		t.Fatalf("Update did not apply changes: %+v", updated)
	}
	if updated.UpdatedAt.Before(updated.CreatedAt) {
		t.Fatalf("UpdatedAt moved before CreatedAt")
	}
	if original.Name != "Ana" || original.Role != RoleTeacher {
		t.Fatalf("original instance was mutated")
	}
}

func TestUser_Update_Invalid(t *testing.T) {
	user, _ := NewUser("Ana", "ana@x.com", "digest", RoleTeacher)

	if _, err := user.Update("", RoleTeacher); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if _, err := user.Update("Ana", Role("GUEST")); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestRestoreUser_SkipsCreationChecks(t *testing.T) {
	created := time.Date(2019, 3, 1, 10, 0, 0, 0, time.UTC)
	// A historical record may predate today's policy; restore must not reject it.
	user := RestoreUser("legacy-id", "X", "ana@x.com", "digest", RoleSpecialist, created, created)
	if user.ID != "legacy-id" {
		t.Fatalf("restore replaced the persisted id")
	}
	if !user.CreatedAt.Equal(created) {
		t.Fatalf("restore replaced the persisted timestamps")
	}
}

// Writes from a skewed clock can persist UpdatedAt before CreatedAt; restore
// clamps it forward so the invariant holds in memory.
func TestRestoreUser_ClampsSkewedUpdatedAt(t *testing.T) {
	created := time.Date(2019, 3, 1, 10, 0, 0, 0, time.UTC)
	skewed := created.Add(-time.Hour)

	user := RestoreUser("legacy-id", "X", "ana@x.com", "digest", RoleSpecialist, created, skewed)
	if !user.UpdatedAt.Equal(created) {
		t.Fatalf("UpdatedAt not clamped: %s", user.UpdatedAt)
	}
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole(" admin ")
	if err != nil {
		t.Fatalf("ParseRole returned error: %v", err)
	}
	if role != RoleAdmin {
		t.Fatalf("expected RoleAdmin, got %s", role)
	}

	if _, err := ParseRole("superuser"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"ab", false},
		{"abcdefgh", false}, // no digit
		{"12345678", false}, // no letter
		{"abcd1234", true},
		{"s3nha-forte", true},
		{"abc1234", false}, // seven chars
	}

	for _, tc := range cases {
		err := ValidatePassword(tc.password)
		if tc.ok && err != nil {
			t.Fatalf("password %q rejected: %v", tc.password, err)
		}
		if !tc.ok && !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("password %q: expected ErrWeakPassword, got %v", tc.password, err)
		}
	}
}
