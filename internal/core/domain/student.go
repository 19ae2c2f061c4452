package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Student is a tracked learner within an institution.
type Student struct {
	ID            string    `json:"id"`
	InstitutionID string    `json:"institution_id"`
	Name          string    `json:"name"`
	BirthDate     time.Time `json:"birth_date"`
	Grade         string    `json:"grade"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewStudent creates a student record with a fresh id and UTC timestamps.
func NewStudent(institutionID, name string, birthDate time.Time, grade string) (*Student, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	now := time.Now().UTC()
	return &Student{
		ID:            uuid.NewString(),
		InstitutionID: institutionID,
		Name:          name,
		BirthDate:     birthDate,
		Grade:         grade,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Update returns a new instance with the mutable fields replaced.
func (s *Student) Update(name, grade string) (*Student, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	updated := *s
	updated.Name = name
	updated.Grade = grade
	updated.UpdatedAt = time.Now().UTC()
	return &updated, nil
}
