package domain

import "errors"

// Identity and access-control errors.
var (
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password does not meet the minimum policy")
	ErrEmptyName          = errors.New("name must not be empty")
	ErrInvalidRole        = errors.New("invalid role")
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("access forbidden")
)

// Domain record errors.
var (
	ErrStudentNotFound      = errors.New("student not found")
	ErrInterventionNotFound = errors.New("intervention not found")
	ErrMeetingNotFound      = errors.New("meeting not found")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrMeetingInPast        = errors.New("meeting must be scheduled in the future")
)
