package service

import (
	"context"

	"github.com/Tripno08/innerview-backend/internal/core/domain"
)

// stubUserRepository is an in-memory UserRepository. FindByEmail matches
// exactly, like the real store's query; normalization is the caller's job.
// Save counts writes so tests can assert that rejected registrations never
// touch storage.
type stubUserRepository struct {
	byID      map[string]*domain.User
	saveCalls int
	findErr   error
}

func newStubUserRepository() *stubUserRepository {
	return &stubUserRepository{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepository) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	r.saveCalls++
	r.byID[user.ID] = user
	return user, nil
}

func (r *stubUserRepository) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.byID[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.byID[user.ID] = user
	return user, nil
}

func (r *stubUserRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubUserRepository) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

// stubAuditRecorder collects events synchronously.
type stubAuditRecorder struct {
	events []domain.AuditEvent
}

func (a *stubAuditRecorder) Record(event domain.AuditEvent) {
	a.events = append(a.events, event)
}

func (a *stubAuditRecorder) lastAction() domain.AuditAction {
	if len(a.events) == 0 {
		return ""
	}
	return a.events[len(a.events)-1].Action
}

// stubMembership answers membership checks from a fixed map and can simulate
// an infrastructure failure.
type stubMembership struct {
	members map[string]bool // key: userID + "/" + institutionID
	err     error
	calls   int
}

func (m *stubMembership) IsMember(_ context.Context, userID, institutionID string) (bool, error) {
	m.calls++
	if m.err != nil {
		return false, m.err
	}
	return m.members[userID+"/"+institutionID], nil
}
