package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Tripno08/innerview-backend/internal/api/middleware"
	"github.com/Tripno08/innerview-backend/internal/core/domain"
)

type stubTrailRepository struct {
	gotActorID string
	gotLimit   int
	events     []domain.AuditEvent
}

func (r *stubTrailRepository) Insert(_ context.Context, _ domain.AuditEvent) error { return nil }

func (r *stubTrailRepository) ListByActor(_ context.Context, actorID string, limit int) ([]domain.AuditEvent, error) {
	r.gotActorID = actorID
	r.gotLimit = limit
	return r.events, nil
}

type userStore struct {
	user *domain.User
}

func (s *userStore) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *userStore) FindByID(_ context.Context, id string) (*domain.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, domain.ErrUserNotFound
	}
	return s.user, nil
}

func (s *userStore) Save(_ context.Context, u *domain.User) (*domain.User, error) { return u, nil }

func (s *userStore) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	s.user = u
	return u, nil
}

func (s *userStore) Delete(_ context.Context, _ string) error { return nil }

func (s *userStore) List(_ context.Context) ([]*domain.User, error) {
	if s.user == nil {
		return nil, nil
	}
	return []*domain.User{s.user}, nil
}

type recordedAudit struct {
	events []domain.AuditEvent
}

func (a *recordedAudit) Record(event domain.AuditEvent) { a.events = append(a.events, event) }

func newTrailContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_AuditTrail_LimitHandling(t *testing.T) {
	user, err := domain.NewUser("Ana", "ana@x.com", "digest", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	trail := &stubTrailRepository{events: []domain.AuditEvent{{
		ActorID:  user.ID,
		Action:   domain.AuditLoginSucceeded,
		Entity:   "user",
		Occurred: time.Now().UTC(),
	}}}
	h := NewUserHandler(&userStore{user: user}, &recordedAudit{}, trail)

	cases := []struct {
		name      string
		query     string
		wantLimit int
	}{
		{"default", "", 50},
		{"explicit", "?limit=10", 10},
		{"clamped", "?limit=1000000000", 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newTrailContext("/users/" + user.ID + "/audit" + tc.query)
			c.SetParamNames("id")
			c.SetParamValues(user.ID)

			if err := h.AuditTrail(c); err != nil {
				t.Fatalf("AuditTrail: %v", err)
			}
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if trail.gotLimit != tc.wantLimit {
				t.Fatalf("repository asked for limit %d, want %d", trail.gotLimit, tc.wantLimit)
			}
			if trail.gotActorID != user.ID {
				t.Fatalf("repository queried actor %q", trail.gotActorID)
			}
		})
	}
}

func TestUserHandler_AuditTrail_BadLimit(t *testing.T) {
	user, _ := domain.NewUser("Ana", "ana@x.com", "digest", domain.RoleAdmin)
	h := NewUserHandler(&userStore{user: user}, &recordedAudit{}, &stubTrailRepository{})

	for _, query := range []string{"?limit=abc", "?limit=0", "?limit=-5"} {
		c, _ := newTrailContext("/users/" + user.ID + "/audit" + query)
		c.SetParamNames("id")
		c.SetParamValues(user.ID)

		err := h.AuditTrail(c)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("limit %q: expected 400, got %v", query, err)
		}
	}
}

func TestUserHandler_ChangeRole_EmitsAudit(t *testing.T) {
	user, _ := domain.NewUser("Ana", "ana@x.com", "digest", domain.RoleTeacher)
	store := &userStore{user: user}
	audit := &recordedAudit{}
	h := NewUserHandler(store, audit, &stubTrailRepository{})

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPut, "/users/"+user.ID+"/role",
		strings.NewReader(`{"role":"COORDINATOR"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(user.ID)
	c.Set(middleware.CtxUserID, "admin-1")

	if err := h.ChangeRole(c); err != nil {
		t.Fatalf("ChangeRole: %v", err)
	}
	if store.user.Role != domain.RoleCoordinator {
		t.Fatalf("role not persisted: %s", store.user.Role)
	}
	if len(audit.events) != 1 || audit.events[0].Action != domain.AuditRoleChanged {
		t.Fatalf("expected one role_changed event, got %+v", audit.events)
	}
	if audit.events[0].ActorID != "admin-1" || audit.events[0].EntityID != user.ID {
		t.Fatalf("event attribution wrong: %+v", audit.events[0])
	}
}
