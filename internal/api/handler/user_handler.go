package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Tripno08/innerview-backend/internal/api/middleware"
	"github.com/Tripno08/innerview-backend/internal/core/domain"
	"github.com/Tripno08/innerview-backend/internal/core/ports"
)

// UserHandler exposes the admin surface over user accounts.
type UserHandler struct {
	users ports.UserRepository
	audit ports.AuditRecorder
	trail ports.AuditRepository
}

func NewUserHandler(users ports.UserRepository, audit ports.AuditRecorder, trail ports.AuditRepository) *UserHandler {
	return &UserHandler{users: users, audit: audit, trail: trail}
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=ADMIN COORDINATOR TEACHER SPECIALIST"`
}

// List returns all user accounts.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// ChangeRole updates a user's role.
//
// @Summary      Change a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      changeRoleRequest  true  "New role"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/{id}/role [put]
func (h *UserHandler) ChangeRole(c echo.Context) error {
	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	user, err := h.users.FindByID(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	updated, err := user.Update(user.Name, role)
	if err != nil {
		return err
	}

	saved, err := h.users.Update(ctx, updated)
	if err != nil {
		return err
	}

	actorID, _ := c.Get(middleware.CtxUserID).(string)
	h.audit.Record(domain.AuditEvent{
		ActorID:  actorID,
		Action:   domain.AuditRoleChanged,
		Entity:   "user",
		EntityID: saved.ID,
		Occurred: time.Now().UTC(),
	})
	return c.JSON(http.StatusOK, saved)
}

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

// AuditTrail returns the most recent audit events where the user acted.
//
// @Summary      List a user's audit trail
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string  true   "User id"
// @Param        limit  query     int     false  "Max events (default 50, capped at 500)"
// @Success      200    {array}   domain.AuditEvent
// @Failure      404    {object}  map[string]string
// @Router       /users/{id}/audit [get]
func (h *UserHandler) AuditTrail(c echo.Context) error {
	ctx := c.Request().Context()
	user, err := h.users.FindByID(ctx, c.Param("id"))
	if err != nil {
		return err
	}

	limit := defaultAuditLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a positive integer")
		}
		limit = parsed
		if limit > maxAuditLimit {
			limit = maxAuditLimit
		}
	}

	events, err := h.trail.ListByActor(ctx, user.ID, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
