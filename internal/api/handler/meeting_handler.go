package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Tripno08/innerview-backend/internal/core/ports"
)

// MeetingHandler handles HTTP requests for team meetings.
type MeetingHandler struct {
	service ports.MeetingService
}

func NewMeetingHandler(service ports.MeetingService) *MeetingHandler {
	return &MeetingHandler{service: service}
}

type createMeetingRequest struct {
	Title       string    `json:"title"        validate:"required"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
}

type addParticipantRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type recordDecisionRequest struct {
	Decision string `json:"decision" validate:"required"`
}

// Create schedules a team meeting for an institution.
//
// @Summary      Schedule a meeting
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        institutionID  path      string                true  "Institution id"
// @Param        body           body      createMeetingRequest  true  "Meeting details"
// @Success      201            {object}  domain.Meeting
// @Failure      400            {object}  map[string]string
// @Router       /institutions/{institutionID}/meetings [post]
func (h *MeetingHandler) Create(c echo.Context) error {
	var req createMeetingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	meeting, err := h.service.Create(c.Request().Context(), ports.CreateMeetingInput{
		InstitutionID: c.Param("institutionID"),
		Title:         req.Title,
		ScheduledAt:   req.ScheduledAt,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, meeting)
}

// Get returns a single meeting.
//
// @Summary      Get a meeting
// @Tags         meetings
// @Produce      json
// @Security     BearerAuth
// @Param        institutionID  path      string  true  "Institution id"
// @Param        id             path      string  true  "Meeting id"
// @Success      200            {object}  domain.Meeting
// @Failure      404            {object}  map[string]string
// @Router       /institutions/{institutionID}/meetings/{id} [get]
func (h *MeetingHandler) Get(c echo.Context) error {
	meeting, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meeting)
}

// List returns an institution's meetings.
//
// @Summary      List meetings
// @Tags         meetings
// @Produce      json
// @Security     BearerAuth
// @Param        institutionID  path     string  true  "Institution id"
// @Success      200            {array}  domain.Meeting
// @Router       /institutions/{institutionID}/meetings [get]
func (h *MeetingHandler) List(c echo.Context) error {
	meetings, err := h.service.List(c.Request().Context(), c.Param("institutionID"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meetings)
}

// AddParticipant attaches a user to the meeting.
//
// @Summary      Add a meeting participant
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        institutionID  path      string                 true  "Institution id"
// @Param        id             path      string                 true  "Meeting id"
// @Param        body           body      addParticipantRequest  true  "Participant"
// @Success      200            {object}  domain.Meeting
// @Failure      404            {object}  map[string]string
// @Router       /institutions/{institutionID}/meetings/{id}/participants [post]
func (h *MeetingHandler) AddParticipant(c echo.Context) error {
	var req addParticipantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	meeting, err := h.service.AddParticipant(c.Request().Context(), c.Param("id"), req.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meeting)
}

// RecordDecision appends a decision to the meeting minutes.
//
// @Summary      Record a meeting decision
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        institutionID  path      string                 true  "Institution id"
// @Param        id             path      string                 true  "Meeting id"
// @Param        body           body      recordDecisionRequest  true  "Decision"
// @Success      200            {object}  domain.Meeting
// @Failure      404            {object}  map[string]string
// @Router       /institutions/{institutionID}/meetings/{id}/decisions [post]
func (h *MeetingHandler) RecordDecision(c echo.Context) error {
	var req recordDecisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	meeting, err := h.service.RecordDecision(c.Request().Context(), c.Param("id"), req.Decision)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meeting)
}
