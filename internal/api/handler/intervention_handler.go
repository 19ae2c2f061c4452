package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Tripno08/innerview-backend/internal/core/domain"
	"github.com/Tripno08/innerview-backend/internal/core/ports"
)

// InterventionHandler handles HTTP requests for interventions.
type InterventionHandler struct {
	service ports.InterventionService
}

func NewInterventionHandler(service ports.InterventionService) *InterventionHandler {
	return &InterventionHandler{service: service}
}

type createInterventionRequest struct {
	StudentID   string `json:"student_id"  validate:"required"`
	Difficulty  string `json:"difficulty"`
	Description string `json:"description" validate:"required"`
}

type changeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PLANNED ACTIVE COMPLETED CANCELLED"`
}

// Create plans a new intervention for a student.
//
// @Summary      Plan an intervention
// @Tags         interventions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInterventionRequest  true  "Intervention details"
// @Success      201   {object}  domain.Intervention
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /interventions [post]
func (h *InterventionHandler) Create(c echo.Context) error {
	var req createInterventionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	intervention, err := h.service.Create(c.Request().Context(), ports.CreateInterventionInput{
		StudentID:   req.StudentID,
		Difficulty:  req.Difficulty,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, intervention)
}

// Get returns a single intervention.
//
// @Summary      Get an intervention
// @Tags         interventions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Intervention id"
// @Success      200  {object}  domain.Intervention
// @Failure      404  {object}  map[string]string
// @Router       /interventions/{id} [get]
func (h *InterventionHandler) Get(c echo.Context) error {
	intervention, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, intervention)
}

// ListByStudent returns the interventions tied to one student.
//
// @Summary      List a student's interventions
// @Tags         interventions
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Student id"
// @Success      200  {array}   domain.Intervention
// @Router       /students/{id}/interventions [get]
func (h *InterventionHandler) ListByStudent(c echo.Context) error {
	interventions, err := h.service.ListByStudent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, interventions)
}

// ChangeStatus advances the intervention state machine.
//
// @Summary      Change an intervention's status
// @Tags         interventions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Intervention id"
// @Param        body  body      changeStatusRequest  true  "New status"
// @Success      200   {object}  domain.Intervention
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /interventions/{id}/status [put]
func (h *InterventionHandler) ChangeStatus(c echo.Context) error {
	var req changeStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	intervention, err := h.service.ChangeStatus(c.Request().Context(), c.Param("id"), domain.InterventionStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, intervention)
}
