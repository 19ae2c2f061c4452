package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Tripno08/innerview-backend/internal/core/ports"
)

// StudentHandler handles HTTP requests for student records.
type StudentHandler struct {
	service ports.StudentService
}

func NewStudentHandler(service ports.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

type createStudentRequest struct {
	InstitutionID string `json:"institution_id" validate:"required"`
	Name          string `json:"name"           validate:"required"`
	BirthDate     string `json:"birth_date"     validate:"required"`
	Grade         string `json:"grade"          validate:"required"`
}

type updateStudentRequest struct {
	Name  string `json:"name"  validate:"required"`
	Grade string `json:"grade" validate:"required"`
}

// Create registers a new student.
//
// @Summary      Create a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStudentRequest  true  "Student details"
// @Success      201   {object}  domain.Student
// @Failure      400   {object}  map[string]string
// @Router       /students [post]
func (h *StudentHandler) Create(c echo.Context) error {
	var req createStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "birth_date must be YYYY-MM-DD")
	}

	actorID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	student, err := h.service.Create(c.Request().Context(), actorID, ports.CreateStudentInput{
		InstitutionID: req.InstitutionID,
		Name:          req.Name,
		BirthDate:     birthDate,
		Grade:         req.Grade,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, student)
}

// Get returns a single student.
//
// @Summary      Get a student
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Student id"
// @Success      200  {object}  domain.Student
// @Failure      404  {object}  map[string]string
// @Router       /students/{id} [get]
func (h *StudentHandler) Get(c echo.Context) error {
	student, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

// List returns students, optionally filtered by institution.
//
// @Summary      List students
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Param        institution_id  query     string  false  "Institution filter"
// @Success      200             {array}   domain.Student
// @Router       /students [get]
func (h *StudentHandler) List(c echo.Context) error {
	students, err := h.service.List(c.Request().Context(), c.QueryParam("institution_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, students)
}

// Update replaces a student's mutable fields.
//
// @Summary      Update a student
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Student id"
// @Param        body  body      updateStudentRequest  true  "Fields to update"
// @Success      200   {object}  domain.Student
// @Failure      404   {object}  map[string]string
// @Router       /students/{id} [put]
func (h *StudentHandler) Update(c echo.Context) error {
	var req updateStudentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	student, err := h.service.Update(c.Request().Context(), ports.UpdateStudentInput{
		ID:    c.Param("id"),
		Name:  req.Name,
		Grade: req.Grade,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

// Delete removes a student record.
//
// @Summary      Delete a student
// @Tags         students
// @Security     BearerAuth
// @Param        id  path  string  true  "Student id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /students/{id} [delete]
func (h *StudentHandler) Delete(c echo.Context) error {
	actorID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), actorID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
