package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/colegio-nocedal/panol-api/internal/middleware"
	"github.com/colegio-nocedal/panol-api/internal/models"
	"github.com/colegio-nocedal/panol-api/internal/service"
	appErrors "github.com/colegio-nocedal/panol-api/pkg/errors"
	"github.com/colegio-nocedal/panol-api/pkg/response"
)

// StudentHandler exposes student endpoints.
type StudentHandler struct {
	students *service.StudentService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students *service.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// List godoc
// @Summary List students
// @Tags Alumnos
// @Produce json
// @Param estado query string false "Enrollment status"
// @Param curso query string false "Course code"
// @Param search query string false "Search by name or RUT"
// @Success 200 {object} response.Envelope
// @Router /alumnos [get]
func (h *StudentHandler) List(c *gin.Context) {
	filter := models.StudentFilter{
		Estado:      c.Query("estado"),
		CursoCodigo: c.Query("curso"),
		Search:      strings.TrimSpace(c.Query("search")),
	}
	students, err := h.students.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students, nil)
}

// Get godoc
// @Summary Get student detail
// @Tags Alumnos
// @Produce json
// @Param rut path string true "Student RUT"
// @Success 200 {object} response.Envelope
// @Router /alumnos/{rut} [get]
func (h *StudentHandler) Get(c *gin.Context) {
	student, err := h.students.Get(c.Request.Context(), c.Param("rut"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// Groups godoc
// @Summary Group memberships of a student
// @Tags Alumnos
// @Produce json
// @Param rut path string true "Student RUT"
// @Success 200 {object} response.Envelope
// @Router /alumnos/{rut}/grupos [get]
func (h *StudentHandler) Groups(c *gin.Context) {
	groups, err := h.students.Groups(c.Request.Context(), c.Param("rut"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, groups, nil)
}

// LoanHistory godoc
// @Summary Loan history of a student
// @Tags Alumnos
// @Produce json
// @Param rut path string true "Student RUT"
// @Success 200 {object} response.Envelope
// @Router /alumnos/{rut}/historial [get]
func (h *StudentHandler) LoanHistory(c *gin.Context) {
	loans, err := h.students.LoanHistory(c.Request.Context(), c.Param("rut"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, loans, nil)
}

// Create godoc
// @Summary Register a student
// @Tags Alumnos
// @Accept json
// @Produce json
// @Param payload body service.CreateStudentRequest true "Student payload"
// @Success 201 {object} response.Envelope
// @Router /alumnos [post]
func (h *StudentHandler) Create(c *gin.Context) {
	var req service.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	student, err := h.students.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, student)
}

// Update godoc
// @Summary Edit a student
// @Tags Alumnos
// @Accept json
// @Produce json
// @Param rut path string true "Student RUT"
// @Param payload body service.UpdateStudentRequest true "Student payload"
// @Success 200 {object} response.Envelope
// @Router /alumnos/{rut} [put]
func (h *StudentHandler) Update(c *gin.Context) {
	var req service.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	student, err := h.students.Update(c.Request.Context(), c.Param("rut"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, student, nil)
}

// UpdateStatus godoc
// @Summary Change a student's enrollment status
// @Tags Alumnos
// @Accept json
// @Produce json
// @Param rut path string true "Student RUT"
// @Success 200 {object} response.Envelope
// @Router /alumnos/{rut}/estado [patch]
func (h *StudentHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Estado string `json:"estado" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	if err := h.students.UpdateStatus(c.Request.Context(), c.Param("rut"), req.Estado, middleware.CurrentTeacherRut(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"alu_rut": c.Param("rut"), "alu_estado": req.Estado}, nil)
}
