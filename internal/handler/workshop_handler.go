package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/colegio-nocedal/panol-api/internal/models"
	"github.com/colegio-nocedal/panol-api/internal/service"
	appErrors "github.com/colegio-nocedal/panol-api/pkg/errors"
	"github.com/colegio-nocedal/panol-api/pkg/response"
)

// WorkshopHandler exposes workshop and course endpoints.
type WorkshopHandler struct {
	workshops *service.WorkshopService
}

// NewWorkshopHandler constructs WorkshopHandler.
func NewWorkshopHandler(workshops *service.WorkshopService) *WorkshopHandler {
	return &WorkshopHandler{workshops: workshops}
}

// List godoc
// @Summary List workshops
// @Tags Talleres
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /talleres [get]
func (h *WorkshopHandler) List(c *gin.Context) {
	workshops, err := h.workshops.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, workshops, nil)
}

// Stats godoc
// @Summary Per-workshop statistics
// @Tags Talleres
// @Produce json
// @Param taller query string false "Restrict to one workshop code"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /talleres/estadisticas [get]
func (h *WorkshopHandler) Stats(c *gin.Context) {
	stats, err := h.workshops.Stats(c.Request.Context(), c.Query("taller"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, nil)
}

// Create godoc
// @Summary Register a workshop
// @Tags Talleres
// @Accept json
// @Produce json
// @Param payload body models.CreateWorkshopRequest true "Workshop payload"
// @Success 201 {object} response.Envelope
// @Router /talleres [post]
func (h *WorkshopHandler) Create(c *gin.Context) {
	var req models.CreateWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	workshop, err := h.workshops.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, workshop)
}

// Update godoc
// @Summary Edit a workshop
// @Tags Talleres
// @Accept json
// @Produce json
// @Param codigo path string true "Workshop code"
// @Param payload body models.UpdateWorkshopRequest true "Workshop payload"
// @Success 200 {object} response.Envelope
// @Router /talleres/{codigo} [put]
func (h *WorkshopHandler) Update(c *gin.Context) {
	var req models.UpdateWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	workshop, err := h.workshops.Update(c.Request.Context(), c.Param("codigo"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, workshop, nil)
}

// Get godoc
// @Summary Get workshop detail
// @Tags Talleres
// @Produce json
// @Param codigo path string true "Workshop code"
// @Success 200 {object} response.Envelope
// @Router /talleres/{codigo} [get]
func (h *WorkshopHandler) Get(c *gin.Context) {
	workshop, err := h.workshops.Get(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, workshop, nil)
}

// Composition godoc
// @Summary Standard toolbox composition of a workshop
// @Tags Talleres
// @Produce json
// @Param codigo path string true "Workshop code"
// @Success 200 {object} response.Envelope
// @Router /talleres/{codigo}/composicion [get]
func (h *WorkshopHandler) Composition(c *gin.Context) {
	entries, err := h.workshops.Composition(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}

// Courses godoc
// @Summary List courses
// @Tags Cursos
// @Produce json
// @Param taller query string false "Workshop code"
// @Param anio query int false "School year"
// @Success 200 {object} response.Envelope
// @Router /cursos [get]
func (h *WorkshopHandler) Courses(c *gin.Context) {
	anio, _ := strconv.Atoi(c.Query("anio"))
	courses, err := h.workshops.Courses(c.Request.Context(), c.Query("taller"), anio)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, nil)
}

// CreateCourse godoc
// @Summary Register a course section
// @Tags Cursos
// @Accept json
// @Produce json
// @Param payload body models.CreateCourseRequest true "Course payload"
// @Success 201 {object} response.Envelope
// @Router /cursos [post]
func (h *WorkshopHandler) CreateCourse(c *gin.Context) {
	var req models.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	course, err := h.workshops.CreateCourse(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, course)
}

// Course godoc
// @Summary Get course detail
// @Tags Cursos
// @Produce json
// @Param codigo path string true "Course code"
// @Success 200 {object} response.Envelope
// @Router /cursos/{codigo} [get]
func (h *WorkshopHandler) Course(c *gin.Context) {
	course, err := h.workshops.Course(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course, nil)
}
