package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/colegio-nocedal/panol-api/internal/middleware"
	"github.com/colegio-nocedal/panol-api/internal/models"
	"github.com/colegio-nocedal/panol-api/internal/service"
	appErrors "github.com/colegio-nocedal/panol-api/pkg/errors"
	"github.com/colegio-nocedal/panol-api/pkg/response"
)

// GroupHandler exposes student group endpoints.
type GroupHandler struct {
	groups *service.GroupService
}

// NewGroupHandler constructs GroupHandler.
func NewGroupHandler(groups *service.GroupService) *GroupHandler {
	return &GroupHandler{groups: groups}
}

// List godoc
// @Summary List groups
// @Tags Grupos
// @Produce json
// @Param curso query string false "Course code"
// @Param anio query int false "School year"
// @Success 200 {object} response.Envelope
// @Router /grupos [get]
func (h *GroupHandler) List(c *gin.Context) {
	var filter models.GroupFilter
	filter.CursoCodigo = c.Query("curso")
	if anio, err := strconv.Atoi(c.Query("anio")); err == nil {
		filter.Anio = anio
	}
	groups, err := h.groups.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, groups, nil)
}

// ListWithoutLoan godoc
// @Summary Groups still waiting for a toolbox this year
// @Tags Grupos
// @Produce json
// @Param anio query int false "School year, defaults to the current one"
// @Success 200 {object} response.Envelope
// @Router /grupos/sin-prestamo [get]
func (h *GroupHandler) ListWithoutLoan(c *gin.Context) {
	anio, err := strconv.Atoi(c.Query("anio"))
	if err != nil || anio <= 0 {
		anio = time.Now().Year()
	}
	groups, err := h.groups.ListWithoutLoan(c.Request.Context(), anio)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, groups, nil)
}

// Get godoc
// @Summary Get group detail
// @Tags Grupos
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} response.Envelope
// @Router /grupos/{id} [get]
func (h *GroupHandler) Get(c *gin.Context) {
	group, err := h.groups.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, group, nil)
}

// Members godoc
// @Summary List group members
// @Tags Grupos
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} response.Envelope
// @Router /grupos/{id}/integrantes [get]
func (h *GroupHandler) Members(c *gin.Context) {
	members, err := h.groups.Members(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, members, nil)
}

// Create godoc
// @Summary Create a group with initial members
// @Tags Grupos
// @Accept json
// @Produce json
// @Param payload body models.CreateGroupRequest true "Group payload"
// @Success 201 {object} response.Envelope
// @Router /grupos [post]
func (h *GroupHandler) Create(c *gin.Context) {
	var req models.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	group, err := h.groups.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, group)
}

// AddMember godoc
// @Summary Add a student to a group
// @Tags Grupos
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Param payload body models.AddMemberRequest true "Member payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /grupos/{id}/integrantes [post]
func (h *GroupHandler) AddMember(c *gin.Context) {
	var req models.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	if err := h.groups.AddMember(c.Request.Context(), c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"gru_id": c.Param("id"), "alu_rut": req.AlumnoRut})
}

// HasLoan godoc
// @Summary Whether the group already holds a loan this year
// @Tags Grupos
// @Produce json
// @Param id path string true "Group ID"
// @Param anio query int false "School year, defaults to the current one"
// @Success 200 {object} response.Envelope
// @Router /grupos/{id}/tiene-prestamo [get]
func (h *GroupHandler) HasLoan(c *gin.Context) {
	anio, err := strconv.Atoi(c.Query("anio"))
	if err != nil || anio <= 0 {
		anio = time.Now().Year()
	}
	has, err := h.groups.HasLoan(c.Request.Context(), c.Param("id"), anio)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"tiene_prestamo": has}, nil)
}

// UpdateStatus godoc
// @Summary Soft-delete or reactivate a group
// @Tags Grupos
// @Accept json
// @Produce json
// @Param id path string true "Group ID"
// @Success 200 {object} response.Envelope
// @Router /grupos/{id}/estado [put]
func (h *GroupHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Estado string `json:"estado" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	if err := h.groups.UpdateStatus(c.Request.Context(), c.Param("id"), req.Estado, middleware.CurrentTeacherRut(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"gru_id": c.Param("id"), "gru_estado": req.Estado}, nil)
}

// RemoveMember godoc
// @Summary Remove a student from a group
// @Tags Grupos
// @Param id path string true "Group ID"
// @Param rut path string true "Student RUT"
// @Success 204 {object} nil
// @Router /grupos/{id}/integrantes/{rut} [delete]
func (h *GroupHandler) RemoveMember(c *gin.Context) {
	if err := h.groups.RemoveMember(c.Request.Context(), c.Param("id"), c.Param("rut")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
