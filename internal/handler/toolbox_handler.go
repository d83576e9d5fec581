package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/colegio-nocedal/panol-api/internal/middleware"
	"github.com/colegio-nocedal/panol-api/internal/models"
	"github.com/colegio-nocedal/panol-api/internal/service"
	appErrors "github.com/colegio-nocedal/panol-api/pkg/errors"
	"github.com/colegio-nocedal/panol-api/pkg/response"
)

// ToolboxHandler exposes toolbox endpoints.
type ToolboxHandler struct {
	boxes *service.ToolboxService
}

// NewToolboxHandler constructs ToolboxHandler.
func NewToolboxHandler(boxes *service.ToolboxService) *ToolboxHandler {
	return &ToolboxHandler{boxes: boxes}
}

// List godoc
// @Summary List toolboxes with completeness
// @Tags Cajas
// @Produce json
// @Param taller query string false "Workshop code"
// @Param estado query string false "Box status"
// @Success 200 {object} response.Envelope
// @Router /cajas [get]
func (h *ToolboxHandler) List(c *gin.Context) {
	filter := models.ToolboxFilter{
		TallerCodigo: c.Query("taller"),
		Estado:       c.Query("estado"),
	}
	boxes, err := h.boxes.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, boxes, nil)
}

// ListAvailable godoc
// @Summary List available boxes of a workshop
// @Tags Cajas
// @Produce json
// @Param taller query string true "Workshop code"
// @Success 200 {object} response.Envelope
// @Router /cajas/disponibles [get]
func (h *ToolboxHandler) ListAvailable(c *gin.Context) {
	boxes, err := h.boxes.ListAvailable(c.Request.Context(), c.Query("taller"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, boxes, nil)
}

// Get godoc
// @Summary Get toolbox detail
// @Tags Cajas
// @Produce json
// @Param codigo path string true "Box code"
// @Success 200 {object} response.Envelope
// @Router /cajas/{codigo} [get]
func (h *ToolboxHandler) Get(c *gin.Context) {
	box, err := h.boxes.Get(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, box, nil)
}

// Available godoc
// @Summary Whether a toolbox can be assigned right now
// @Tags Cajas
// @Produce json
// @Param codigo path string true "Box code"
// @Success 200 {object} response.Envelope
// @Router /cajas/{codigo}/disponible [get]
func (h *ToolboxHandler) Available(c *gin.Context) {
	available, err := h.boxes.IsAvailable(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"disponible": available}, nil)
}

// Contents godoc
// @Summary List units inside a toolbox
// @Tags Cajas
// @Produce json
// @Param codigo path string true "Box code"
// @Success 200 {object} response.Envelope
// @Router /cajas/{codigo}/contenido [get]
func (h *ToolboxHandler) Contents(c *gin.Context) {
	items, err := h.boxes.Contents(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// History godoc
// @Summary Movement trail of a toolbox
// @Tags Cajas
// @Produce json
// @Param codigo path string true "Box code"
// @Param limit query int false "Max rows"
// @Success 200 {object} response.Envelope
// @Router /cajas/{codigo}/historial [get]
func (h *ToolboxHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	movements, err := h.boxes.History(c.Request.Context(), c.Param("codigo"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, movements, nil)
}

// Create godoc
// @Summary Register a toolbox
// @Tags Cajas
// @Accept json
// @Produce json
// @Param payload body models.CreateToolboxRequest true "Box payload"
// @Success 201 {object} response.Envelope
// @Router /cajas [post]
func (h *ToolboxHandler) Create(c *gin.Context) {
	var req models.CreateToolboxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	box, err := h.boxes.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, box)
}

// UpdateStatus godoc
// @Summary Change the administrative state of a toolbox
// @Tags Cajas
// @Accept json
// @Produce json
// @Param codigo path string true "Box code"
// @Param payload body models.UpdateToolboxStatusRequest true "New state"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /cajas/{codigo}/estado [patch]
func (h *ToolboxHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateToolboxStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	box, err := h.boxes.UpdateStatus(c.Request.Context(), c.Param("codigo"), req, middleware.CurrentTeacherRut(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, box, nil)
}
