package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/colegio-nocedal/panol-api/internal/middleware"
	"github.com/colegio-nocedal/panol-api/internal/models"
	"github.com/colegio-nocedal/panol-api/internal/service"
	appErrors "github.com/colegio-nocedal/panol-api/pkg/errors"
	"github.com/colegio-nocedal/panol-api/pkg/response"
)

// InventoryHandler exposes the tool catalog endpoints.
type InventoryHandler struct {
	inventory *service.InventoryService
}

// NewInventoryHandler constructs InventoryHandler.
func NewInventoryHandler(inventory *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventory: inventory}
}

// Catalog godoc
// @Summary List catalog items with unit counts
// @Tags Inventario
// @Produce json
// @Param taller query string false "Workshop code"
// @Param categoria query string false "Category"
// @Param search query string false "Search by name or code"
// @Success 200 {object} response.Envelope
// @Router /inventario [get]
func (h *InventoryHandler) Catalog(c *gin.Context) {
	filter := models.InventoryFilter{
		TallerCodigo: c.Query("taller"),
		Categoria:    c.Query("categoria"),
		Search:       c.Query("search"),
	}
	items, err := h.inventory.Catalog(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// GetItem godoc
// @Summary Get catalog item detail
// @Tags Inventario
// @Produce json
// @Param codigo path string true "Item code"
// @Success 200 {object} response.Envelope
// @Router /inventario/{codigo} [get]
func (h *InventoryHandler) GetItem(c *gin.Context) {
	item, err := h.inventory.GetItem(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// Units godoc
// @Summary List physical units of a catalog item
// @Tags Inventario
// @Produce json
// @Param codigo path string true "Item code"
// @Success 200 {object} response.Envelope
// @Router /inventario/{codigo}/unidades [get]
func (h *InventoryHandler) Units(c *gin.Context) {
	units, err := h.inventory.Units(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, units, nil)
}

// AvailableUnits godoc
// @Summary Count the available units of a catalog item
// @Tags Inventario
// @Produce json
// @Param codigo path string true "Item code"
// @Success 200 {object} response.Envelope
// @Router /inventario/{codigo}/disponibles [get]
func (h *InventoryHandler) AvailableUnits(c *gin.Context) {
	count, err := h.inventory.AvailableUnits(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"cantidad": count}, nil)
}

// CreateItem godoc
// @Summary Register a catalog item with an initial batch
// @Tags Inventario
// @Accept json
// @Produce json
// @Param payload body models.CreateItemRequest true "Item payload"
// @Success 201 {object} response.Envelope
// @Router /inventario [post]
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req models.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	item, err := h.inventory.CreateItem(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// UpdateUnitStatus godoc
// @Summary Change the state of a physical unit
// @Tags Inventario
// @Accept json
// @Produce json
// @Param inv_id path string true "Unit ID"
// @Param payload body models.UpdateUnitStatusRequest true "New state"
// @Success 200 {object} response.Envelope
// @Router /inventario/unidades/{inv_id}/estado [patch]
func (h *InventoryHandler) UpdateUnitStatus(c *gin.Context) {
	var req models.UpdateUnitStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	if err := h.inventory.UpdateUnitStatus(c.Request.Context(), c.Param("inv_id"), req, middleware.CurrentTeacherRut(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"inv_id": c.Param("inv_id"), "estado": req.Estado}, nil)
}

// ReportMissing godoc
// @Summary Report a unit as missing
// @Tags Inventario
// @Accept json
// @Produce json
// @Param payload body models.ReportMissingRequest true "Missing report"
// @Success 201 {object} response.Envelope
// @Router /inventario/faltantes [post]
func (h *InventoryHandler) ReportMissing(c *gin.Context) {
	var req models.ReportMissingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	if err := h.inventory.ReportMissing(c.Request.Context(), req, middleware.CurrentTeacherRut(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"inv_id": req.InventarioID, "tipo": models.ProblemTypeMissing})
}
