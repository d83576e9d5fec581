package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/colegio-nocedal/panol-api/internal/service"
	"github.com/colegio-nocedal/panol-api/pkg/response"
)

// DashboardHandler exposes the landing page endpoints.
type DashboardHandler struct {
	dashboard *service.DashboardService
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(dashboard *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Summary godoc
// @Summary Full dashboard payload
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	dashboard, err := h.dashboard.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dashboard, nil)
}

// Metrics godoc
// @Summary Headline counters
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/metricas [get]
func (h *DashboardHandler) Metrics(c *gin.Context) {
	metrics, err := h.dashboard.Metrics(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, metrics, nil)
}

// WorkshopSummary godoc
// @Summary Per-workshop counters
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/resumen-talleres [get]
func (h *DashboardHandler) WorkshopSummary(c *gin.Context) {
	stats, err := h.dashboard.WorkshopSummary(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, nil)
}

// RecentLoans godoc
// @Summary Latest loan activity
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/prestamos-recientes [get]
func (h *DashboardHandler) RecentLoans(c *gin.Context) {
	recent, err := h.dashboard.RecentLoans(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, recent, nil)
}

// Alerts godoc
// @Summary Attention block
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard/alertas [get]
func (h *DashboardHandler) Alerts(c *gin.Context) {
	alerts, err := h.dashboard.Alerts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, alerts, nil)
}
