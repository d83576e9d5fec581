package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/colegio-nocedal/panol-api/internal/models"
	"github.com/colegio-nocedal/panol-api/internal/service"
	"github.com/colegio-nocedal/panol-api/pkg/response"
)

// ReportHandler exposes the reporting endpoints, JSON and file exports.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func reportFilterFromQuery(c *gin.Context) models.ReportFilter {
	anio, _ := strconv.Atoi(c.Query("anio"))
	return models.ReportFilter{
		TallerCodigo: c.Query("taller"),
		Anio:         anio,
		Estado:       c.Query("estado"),
		FechaInicio:  c.Query("fecha_inicio"),
		FechaFin:     c.Query("fecha_fin"),
	}
}

// Loans godoc
// @Summary Loan report
// @Tags Reportes
// @Produce json
// @Param taller query string false "Workshop code"
// @Param anio query int false "School year"
// @Param estado query string false "Loan status"
// @Param fecha_inicio query string false "From date (YYYY-MM-DD)"
// @Param fecha_fin query string false "To date (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /reportes/prestamos [get]
func (h *ReportHandler) Loans(c *gin.Context) {
	loans, err := h.reports.Loans(c.Request.Context(), reportFilterFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, loans, nil)
}

// Problems godoc
// @Summary Missing and damaged items report
// @Tags Reportes
// @Produce json
// @Param taller query string false "Workshop code"
// @Param estado query string false "Report status"
// @Success 200 {object} response.Envelope
// @Router /reportes/items-problematicos [get]
func (h *ReportHandler) Problems(c *gin.Context) {
	problems, err := h.reports.Problems(c.Request.Context(), reportFilterFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, problems, nil)
}

// History godoc
// @Summary Movement trail report
// @Tags Reportes
// @Produce json
// @Param tipo query string false "Movement type"
// @Param caja query string false "Box code"
// @Param fecha_inicio query string false "From date (YYYY-MM-DD)"
// @Param fecha_fin query string false "To date (YYYY-MM-DD)"
// @Param limit query int false "Max rows"
// @Success 200 {object} response.Envelope
// @Router /reportes/historial [get]
func (h *ReportHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	filter := models.MovementFilter{
		Tipo:        c.Query("tipo"),
		CajaCodigo:  c.Query("caja"),
		FechaInicio: c.Query("fecha_inicio"),
		FechaFin:    c.Query("fecha_fin"),
		Limit:       limit,
	}
	movements, err := h.reports.History(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, movements, nil)
}

// Inventory godoc
// @Summary Stock report
// @Tags Reportes
// @Produce json
// @Param taller query string false "Workshop code"
// @Success 200 {object} response.Envelope
// @Router /reportes/inventario [get]
func (h *ReportHandler) Inventory(c *gin.Context) {
	items, err := h.reports.Inventory(c.Request.Context(), reportFilterFromQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// ExportLoans godoc
// @Summary Download the loan report as CSV or PDF
// @Tags Reportes
// @Produce text/csv
// @Produce application/pdf
// @Param formato query string false "csv or pdf"
// @Success 200 {file} file
// @Router /reportes/prestamos/exportar [get]
func (h *ReportHandler) ExportLoans(c *gin.Context) {
	h.export(c, "prestamos", func(format string) ([]byte, string, error) {
		return h.reports.ExportLoans(c.Request.Context(), reportFilterFromQuery(c), format)
	})
}

// ExportInventory godoc
// @Summary Download the stock report as CSV or PDF
// @Tags Reportes
// @Produce text/csv
// @Produce application/pdf
// @Param formato query string false "csv or pdf"
// @Success 200 {file} file
// @Router /reportes/inventario/exportar [get]
func (h *ReportHandler) ExportInventory(c *gin.Context) {
	h.export(c, "inventario", func(format string) ([]byte, string, error) {
		return h.reports.ExportInventory(c.Request.Context(), reportFilterFromQuery(c), format)
	})
}

func (h *ReportHandler) export(c *gin.Context, name string, render func(format string) ([]byte, string, error)) {
	format := c.DefaultQuery("formato", models.ExportFormatCSV)
	payload, contentType, err := render(format)
	if err != nil {
		response.Error(c, err)
		return
	}

	ext := models.ExportFormatCSV
	if format == models.ExportFormatPDF {
		ext = models.ExportFormatPDF
	}
	filename := fmt.Sprintf("reporte_%s_%s.%s", name, time.Now().Format("20060102"), ext)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, payload)
}
