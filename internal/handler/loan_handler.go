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

// LoanHandler exposes the loan lifecycle endpoints.
type LoanHandler struct {
	loans *service.LoanService
}

// NewLoanHandler constructs LoanHandler.
func NewLoanHandler(loans *service.LoanService) *LoanHandler {
	return &LoanHandler{loans: loans}
}

// List godoc
// @Summary List loans
// @Tags Prestamos
// @Produce json
// @Param anio query int false "School year, defaults to the current one"
// @Param estado query string false "Loan status"
// @Param taller query string false "Workshop code"
// @Success 200 {object} response.Envelope
// @Router /prestamos [get]
func (h *LoanHandler) List(c *gin.Context) {
	filter := models.LoanFilter{Anio: time.Now().Year()}
	if anio, err := strconv.Atoi(c.Query("anio")); err == nil {
		filter.Anio = anio
	}
	filter.Estado = c.Query("estado")
	filter.TallerCodigo = c.Query("taller")

	loans, err := h.loans.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, loans, nil)
}

// Get godoc
// @Summary Get loan detail
// @Tags Prestamos
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} response.Envelope
// @Router /prestamos/{id} [get]
func (h *LoanHandler) Get(c *gin.Context) {
	loan, err := h.loans.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, loan, nil)
}

// Assign godoc
// @Summary Assign a toolbox to a group for the year
// @Tags Prestamos
// @Accept json
// @Produce json
// @Param payload body models.AssignLoanRequest true "Assignment"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /prestamos/asignar [post]
func (h *LoanHandler) Assign(c *gin.Context) {
	var req models.AssignLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	loan, err := h.loans.Assign(c.Request.Context(), req, middleware.CurrentTeacherRut(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, loan)
}

// Return godoc
// @Summary Process a loan return with its item review
// @Tags Prestamos
// @Accept json
// @Produce json
// @Param id path string true "Loan ID"
// @Param payload body models.ReturnLoanRequest true "Review entries"
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /prestamos/{id}/devolver [post]
func (h *LoanHandler) Return(c *gin.Context) {
	var req models.ReturnLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "payload inválido"))
		return
	}
	result, err := h.loans.Return(c.Request.Context(), c.Param("id"), req, middleware.CurrentTeacherRut(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// ReviewChecklist godoc
// @Summary Review checklist for a loan return
// @Tags Revision
// @Produce json
// @Param prestamo_id path string true "Loan ID"
// @Success 200 {object} response.Envelope
// @Router /revision/{prestamo_id} [get]
func (h *LoanHandler) ReviewChecklist(c *gin.Context) {
	checklist, err := h.loans.ReviewChecklist(c.Request.Context(), c.Param("prestamo_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, checklist, nil)
}
