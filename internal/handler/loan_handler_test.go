package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colegio-nocedal/panol-api/internal/models"
	"github.com/colegio-nocedal/panol-api/internal/service"
	appErrors "github.com/colegio-nocedal/panol-api/pkg/errors"
	"github.com/colegio-nocedal/panol-api/pkg/response"
)

type fakeLoanRepo struct {
	loans     map[string]*models.LoanDetail
	assignErr error
	returnErr error
	result    *models.ReturnResult
}

func (f *fakeLoanRepo) List(ctx context.Context, filter models.LoanFilter) ([]models.LoanDetail, error) {
	out := []models.LoanDetail{}
	for _, loan := range f.loans {
		out = append(out, *loan)
	}
	return out, nil
}

func (f *fakeLoanRepo) FindByID(ctx context.Context, id string) (*models.LoanDetail, error) {
	return f.loans[id], nil
}

func (f *fakeLoanRepo) AssignAnnual(ctx context.Context, req models.AssignLoanRequest, docRut string) (string, error) {
	if f.assignErr != nil {
		return "", f.assignErr
	}
	return "loan-new", nil
}

func (f *fakeLoanRepo) Return(ctx context.Context, loanID string, req models.ReturnLoanRequest, docRut string) (*models.ReturnResult, error) {
	if f.returnErr != nil {
		return nil, f.returnErr
	}
	return f.result, nil
}

type fakeBoxContents struct{}

func (f *fakeBoxContents) Contents(ctx context.Context, code string) ([]models.ToolboxContentItem, error) {
	return []models.ToolboxContentItem{{InventarioID: "unit-1", ItemNombre: "Alicate universal"}}, nil
}

func newLoanHandler(repo *fakeLoanRepo) *LoanHandler {
	return NewLoanHandler(service.NewLoanService(repo, &fakeBoxContents{}, nil, nil, nil, nil))
}

func assignedLoan() map[string]*models.LoanDetail {
	return map[string]*models.LoanDetail{
		"loan-new": {Loan: models.Loan{
			ID:         "loan-new",
			CajaCodigo: "CAJ-ELEC-001",
			GrupoID:    "grupo-1",
			Anio:       2026,
			Estado:     models.LoanStatusActive,
		}},
	}
}

func TestLoanHandlerAssign(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newLoanHandler(&fakeLoanRepo{loans: assignedLoan()})

	body, _ := json.Marshal(models.AssignLoanRequest{CajaCodigo: "CAJ-ELEC-001", GrupoID: "grupo-1", Anio: 2026})
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/prestamos/asignar", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Assign(c)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Nil(t, envelope.Error)
}

func TestLoanHandlerAssignBoxUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newLoanHandler(&fakeLoanRepo{assignErr: appErrors.ErrBoxUnavailable})

	body, _ := json.Marshal(models.AssignLoanRequest{CajaCodigo: "CAJ-ELEC-001", GrupoID: "grupo-1", Anio: 2026})
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/prestamos/asignar", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Assign(c)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "BOX_UNAVAILABLE", envelope.Error.Code)
}

func TestLoanHandlerAssignMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newLoanHandler(&fakeLoanRepo{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/prestamos/asignar", bytes.NewReader([]byte("{")))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Assign(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoanHandlerReturn(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newLoanHandler(&fakeLoanRepo{result: &models.ReturnResult{
		PrestamoID:     "loan-1",
		Estado:         models.LoanStatusReturned,
		ItemsRevisados: 2,
	}})

	body, _ := json.Marshal(models.ReturnLoanRequest{Revision: []models.ReviewEntry{
		{InventarioID: "unit-1", Presente: true, Condicion: models.UnitConditionGood},
		{InventarioID: "unit-2", Presente: true, Condicion: models.UnitConditionRegular},
	}})
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/prestamos/loan-1/devolver", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "loan-1"}}

	handler.Return(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), models.LoanStatusReturned)
}

func TestLoanHandlerReturnAlreadyClosed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newLoanHandler(&fakeLoanRepo{returnErr: appErrors.ErrLoanClosed})

	body, _ := json.Marshal(models.ReturnLoanRequest{Revision: []models.ReviewEntry{
		{InventarioID: "unit-1", Presente: true},
	}})
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/prestamos/loan-1/devolver", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "loan-1"}}

	handler.Return(c)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoanHandlerReviewChecklist(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newLoanHandler(&fakeLoanRepo{loans: assignedLoan()})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/revision/loan-new", nil)
	c.Params = gin.Params{{Key: "prestamo_id", Value: "loan-new"}}

	handler.ReviewChecklist(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Alicate universal")
}

func TestLoanHandlerGetNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newLoanHandler(&fakeLoanRepo{loans: map[string]*models.LoanDetail{}})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/prestamos/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
