package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colegio-nocedal/panol-api/internal/models"
	appErrors "github.com/colegio-nocedal/panol-api/pkg/errors"
)

type stubLoanRepo struct {
	loans     map[string]*models.LoanDetail
	assignErr error
	returnErr error
	assigned  []models.AssignLoanRequest
	result    *models.ReturnResult
}

func (s *stubLoanRepo) List(ctx context.Context, filter models.LoanFilter) ([]models.LoanDetail, error) {
	out := []models.LoanDetail{}
	for _, loan := range s.loans {
		out = append(out, *loan)
	}
	return out, nil
}

func (s *stubLoanRepo) FindByID(ctx context.Context, id string) (*models.LoanDetail, error) {
	return s.loans[id], nil
}

func (s *stubLoanRepo) AssignAnnual(ctx context.Context, req models.AssignLoanRequest, docRut string) (string, error) {
	if s.assignErr != nil {
		return "", s.assignErr
	}
	s.assigned = append(s.assigned, req)
	return "loan-new", nil
}

func (s *stubLoanRepo) Return(ctx context.Context, loanID string, req models.ReturnLoanRequest, docRut string) (*models.ReturnResult, error) {
	if s.returnErr != nil {
		return nil, s.returnErr
	}
	return s.result, nil
}

type stubBoxContents struct {
	items []models.ToolboxContentItem
}

func (s *stubBoxContents) Contents(ctx context.Context, code string) ([]models.ToolboxContentItem, error) {
	return s.items, nil
}

func sampleLoanDetail() *models.LoanDetail {
	return &models.LoanDetail{
		Loan: models.Loan{
			ID:         "loan-new",
			CajaCodigo: "CAJ-ELEC-001",
			GrupoID:    "grupo-1",
			Anio:       2026,
			Estado:     models.LoanStatusActive,
		},
		GrupoNumero: 3,
	}
}

func TestLoanServiceAssign(t *testing.T) {
	repo := &stubLoanRepo{loans: map[string]*models.LoanDetail{"loan-new": sampleLoanDetail()}}
	svc := NewLoanService(repo, &stubBoxContents{}, nil, nil, nil, nil)

	loan, err := svc.Assign(context.Background(), models.AssignLoanRequest{
		CajaCodigo: "CAJ-ELEC-001",
		GrupoID:    "grupo-1",
		Anio:       2026,
	}, "11111111-1")
	require.NoError(t, err)
	assert.Equal(t, "loan-new", loan.ID)
	require.Len(t, repo.assigned, 1)
}

func TestLoanServiceAssignValidation(t *testing.T) {
	svc := NewLoanService(&stubLoanRepo{}, &stubBoxContents{}, nil, nil, nil, nil)

	_, err := svc.Assign(context.Background(), models.AssignLoanRequest{CajaCodigo: ""}, "11111111-1")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestLoanServiceAssignConflictPassthrough(t *testing.T) {
	repo := &stubLoanRepo{assignErr: appErrors.ErrBoxUnavailable}
	svc := NewLoanService(repo, &stubBoxContents{}, nil, nil, nil, nil)

	_, err := svc.Assign(context.Background(), models.AssignLoanRequest{
		CajaCodigo: "CAJ-ELEC-001",
		GrupoID:    "grupo-1",
		Anio:       2026,
	}, "11111111-1")
	assert.ErrorIs(t, err, appErrors.ErrBoxUnavailable)
}

func TestLoanServiceAssignInternalError(t *testing.T) {
	repo := &stubLoanRepo{assignErr: errors.New("db down")}
	svc := NewLoanService(repo, &stubBoxContents{}, nil, nil, nil, nil)

	_, err := svc.Assign(context.Background(), models.AssignLoanRequest{
		CajaCodigo: "CAJ-ELEC-001",
		GrupoID:    "grupo-1",
		Anio:       2026,
	}, "11111111-1")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErr.Code)
}

func TestLoanServiceReturn(t *testing.T) {
	repo := &stubLoanRepo{result: &models.ReturnResult{
		PrestamoID:     "loan-1",
		Estado:         models.LoanStatusReturnedPartial,
		ItemsRevisados: 3,
		ItemsFaltantes: 1,
		ItemsDanados:   1,
	}}
	svc := NewLoanService(repo, &stubBoxContents{}, nil, nil, nil, nil)

	result, err := svc.Return(context.Background(), "loan-1", models.ReturnLoanRequest{
		Revision: []models.ReviewEntry{{InventarioID: "unit-1", Presente: true}},
	}, "11111111-1")
	require.NoError(t, err)
	assert.Equal(t, models.LoanStatusReturnedPartial, result.Estado)
}

func TestLoanServiceReturnRequiresEntries(t *testing.T) {
	svc := NewLoanService(&stubLoanRepo{}, &stubBoxContents{}, nil, nil, nil, nil)

	_, err := svc.Return(context.Background(), "loan-1", models.ReturnLoanRequest{}, "11111111-1")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestLoanServiceReturnClosedPassthrough(t *testing.T) {
	repo := &stubLoanRepo{returnErr: appErrors.ErrLoanClosed}
	svc := NewLoanService(repo, &stubBoxContents{}, nil, nil, nil, nil)

	_, err := svc.Return(context.Background(), "loan-1", models.ReturnLoanRequest{
		Revision: []models.ReviewEntry{{InventarioID: "unit-1", Presente: true}},
	}, "11111111-1")
	assert.ErrorIs(t, err, appErrors.ErrLoanClosed)
}

func TestLoanServiceReviewChecklist(t *testing.T) {
	repo := &stubLoanRepo{loans: map[string]*models.LoanDetail{"loan-new": sampleLoanDetail()}}
	boxes := &stubBoxContents{items: []models.ToolboxContentItem{
		{InventarioID: "unit-1", ItemNombre: "Martillo carpintero", Estado: models.UnitStatusAssigned},
	}}
	svc := NewLoanService(repo, boxes, nil, nil, nil, nil)

	checklist, err := svc.ReviewChecklist(context.Background(), "loan-new")
	require.NoError(t, err)
	assert.Equal(t, "loan-new", checklist.Prestamo.ID)
	require.Len(t, checklist.Items, 1)
	assert.Equal(t, "Martillo carpintero", checklist.Items[0].ItemNombre)
}

func TestLoanServiceGetNotFound(t *testing.T) {
	svc := NewLoanService(&stubLoanRepo{loans: map[string]*models.LoanDetail{}}, &stubBoxContents{}, nil, nil, nil, nil)

	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}
