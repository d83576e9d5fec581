package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colegio-nocedal/panol-api/internal/models"
	appErrors "github.com/colegio-nocedal/panol-api/pkg/errors"
)

type stubReportRepo struct {
	loans []models.LoanDetail
	items []models.ItemSummary
}

func (s *stubReportRepo) Loans(ctx context.Context, filter models.ReportFilter) ([]models.LoanDetail, error) {
	return s.loans, nil
}

func (s *stubReportRepo) Problems(ctx context.Context, filter models.ReportFilter) ([]models.ProblemItemDetail, error) {
	return nil, nil
}

func (s *stubReportRepo) History(ctx context.Context, filter models.MovementFilter) ([]models.MovementDetail, error) {
	return nil, nil
}

func (s *stubReportRepo) InventorySummary(ctx context.Context, filter models.ReportFilter) ([]models.ItemSummary, error) {
	return s.items, nil
}

func TestReportServiceExportLoansCSV(t *testing.T) {
	taller := "Electricidad"
	repo := &stubReportRepo{loans: []models.LoanDetail{{
		Loan: models.Loan{
			ID:          "loan-1",
			CajaCodigo:  "CAJ-ELEC-001",
			Anio:        2026,
			FechaInicio: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			Estado:      models.LoanStatusActive,
		},
		GrupoNumero:  3,
		TallerNombre: &taller,
	}}}
	svc := NewReportService(repo, nil)

	payload, contentType, err := svc.ExportLoans(context.Background(), models.ReportFilter{}, "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Contains(t, string(payload), "CAJ-ELEC-001")
	assert.Contains(t, string(payload), "2026-03-02")
}

func TestReportServiceExportInventoryPDF(t *testing.T) {
	repo := &stubReportRepo{items: []models.ItemSummary{{
		Item:          models.Item{Codigo: "MART-01", Nombre: "Martillo carpintero"},
		TotalUnidades: 30,
	}}}
	svc := NewReportService(repo, nil)

	payload, contentType, err := svc.ExportInventory(context.Background(), models.ReportFilter{}, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.Equal(t, "%PDF", string(payload[:4]))
}

func TestReportServiceExportUnknownFormat(t *testing.T) {
	svc := NewReportService(&stubReportRepo{loans: []models.LoanDetail{}}, nil)

	_, _, err := svc.ExportLoans(context.Background(), models.ReportFilter{}, "xlsx")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
