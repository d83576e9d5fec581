package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/colegio-nocedal/panol-api/internal/models"
	appErrors "github.com/colegio-nocedal/panol-api/pkg/errors"
	"github.com/colegio-nocedal/panol-api/pkg/export"
)

type reportRepository interface {
	Loans(ctx context.Context, filter models.ReportFilter) ([]models.LoanDetail, error)
	Problems(ctx context.Context, filter models.ReportFilter) ([]models.ProblemItemDetail, error)
	History(ctx context.Context, filter models.MovementFilter) ([]models.MovementDetail, error)
	InventorySummary(ctx context.Context, filter models.ReportFilter) ([]models.ItemSummary, error)
}

// ReportService runs the reporting queries and renders exports.
type ReportService struct {
	repo   reportRepository
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
	logger *zap.Logger
}

// NewReportService constructs a ReportService instance.
func NewReportService(repo reportRepository, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{repo: repo, csv: export.NewCSVExporter(), pdf: export.NewPDFExporter(), logger: logger}
}

// Loans returns the loan report rows.
func (s *ReportService) Loans(ctx context.Context, filter models.ReportFilter) ([]models.LoanDetail, error) {
	loans, err := s.repo.Loans(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo generar el reporte de préstamos")
	}
	if loans == nil {
		loans = []models.LoanDetail{}
	}
	return loans, nil
}

// Problems returns the missing/damaged report rows.
func (s *ReportService) Problems(ctx context.Context, filter models.ReportFilter) ([]models.ProblemItemDetail, error) {
	problems, err := s.repo.Problems(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo generar el reporte de items problemáticos")
	}
	if problems == nil {
		problems = []models.ProblemItemDetail{}
	}
	return problems, nil
}

// History returns the movement trail report rows.
func (s *ReportService) History(ctx context.Context, filter models.MovementFilter) ([]models.MovementDetail, error) {
	movements, err := s.repo.History(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo generar el historial")
	}
	if movements == nil {
		movements = []models.MovementDetail{}
	}
	return movements, nil
}

// Inventory returns the stock report rows.
func (s *ReportService) Inventory(ctx context.Context, filter models.ReportFilter) ([]models.ItemSummary, error) {
	items, err := s.repo.InventorySummary(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo generar el reporte de inventario")
	}
	if items == nil {
		items = []models.ItemSummary{}
	}
	return items, nil
}

// ExportLoans renders the loan report as CSV or PDF.
func (s *ReportService) ExportLoans(ctx context.Context, filter models.ReportFilter, format string) ([]byte, string, error) {
	loans, err := s.Loans(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	dataset := export.Dataset{
		Headers: []string{"Préstamo", "Caja", "Grupo", "Curso", "Taller", "Año", "Inicio", "Término", "Estado", "Docente"},
	}
	for _, loan := range loans {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Préstamo": loan.ID,
			"Caja":     loan.CajaCodigo,
			"Grupo":    fmt.Sprintf("Grupo %d", loan.GrupoNumero),
			"Curso":    deref(loan.CursoNombre),
			"Taller":   deref(loan.TallerNombre),
			"Año":      fmt.Sprintf("%d", loan.Anio),
			"Inicio":   loan.FechaInicio.Format("2006-01-02"),
			"Término":  formatDate(loan.FechaFin),
			"Estado":   loan.Estado,
			"Docente":  deref(loan.DocenteNombre),
		})
	}
	return s.render(dataset, "Reporte de préstamos", format)
}

// ExportInventory renders the stock report as CSV or PDF.
func (s *ReportService) ExportInventory(ctx context.Context, filter models.ReportFilter, format string) ([]byte, string, error) {
	items, err := s.Inventory(ctx, filter)
	if err != nil {
		return nil, "", err
	}

	dataset := export.Dataset{
		Headers: []string{"Código", "Item", "Categoría", "Taller", "Total", "Disponibles", "Asignadas", "Extraviadas"},
	}
	for _, item := range items {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Código":      item.Codigo,
			"Item":        item.Nombre,
			"Categoría":   deref(item.Categoria),
			"Taller":      deref(item.TallerNombre),
			"Total":       fmt.Sprintf("%d", item.TotalUnidades),
			"Disponibles": fmt.Sprintf("%d", item.UnidadesDisponibles),
			"Asignadas":   fmt.Sprintf("%d", item.UnidadesAsignadas),
			"Extraviadas": fmt.Sprintf("%d", item.UnidadesExtraviadas),
		})
	}
	return s.render(dataset, "Reporte de inventario", format)
}

func (s *ReportService) render(dataset export.Dataset, title, format string) ([]byte, string, error) {
	switch format {
	case models.ExportFormatPDF:
		payload, err := s.pdf.Render(dataset, title)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo generar el PDF")
		}
		return payload, "application/pdf", nil
	case models.ExportFormatCSV, "":
		payload, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo generar el CSV")
		}
		return payload, "text/csv", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "formato no soportado: use csv o pdf")
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
