package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/colegio-nocedal/panol-api/internal/models"
	appErrors "github.com/colegio-nocedal/panol-api/pkg/errors"
)

// dashboardCachePattern matches every cached dashboard payload. Loan
// mutations invalidate it so counters never lag behind reality.
const dashboardCachePattern = "dashboard:*"

type loanRepository interface {
	List(ctx context.Context, filter models.LoanFilter) ([]models.LoanDetail, error)
	FindByID(ctx context.Context, id string) (*models.LoanDetail, error)
	AssignAnnual(ctx context.Context, req models.AssignLoanRequest, docRut string) (string, error)
	Return(ctx context.Context, loanID string, req models.ReturnLoanRequest, docRut string) (*models.ReturnResult, error)
}

type loanToolboxRepository interface {
	Contents(ctx context.Context, code string) ([]models.ToolboxContentItem, error)
}

// LoanService orchestrates annual toolbox loans.
type LoanService struct {
	repo      loanRepository
	boxes     loanToolboxRepository
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLoanService constructs a LoanService instance.
func NewLoanService(repo loanRepository, boxes loanToolboxRepository, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *LoanService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &LoanService{repo: repo, boxes: boxes, cache: cache, metrics: metrics, validator: validate, logger: logger}
}

// List returns loans for the requested year and filters.
func (s *LoanService) List(ctx context.Context, filter models.LoanFilter) ([]models.LoanDetail, error) {
	loans, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron listar los préstamos")
	}
	if loans == nil {
		loans = []models.LoanDetail{}
	}
	return loans, nil
}

// Get returns one loan with naming.
func (s *LoanService) Get(ctx context.Context, id string) (*models.LoanDetail, error) {
	loan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo obtener el préstamo")
	}
	if loan == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "préstamo no encontrado")
	}
	return loan, nil
}

// Assign creates the annual loan. Precondition failures surface as
// typed conflicts so the frontend can tell "box taken" from "group
// already served" without parsing messages.
func (s *LoanService) Assign(ctx context.Context, req models.AssignLoanRequest, docRut string) (*models.LoanDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "solicitud de préstamo inválida")
	}

	loanID, err := s.repo.AssignAnnual(ctx, req, docRut)
	if err != nil {
		var appErr *appErrors.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo asignar la caja")
	}

	s.metrics.RecordLoanAssigned()
	s.cache.Invalidate(ctx, dashboardCachePattern)
	s.logger.Info("loan assigned",
		zap.String("loan_id", loanID),
		zap.String("caja", req.CajaCodigo),
		zap.String("grupo", req.GrupoID),
		zap.Int("anio", req.Anio))

	return s.Get(ctx, loanID)
}

// ReviewChecklist returns the loan plus the box contents the reviewer
// must verify one by one before closing it.
func (s *LoanService) ReviewChecklist(ctx context.Context, loanID string) (*models.ReviewChecklist, error) {
	loan, err := s.Get(ctx, loanID)
	if err != nil {
		return nil, err
	}

	items, err := s.boxes.Contents(ctx, loan.CajaCodigo)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo obtener el contenido de la caja")
	}
	if items == nil {
		items = []models.ToolboxContentItem{}
	}
	return &models.ReviewChecklist{Prestamo: *loan, Items: items}, nil
}

// Return processes the end-of-year review and closes the loan.
func (s *LoanService) Return(ctx context.Context, loanID string, req models.ReturnLoanRequest, docRut string) (*models.ReturnResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "revisión inválida: se requiere al menos un item")
	}

	result, err := s.repo.Return(ctx, loanID, req, docRut)
	if err != nil {
		var appErr *appErrors.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo procesar la devolución")
	}

	s.metrics.RecordLoanReturned(result.ItemsFaltantes, result.ItemsDanados)
	s.cache.Invalidate(ctx, dashboardCachePattern)
	s.logger.Info("loan returned",
		zap.String("loan_id", loanID),
		zap.String("estado", result.Estado),
		zap.Int("faltantes", result.ItemsFaltantes),
		zap.Int("danados", result.ItemsDanados))

	return result, nil
}
