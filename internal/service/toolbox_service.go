package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/colegio-nocedal/panol-api/internal/models"
	appErrors "github.com/colegio-nocedal/panol-api/pkg/errors"
)

type toolboxRepository interface {
	List(ctx context.Context, filter models.ToolboxFilter) ([]models.ToolboxDetail, error)
	FindByCode(ctx context.Context, code string) (*models.ToolboxDetail, error)
	ListAvailable(ctx context.Context, tallerCodigo string) ([]models.ToolboxDetail, error)
	Contents(ctx context.Context, code string) ([]models.ToolboxContentItem, error)
	History(ctx context.Context, code string, limit int) ([]models.MovementDetail, error)
	Create(ctx context.Context, req models.CreateToolboxRequest) error
	UpdateStatus(ctx context.Context, code, estado, observaciones, docRut string) (bool, error)
}

// ToolboxService exposes toolbox listings and administrative state changes.
type ToolboxService struct {
	repo      toolboxRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewToolboxService constructs a ToolboxService instance.
func NewToolboxService(repo toolboxRepository, validate *validator.Validate, logger *zap.Logger) *ToolboxService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ToolboxService{repo: repo, validator: validate, logger: logger}
}

// List returns boxes with completeness, filtered by workshop and state.
func (s *ToolboxService) List(ctx context.Context, filter models.ToolboxFilter) ([]models.ToolboxDetail, error) {
	boxes, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron listar las cajas")
	}
	if boxes == nil {
		boxes = []models.ToolboxDetail{}
	}
	return boxes, nil
}

// Get returns one box with its completeness.
func (s *ToolboxService) Get(ctx context.Context, code string) (*models.ToolboxDetail, error) {
	box, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo obtener la caja")
	}
	if box == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "caja no encontrada")
	}
	return box, nil
}

// IsAvailable reports whether a box can be assigned right now.
func (s *ToolboxService) IsAvailable(ctx context.Context, code string) (bool, error) {
	box, err := s.Get(ctx, code)
	if err != nil {
		return false, err
	}
	return box.Estado == models.ToolboxStatusAvailable, nil
}

// ListAvailable returns the DISPONIBLE boxes of a workshop.
func (s *ToolboxService) ListAvailable(ctx context.Context, tallerCodigo string) ([]models.ToolboxDetail, error) {
	boxes, err := s.repo.ListAvailable(ctx, tallerCodigo)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron listar las cajas disponibles")
	}
	if boxes == nil {
		boxes = []models.ToolboxDetail{}
	}
	return boxes, nil
}

// Contents returns the units currently inside a box.
func (s *ToolboxService) Contents(ctx context.Context, code string) ([]models.ToolboxContentItem, error) {
	if _, err := s.Get(ctx, code); err != nil {
		return nil, err
	}
	items, err := s.repo.Contents(ctx, code)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo obtener el contenido de la caja")
	}
	if items == nil {
		items = []models.ToolboxContentItem{}
	}
	return items, nil
}

// History returns the movement trail of a box.
func (s *ToolboxService) History(ctx context.Context, code string, limit int) ([]models.MovementDetail, error) {
	movements, err := s.repo.History(ctx, code, limit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo obtener el historial de la caja")
	}
	if movements == nil {
		movements = []models.MovementDetail{}
	}
	return movements, nil
}

// Create registers a new box.
func (s *ToolboxService) Create(ctx context.Context, req models.CreateToolboxRequest) (*models.ToolboxDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "datos de caja inválidos")
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo crear la caja")
	}
	s.logger.Info("toolbox created", zap.String("caja", req.Codigo), zap.String("taller", req.TallerCodigo))
	return s.Get(ctx, req.Codigo)
}

// UpdateStatus moves a box between administrative states. PRESTADA is
// reserved for the loan flow and rejected here.
func (s *ToolboxService) UpdateStatus(ctx context.Context, code string, req models.UpdateToolboxStatusRequest, docRut string) (*models.ToolboxDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "estado de caja inválido")
	}

	box, err := s.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	if box.Estado == models.ToolboxStatusLoaned {
		return nil, appErrors.Clone(appErrors.ErrConflict, "la caja está prestada; procese la devolución primero")
	}

	found, err := s.repo.UpdateStatus(ctx, code, req.Estado, req.Observaciones, docRut)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo actualizar la caja")
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "caja no encontrada")
	}
	return s.Get(ctx, code)
}
