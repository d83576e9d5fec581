package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/colegio-nocedal/panol-api/internal/models"
	appErrors "github.com/colegio-nocedal/panol-api/pkg/errors"
)

type inventoryRepository interface {
	Catalog(ctx context.Context, filter models.InventoryFilter) ([]models.ItemSummary, error)
	FindItem(ctx context.Context, code string) (*models.ItemSummary, error)
	Units(ctx context.Context, itemCode string) ([]models.InventoryUnitDetail, error)
	CreateItem(ctx context.Context, req models.CreateItemRequest) error
	UpdateUnitStatus(ctx context.Context, unitID string, req models.UpdateUnitStatusRequest, docRut string) (bool, error)
	ReportMissing(ctx context.Context, req models.ReportMissingRequest, docRut string) (bool, error)
	CountAvailable(ctx context.Context, itemCode string) (int, error)
}

// InventoryService exposes the tool catalog and unit state changes.
type InventoryService struct {
	repo      inventoryRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewInventoryService constructs an InventoryService instance.
func NewInventoryService(repo inventoryRepository, validate *validator.Validate, logger *zap.Logger) *InventoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &InventoryService{repo: repo, validator: validate, logger: logger}
}

// Catalog returns catalog items with unit counts.
func (s *InventoryService) Catalog(ctx context.Context, filter models.InventoryFilter) ([]models.ItemSummary, error) {
	items, err := s.repo.Catalog(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo listar el inventario")
	}
	if items == nil {
		items = []models.ItemSummary{}
	}
	return items, nil
}

// GetItem returns one catalog item with counts.
func (s *InventoryService) GetItem(ctx context.Context, code string) (*models.ItemSummary, error) {
	item, err := s.repo.FindItem(ctx, code)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo obtener el item")
	}
	if item == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "item no encontrado")
	}
	return item, nil
}

// Units returns the physical units of a catalog item.
func (s *InventoryService) Units(ctx context.Context, itemCode string) ([]models.InventoryUnitDetail, error) {
	if _, err := s.GetItem(ctx, itemCode); err != nil {
		return nil, err
	}
	units, err := s.repo.Units(ctx, itemCode)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron listar las unidades")
	}
	if units == nil {
		units = []models.InventoryUnitDetail{}
	}
	return units, nil
}

// AvailableUnits counts the DISPONIBLE units of a catalog item.
func (s *InventoryService) AvailableUnits(ctx context.Context, itemCode string) (int, error) {
	if _, err := s.GetItem(ctx, itemCode); err != nil {
		return 0, err
	}
	count, err := s.repo.CountAvailable(ctx, itemCode)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron contar las unidades disponibles")
	}
	return count, nil
}

// CreateItem registers a catalog item with an optional initial batch.
func (s *InventoryService) CreateItem(ctx context.Context, req models.CreateItemRequest) (*models.ItemSummary, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "datos de item inválidos")
	}
	if err := s.repo.CreateItem(ctx, req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo crear el item")
	}
	s.logger.Info("catalog item created", zap.String("item", req.Codigo), zap.Int("unidades", req.Unidades))
	return s.GetItem(ctx, req.Codigo)
}

// UpdateUnitStatus moves a unit between states with an audit note.
// Returning a unit to DISPONIBLE also closes its pending problem reports.
func (s *InventoryService) UpdateUnitStatus(ctx context.Context, unitID string, req models.UpdateUnitStatusRequest, docRut string) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "estado de unidad inválido")
	}
	found, err := s.repo.UpdateUnitStatus(ctx, unitID, req, docRut)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo actualizar la unidad")
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "unidad no encontrada")
	}
	s.logger.Info("unit status updated", zap.String("unidad", unitID), zap.String("estado", req.Estado))
	return nil
}

// ReportMissing flags a unit as lost outside the return flow.
func (s *InventoryService) ReportMissing(ctx context.Context, req models.ReportMissingRequest, docRut string) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "reporte de faltante inválido")
	}
	found, err := s.repo.ReportMissing(ctx, req, docRut)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo registrar el faltante")
	}
	if !found {
		return appErrors.Clone(appErrors.ErrNotFound, "unidad no encontrada")
	}
	s.logger.Info("unit reported missing", zap.String("unidad", req.InventarioID))
	return nil
}
