package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/colegio-nocedal/panol-api/internal/models"
	appErrors "github.com/colegio-nocedal/panol-api/pkg/errors"
)

const (
	dashboardCacheKey = "dashboard:resumen"
	recentLoansLimit  = 5
)

type dashboardRepository interface {
	Metrics(ctx context.Context) (*models.DashboardMetrics, error)
	RecentLoans(ctx context.Context, limit int) ([]models.RecentLoan, error)
	AlertCounts(ctx context.Context) (int, int, int, error)
}

type dashboardWorkshopRepository interface {
	Stats(ctx context.Context) ([]models.WorkshopStats, error)
}

// DashboardService assembles the landing page payload, served from Redis
// when fresh enough.
type DashboardService struct {
	repo      dashboardRepository
	workshops dashboardWorkshopRepository
	cache     *CacheService
	logger    *zap.Logger
}

// NewDashboardService constructs a DashboardService instance.
func NewDashboardService(repo dashboardRepository, workshops dashboardWorkshopRepository, cache *CacheService, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{repo: repo, workshops: workshops, cache: cache, logger: logger}
}

// Summary returns the full dashboard, from cache when possible.
func (s *DashboardService) Summary(ctx context.Context) (*models.Dashboard, error) {
	var cached models.Dashboard
	if s.cache.Get(ctx, dashboardCacheKey, &cached) {
		return &cached, nil
	}

	metrics, err := s.repo.Metrics(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron calcular las métricas")
	}

	stats, err := s.workshops.Stats(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo resumir por taller")
	}
	if stats == nil {
		stats = []models.WorkshopStats{}
	}

	recent, err := s.repo.RecentLoans(ctx, recentLoansLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron listar los préstamos recientes")
	}
	if recent == nil {
		recent = []models.RecentLoan{}
	}

	alerts, err := s.alerts(ctx)
	if err != nil {
		return nil, err
	}

	dashboard := &models.Dashboard{
		Metricas:  *metrics,
		Talleres:  stats,
		Recientes: recent,
		Alertas:   alerts,
	}
	s.cache.Set(ctx, dashboardCacheKey, dashboard)
	return dashboard, nil
}

// Metrics returns only the headline counters, bypassing the cache.
func (s *DashboardService) Metrics(ctx context.Context) (*models.DashboardMetrics, error) {
	metrics, err := s.repo.Metrics(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron calcular las métricas")
	}
	return metrics, nil
}

// RecentLoans returns the latest loan activity.
func (s *DashboardService) RecentLoans(ctx context.Context) ([]models.RecentLoan, error) {
	recent, err := s.repo.RecentLoans(ctx, recentLoansLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron listar los préstamos recientes")
	}
	if recent == nil {
		recent = []models.RecentLoan{}
	}
	return recent, nil
}

// WorkshopSummary returns the per-workshop counters block alone.
func (s *DashboardService) WorkshopSummary(ctx context.Context) ([]models.WorkshopStats, error) {
	stats, err := s.workshops.Stats(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudo resumir por taller")
	}
	if stats == nil {
		stats = []models.WorkshopStats{}
	}
	return stats, nil
}

// Alerts returns the attention block alone.
func (s *DashboardService) Alerts(ctx context.Context) ([]models.DashboardAlert, error) {
	return s.alerts(ctx)
}

func (s *DashboardService) alerts(ctx context.Context) ([]models.DashboardAlert, error) {
	pendingProblems, boxesMaintenance, boxesLost, err := s.repo.AlertCounts(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "no se pudieron calcular las alertas")
	}

	alerts := []models.DashboardAlert{}
	if pendingProblems > 0 {
		alerts = append(alerts, models.DashboardAlert{
			Tipo:    "ITEMS_PROBLEMATICOS",
			Nivel:   models.AlertLevelWarning,
			Mensaje: fmt.Sprintf("%d items reportados sin resolver", pendingProblems),
			Total:   pendingProblems,
		})
	}
	if boxesMaintenance > 0 {
		alerts = append(alerts, models.DashboardAlert{
			Tipo:    "CAJAS_MANTENIMIENTO",
			Nivel:   models.AlertLevelWarning,
			Mensaje: fmt.Sprintf("%d cajas en mantenimiento", boxesMaintenance),
			Total:   boxesMaintenance,
		})
	}
	if boxesLost > 0 {
		alerts = append(alerts, models.DashboardAlert{
			Tipo:    "CAJAS_EXTRAVIADAS",
			Nivel:   models.AlertLevelCritical,
			Mensaje: fmt.Sprintf("%d cajas extraviadas", boxesLost),
			Total:   boxesLost,
		})
	}
	return alerts, nil
}
