package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colegio-nocedal/panol-api/internal/models"
)

type stubDashboardRepo struct {
	metrics     models.DashboardMetrics
	recent      []models.RecentLoan
	problems    int
	maintenance int
	lost        int
	calls       int
}

func (s *stubDashboardRepo) Metrics(ctx context.Context) (*models.DashboardMetrics, error) {
	s.calls++
	m := s.metrics
	return &m, nil
}

func (s *stubDashboardRepo) RecentLoans(ctx context.Context, limit int) ([]models.RecentLoan, error) {
	return s.recent, nil
}

func (s *stubDashboardRepo) AlertCounts(ctx context.Context) (int, int, int, error) {
	return s.problems, s.maintenance, s.lost, nil
}

type stubWorkshopStats struct {
	stats []models.WorkshopStats
}

func (s *stubWorkshopStats) Stats(ctx context.Context) ([]models.WorkshopStats, error) {
	return s.stats, nil
}

func TestDashboardServiceSummary(t *testing.T) {
	repo := &stubDashboardRepo{
		metrics:     models.DashboardMetrics{TotalCajas: 40, CajasDisponibles: 12, PrestamosActivos: 28, ItemsExtraviados: 5},
		recent:      []models.RecentLoan{{PrestamoID: "loan-1", CajaCodigo: "CAJ-ELEC-001"}},
		problems:    4,
		maintenance: 2,
	}
	svc := NewDashboardService(repo, &stubWorkshopStats{stats: []models.WorkshopStats{{Codigo: "ELEC"}}}, nil, nil)

	dashboard, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 40, dashboard.Metricas.TotalCajas)
	require.Len(t, dashboard.Recientes, 1)
	require.Len(t, dashboard.Talleres, 1)
	require.Len(t, dashboard.Alertas, 2)
	assert.Equal(t, "ITEMS_PROBLEMATICOS", dashboard.Alertas[0].Tipo)
	assert.Equal(t, 4, dashboard.Alertas[0].Total)
}

func TestDashboardServiceAlertsEmpty(t *testing.T) {
	svc := NewDashboardService(&stubDashboardRepo{}, &stubWorkshopStats{}, nil, nil)

	alerts, err := svc.Alerts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestDashboardServiceLostBoxesCritical(t *testing.T) {
	svc := NewDashboardService(&stubDashboardRepo{lost: 1}, &stubWorkshopStats{}, nil, nil)

	alerts, err := svc.Alerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertLevelCritical, alerts[0].Nivel)
}
