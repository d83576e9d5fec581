package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/colegio-nocedal/panol-api/internal/models"
)

// DashboardRepository runs the aggregate queries behind the landing page.
type DashboardRepository struct {
	db *sqlx.DB
}

// NewDashboardRepository constructs a DashboardRepository.
func NewDashboardRepository(db *sqlx.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Metrics returns the headline counters.
func (r *DashboardRepository) Metrics(ctx context.Context) (*models.DashboardMetrics, error) {
	const query = `
SELECT
	(SELECT COUNT(*) FROM cajas) AS total_cajas,
	(SELECT COUNT(*) FROM cajas WHERE caj_estado = 'DISPONIBLE') AS cajas_disponibles,
	(SELECT COUNT(*) FROM prestamos WHERE pre_estado = 'ACTIVO') AS prestamos_activos,
	(SELECT COUNT(*) FROM inv_items WHERE inv_estado = 'EXTRAVIADO') AS items_extraviados`

	var metrics models.DashboardMetrics
	if err := r.db.GetContext(ctx, &metrics, query); err != nil {
		return nil, fmt.Errorf("dashboard metrics: %w", err)
	}
	return &metrics, nil
}

// RecentLoans returns the latest loan activity.
func (r *DashboardRepository) RecentLoans(ctx context.Context, limit int) ([]models.RecentLoan, error) {
	if limit <= 0 {
		limit = 10
	}
	const query = `
SELECT
	p.pre_id,
	p.pre_fecha_inicio,
	p.pre_estado,
	p.caj_codigo,
	g.gru_numero,
	c.cur_nombre,
	t.tal_nombre
FROM prestamos p
JOIN grupos g ON g.gru_id = p.gru_id
JOIN cursos c ON c.cur_codigo = g.cur_codigo
LEFT JOIN talleres t ON t.tal_codigo = c.tal_codigo
ORDER BY p.pre_fecha_inicio DESC
LIMIT $1`

	var loans []models.RecentLoan
	if err := r.db.SelectContext(ctx, &loans, query, limit); err != nil {
		return nil, fmt.Errorf("recent loans: %w", err)
	}
	return loans, nil
}

// AlertCounts returns the counters the alert block is built from.
func (r *DashboardRepository) AlertCounts(ctx context.Context) (pendingProblems, boxesInMaintenance, lostBoxes int, err error) {
	const query = `
SELECT
	(SELECT COUNT(*) FROM items_problematicos WHERE ip_estado = 'PENDIENTE') AS pending_problems,
	(SELECT COUNT(*) FROM cajas WHERE caj_estado = 'MANTENIMIENTO') AS boxes_maintenance,
	(SELECT COUNT(*) FROM cajas WHERE caj_estado = 'EXTRAVIADA') AS boxes_lost`

	var counts struct {
		PendingProblems  int `db:"pending_problems"`
		BoxesMaintenance int `db:"boxes_maintenance"`
		BoxesLost        int `db:"boxes_lost"`
	}
	if err := r.db.GetContext(ctx, &counts, query); err != nil {
		return 0, 0, 0, fmt.Errorf("alert counts: %w", err)
	}
	return counts.PendingProblems, counts.BoxesMaintenance, counts.BoxesLost, nil
}
