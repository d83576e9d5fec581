package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/colegio-nocedal/panol-api/internal/models"
)

// WorkshopRepository manages persistence for workshops and their courses.
type WorkshopRepository struct {
	db *sqlx.DB
}

// NewWorkshopRepository constructs a WorkshopRepository.
func NewWorkshopRepository(db *sqlx.DB) *WorkshopRepository {
	return &WorkshopRepository{db: db}
}

// List returns every workshop with its responsible teacher's name.
func (r *WorkshopRepository) List(ctx context.Context) ([]models.WorkshopDetail, error) {
	const query = `
SELECT
	t.tal_codigo,
	t.tal_nombre,
	t.tal_descripcion,
	t.tal_ubicacion,
	t.doc_rut,
	d.doc_nombre || ' ' || d.doc_apellido AS doc_nombre
FROM talleres t
LEFT JOIN docentes d ON d.doc_rut = t.doc_rut
ORDER BY t.tal_nombre ASC`

	var workshops []models.WorkshopDetail
	if err := r.db.SelectContext(ctx, &workshops, query); err != nil {
		return nil, fmt.Errorf("list workshops: %w", err)
	}
	return workshops, nil
}

// FindByCode fetches one workshop. Returns nil when no row matches.
func (r *WorkshopRepository) FindByCode(ctx context.Context, code string) (*models.WorkshopDetail, error) {
	const query = `
SELECT
	t.tal_codigo,
	t.tal_nombre,
	t.tal_descripcion,
	t.tal_ubicacion,
	t.doc_rut,
	d.doc_nombre || ' ' || d.doc_apellido AS doc_nombre
FROM talleres t
LEFT JOIN docentes d ON d.doc_rut = t.doc_rut
WHERE t.tal_codigo = $1`

	var workshop models.WorkshopDetail
	if err := r.db.GetContext(ctx, &workshop, query, code); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find workshop: %w", err)
	}
	return &workshop, nil
}

// Create inserts a workshop.
func (r *WorkshopRepository) Create(ctx context.Context, req models.CreateWorkshopRequest) error {
	const query = `
INSERT INTO talleres (tal_codigo, tal_nombre, tal_descripcion, tal_ubicacion, doc_rut)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''))`

	if _, err := r.db.ExecContext(ctx, query, req.Codigo, req.Nombre, req.Descripcion, req.Ubicacion, req.ResponsableRut); err != nil {
		return fmt.Errorf("insert workshop: %w", err)
	}
	return nil
}

// Update edits a workshop's descriptive fields. Returns false when the
// workshop does not exist.
func (r *WorkshopRepository) Update(ctx context.Context, code string, req models.UpdateWorkshopRequest) (bool, error) {
	const query = `
UPDATE talleres
SET tal_nombre = $1,
	tal_descripcion = NULLIF($2, ''),
	tal_ubicacion = NULLIF($3, ''),
	doc_rut = NULLIF($4, '')
WHERE tal_codigo = $5`

	result, err := r.db.ExecContext(ctx, query, req.Nombre, req.Descripcion, req.Ubicacion, req.ResponsableRut, code)
	if err != nil {
		return false, fmt.Errorf("update workshop: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update workshop rows: %w", err)
	}
	return rows > 0, nil
}

// Stats aggregates box, item and loan counters per workshop.
func (r *WorkshopRepository) Stats(ctx context.Context) ([]models.WorkshopStats, error) {
	const query = `
SELECT
	t.tal_codigo,
	t.tal_nombre,
	t.tal_ubicacion,
	COUNT(DISTINCT cj.caj_codigo) AS total_cajas,
	COUNT(DISTINCT cj.caj_codigo) FILTER (WHERE cj.caj_estado = 'DISPONIBLE') AS cajas_disponibles,
	COUNT(DISTINCT cj.caj_codigo) FILTER (WHERE cj.caj_estado = 'PRESTADA') AS cajas_prestadas,
	COUNT(DISTINCT i.inv_id) AS total_items,
	COUNT(DISTINCT p.pre_id) FILTER (WHERE p.pre_estado = 'ACTIVO') AS prestamos_activos,
	COUNT(DISTINCT i.inv_id) FILTER (WHERE i.inv_estado = 'EXTRAVIADO') AS items_extraviados,
	COUNT(DISTINCT i.inv_id) FILTER (WHERE i.inv_estado = 'MANTENIMIENTO') AS items_mantenimiento
FROM talleres t
LEFT JOIN cajas cj ON cj.tal_codigo = t.tal_codigo
LEFT JOIN items it ON it.tal_codigo = t.tal_codigo
LEFT JOIN inv_items i ON i.itm_codigo = it.itm_codigo
LEFT JOIN prestamos p ON p.caj_codigo = cj.caj_codigo
GROUP BY t.tal_codigo, t.tal_nombre, t.tal_ubicacion
ORDER BY t.tal_nombre ASC`

	var stats []models.WorkshopStats
	if err := r.db.SelectContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("workshop stats: %w", err)
	}
	return stats, nil
}

// Composition returns the standard toolbox composition of a workshop.
func (r *WorkshopRepository) Composition(ctx context.Context, code string) ([]models.CompositionEntry, error) {
	const query = `
SELECT
	ce.ce_id,
	ce.tal_codigo,
	ce.itm_codigo,
	it.itm_nombre,
	ce.ce_cantidad,
	ce.ce_obligatorio
FROM composicion_estandar ce
JOIN items it ON it.itm_codigo = ce.itm_codigo
WHERE ce.tal_codigo = $1
ORDER BY it.itm_nombre ASC`

	var entries []models.CompositionEntry
	if err := r.db.SelectContext(ctx, &entries, query, code); err != nil {
		return nil, fmt.Errorf("workshop composition: %w", err)
	}
	return entries, nil
}
