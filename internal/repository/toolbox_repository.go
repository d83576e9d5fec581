package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/colegio-nocedal/panol-api/internal/models"
)

// completenessLateral computes, per box, the percentage of the workshop's
// mandatory standard composition that the box currently satisfies. Surplus
// units of one item never compensate for another, hence the LEAST.
const completenessLateral = `
LEFT JOIN LATERAL (
	SELECT COALESCE(
		ROUND(100.0 * SUM(LEAST(pres.cantidad, ce.ce_cantidad)) / NULLIF(SUM(ce.ce_cantidad), 0), 1),
		100.0
	) AS completitud
	FROM composicion_estandar ce
	LEFT JOIN (
		SELECT it.itm_codigo, COUNT(*) AS cantidad
		FROM items_en_cajas iec
		JOIN inv_items i ON i.inv_id = iec.inv_id AND i.inv_estado <> 'EXTRAVIADO'
		JOIN items it ON it.itm_codigo = i.itm_codigo
		WHERE iec.caj_codigo = cj.caj_codigo
		GROUP BY it.itm_codigo
	) pres ON pres.itm_codigo = ce.itm_codigo
	WHERE ce.tal_codigo = cj.tal_codigo AND ce.ce_obligatorio
) comp ON TRUE`

// ToolboxRepository manages persistence for toolboxes and their contents.
type ToolboxRepository struct {
	db *sqlx.DB
}

// NewToolboxRepository constructs a ToolboxRepository.
func NewToolboxRepository(db *sqlx.DB) *ToolboxRepository {
	return &ToolboxRepository{db: db}
}

// List returns boxes matching the filter, each with its completeness
// percentage recomputed from current contents.
func (r *ToolboxRepository) List(ctx context.Context, filter models.ToolboxFilter) ([]models.ToolboxDetail, error) {
	query := strings.Builder{}
	query.WriteString(`
SELECT
	cj.caj_codigo,
	cj.caj_numero,
	cj.tal_codigo,
	cj.caj_estado,
	cj.caj_candado,
	cj.caj_observaciones,
	t.tal_nombre,
	COALESCE(comp.completitud, 100.0) AS completitud,
	(SELECT COUNT(*) FROM items_en_cajas iec WHERE iec.caj_codigo = cj.caj_codigo) AS total_items
FROM cajas cj
LEFT JOIN talleres t ON t.tal_codigo = cj.tal_codigo`)
	query.WriteString(completenessLateral)
	query.WriteString("\nWHERE 1=1")

	args := []interface{}{}
	if filter.TallerCodigo != "" {
		args = append(args, filter.TallerCodigo)
		fmt.Fprintf(&query, " AND cj.tal_codigo = $%d", len(args))
	}
	if filter.Estado != "" {
		args = append(args, filter.Estado)
		fmt.Fprintf(&query, " AND cj.caj_estado = $%d", len(args))
	}
	query.WriteString("\nORDER BY cj.tal_codigo ASC, cj.caj_numero ASC")

	var boxes []models.ToolboxDetail
	if err := r.db.SelectContext(ctx, &boxes, query.String(), args...); err != nil {
		return nil, fmt.Errorf("list toolboxes: %w", err)
	}
	return boxes, nil
}

// FindByCode fetches a single box with completeness. Returns nil when no
// row matches.
func (r *ToolboxRepository) FindByCode(ctx context.Context, code string) (*models.ToolboxDetail, error) {
	query := `
SELECT
	cj.caj_codigo,
	cj.caj_numero,
	cj.tal_codigo,
	cj.caj_estado,
	cj.caj_candado,
	cj.caj_observaciones,
	t.tal_nombre,
	COALESCE(comp.completitud, 100.0) AS completitud,
	(SELECT COUNT(*) FROM items_en_cajas iec WHERE iec.caj_codigo = cj.caj_codigo) AS total_items
FROM cajas cj
LEFT JOIN talleres t ON t.tal_codigo = cj.tal_codigo` + completenessLateral + `
WHERE cj.caj_codigo = $1`

	var box models.ToolboxDetail
	if err := r.db.GetContext(ctx, &box, query, code); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find toolbox: %w", err)
	}
	return &box, nil
}

// ListAvailable returns DISPONIBLE boxes of a workshop, the candidates
// offered when assigning a loan.
func (r *ToolboxRepository) ListAvailable(ctx context.Context, tallerCodigo string) ([]models.ToolboxDetail, error) {
	return r.List(ctx, models.ToolboxFilter{TallerCodigo: tallerCodigo, Estado: models.ToolboxStatusAvailable})
}

// Contents returns every unit currently registered inside the box.
func (r *ToolboxRepository) Contents(ctx context.Context, code string) ([]models.ToolboxContentItem, error) {
	const query = `
SELECT
	iec.iec_id,
	iec.inv_id,
	it.itm_codigo,
	it.itm_nombre,
	it.itm_categoria,
	i.inv_estado,
	i.inv_condicion
FROM items_en_cajas iec
JOIN inv_items i ON i.inv_id = iec.inv_id
JOIN items it ON it.itm_codigo = i.itm_codigo
WHERE iec.caj_codigo = $1
ORDER BY it.itm_nombre ASC`

	var items []models.ToolboxContentItem
	if err := r.db.SelectContext(ctx, &items, query, code); err != nil {
		return nil, fmt.Errorf("list toolbox contents: %w", err)
	}
	return items, nil
}

// History returns the movement trail of a box, newest first.
func (r *ToolboxRepository) History(ctx context.Context, code string, limit int) ([]models.MovementDetail, error) {
	if limit <= 0 {
		limit = 50
	}
	const query = `
SELECT
	h.hm_id,
	h.hm_fecha,
	h.hm_tipo,
	h.hm_observaciones,
	h.caj_codigo,
	h.inv_id,
	h.pre_id,
	h.alu_rut,
	h.doc_rut,
	it.itm_nombre,
	t.tal_nombre,
	d.doc_nombre || ' ' || d.doc_apellido AS doc_nombre,
	g.gru_numero,
	c.cur_nombre
FROM historial_movimientos h
LEFT JOIN inv_items i ON i.inv_id = h.inv_id
LEFT JOIN items it ON it.itm_codigo = i.itm_codigo
LEFT JOIN cajas cj ON cj.caj_codigo = h.caj_codigo
LEFT JOIN talleres t ON t.tal_codigo = cj.tal_codigo
LEFT JOIN docentes d ON d.doc_rut = h.doc_rut
LEFT JOIN prestamos p ON p.pre_id = h.pre_id
LEFT JOIN grupos g ON g.gru_id = p.gru_id
LEFT JOIN cursos c ON c.cur_codigo = g.cur_codigo
WHERE h.caj_codigo = $1
ORDER BY h.hm_fecha DESC
LIMIT $2`

	var movements []models.MovementDetail
	if err := r.db.SelectContext(ctx, &movements, query, code, limit); err != nil {
		return nil, fmt.Errorf("toolbox history: %w", err)
	}
	return movements, nil
}

// Create inserts a new box in DISPONIBLE state.
func (r *ToolboxRepository) Create(ctx context.Context, req models.CreateToolboxRequest) error {
	const query = `
INSERT INTO cajas (caj_codigo, caj_numero, tal_codigo, caj_estado, caj_candado)
VALUES ($1, $2, $3, $4, NULLIF($5, ''))`

	if _, err := r.db.ExecContext(ctx, query, req.Codigo, req.Numero, req.TallerCodigo, models.ToolboxStatusAvailable, req.Candado); err != nil {
		return fmt.Errorf("create toolbox: %w", err)
	}
	return nil
}

// UpdateStatus moves a box between administrative states and records the
// change in the movement trail. PRESTADA is owned by the loan flow and is
// rejected at the service layer before reaching here.
func (r *ToolboxRepository) UpdateStatus(ctx context.Context, code, estado, observaciones, docRut string) (found bool, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin toolbox status: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var current string
	const lockQuery = `SELECT caj_estado FROM cajas WHERE caj_codigo = $1 FOR UPDATE`
	if err = tx.GetContext(ctx, &current, lockQuery, code); err != nil {
		if err == sql.ErrNoRows {
			err = nil
			_ = tx.Rollback()
			return false, nil
		}
		return false, fmt.Errorf("lock toolbox: %w", err)
	}

	const updateQuery = `UPDATE cajas SET caj_estado = $1, caj_observaciones = NULLIF($2, '') WHERE caj_codigo = $3`
	if _, err = tx.ExecContext(ctx, updateQuery, estado, observaciones, code); err != nil {
		return false, fmt.Errorf("update toolbox status: %w", err)
	}

	const historyQuery = `
INSERT INTO historial_movimientos (hm_id, hm_fecha, hm_tipo, hm_observaciones, caj_codigo, doc_rut)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))`
	note := fmt.Sprintf("%s -> %s", current, estado)
	if observaciones != "" {
		note = note + ": " + observaciones
	}
	if _, err = tx.ExecContext(ctx, historyQuery, uuid.NewString(), time.Now().UTC(), models.MovementStatusChange, note, code, docRut); err != nil {
		return false, fmt.Errorf("insert toolbox movement: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("commit toolbox status: %w", err)
	}
	return true, nil
}
