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

// InventoryRepository manages the tool catalog and its physical units.
type InventoryRepository struct {
	db *sqlx.DB
}

// NewInventoryRepository constructs an InventoryRepository.
func NewInventoryRepository(db *sqlx.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// Catalog returns catalog items with unit counts, filtered as requested.
func (r *InventoryRepository) Catalog(ctx context.Context, filter models.InventoryFilter) ([]models.ItemSummary, error) {
	query := strings.Builder{}
	query.WriteString(`
SELECT
	it.itm_codigo,
	it.itm_nombre,
	it.itm_descripcion,
	it.itm_categoria,
	it.tal_codigo,
	t.tal_nombre,
	COUNT(i.inv_id) AS total_unidades,
	COUNT(i.inv_id) FILTER (WHERE i.inv_estado = 'DISPONIBLE') AS unidades_disponibles,
	COUNT(i.inv_id) FILTER (WHERE i.inv_estado = 'ASIGNADO') AS unidades_asignadas,
	COUNT(i.inv_id) FILTER (WHERE i.inv_estado = 'EXTRAVIADO') AS unidades_extraviadas
FROM items it
LEFT JOIN talleres t ON t.tal_codigo = it.tal_codigo
LEFT JOIN inv_items i ON i.itm_codigo = it.itm_codigo
WHERE 1=1`)

	args := []interface{}{}
	if filter.TallerCodigo != "" {
		args = append(args, filter.TallerCodigo)
		fmt.Fprintf(&query, " AND it.tal_codigo = $%d", len(args))
	}
	if filter.Categoria != "" {
		args = append(args, filter.Categoria)
		fmt.Fprintf(&query, " AND it.itm_categoria = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
		fmt.Fprintf(&query, " AND (LOWER(it.itm_nombre) LIKE $%d OR LOWER(it.itm_codigo) LIKE $%d)", len(args), len(args))
	}
	query.WriteString(`
GROUP BY it.itm_codigo, it.itm_nombre, it.itm_descripcion, it.itm_categoria, it.tal_codigo, t.tal_nombre
ORDER BY it.itm_nombre ASC`)

	var items []models.ItemSummary
	if err := r.db.SelectContext(ctx, &items, query.String(), args...); err != nil {
		return nil, fmt.Errorf("inventory catalog: %w", err)
	}
	return items, nil
}

// FindItem fetches one catalog item with counts. Returns nil when absent.
func (r *InventoryRepository) FindItem(ctx context.Context, code string) (*models.ItemSummary, error) {
	const query = `
SELECT
	it.itm_codigo,
	it.itm_nombre,
	it.itm_descripcion,
	it.itm_categoria,
	it.tal_codigo,
	t.tal_nombre,
	COUNT(i.inv_id) AS total_unidades,
	COUNT(i.inv_id) FILTER (WHERE i.inv_estado = 'DISPONIBLE') AS unidades_disponibles,
	COUNT(i.inv_id) FILTER (WHERE i.inv_estado = 'ASIGNADO') AS unidades_asignadas,
	COUNT(i.inv_id) FILTER (WHERE i.inv_estado = 'EXTRAVIADO') AS unidades_extraviadas
FROM items it
LEFT JOIN talleres t ON t.tal_codigo = it.tal_codigo
LEFT JOIN inv_items i ON i.itm_codigo = it.itm_codigo
WHERE it.itm_codigo = $1
GROUP BY it.itm_codigo, it.itm_nombre, it.itm_descripcion, it.itm_categoria, it.tal_codigo, t.tal_nombre`

	var item models.ItemSummary
	if err := r.db.GetContext(ctx, &item, query, code); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find inventory item: %w", err)
	}
	return &item, nil
}

// Units returns the physical units of a catalog item with their current box.
func (r *InventoryRepository) Units(ctx context.Context, itemCode string) ([]models.InventoryUnitDetail, error) {
	const query = `
SELECT
	i.inv_id,
	i.itm_codigo,
	i.inv_estado,
	i.inv_condicion,
	i.inv_fecha_alta,
	it.itm_nombre,
	iec.caj_codigo
FROM inv_items i
JOIN items it ON it.itm_codigo = i.itm_codigo
LEFT JOIN items_en_cajas iec ON iec.inv_id = i.inv_id
WHERE i.itm_codigo = $1
ORDER BY i.inv_id ASC`

	var units []models.InventoryUnitDetail
	if err := r.db.SelectContext(ctx, &units, query, itemCode); err != nil {
		return nil, fmt.Errorf("list inventory units: %w", err)
	}
	return units, nil
}

// CountAvailable counts the DISPONIBLE units of a catalog item.
func (r *InventoryRepository) CountAvailable(ctx context.Context, itemCode string) (int, error) {
	const query = `SELECT COUNT(*) FROM inv_items WHERE itm_codigo = $1 AND inv_estado = 'DISPONIBLE'`

	var count int
	if err := r.db.GetContext(ctx, &count, query, itemCode); err != nil {
		return 0, fmt.Errorf("count available units: %w", err)
	}
	return count, nil
}

// CreateItem inserts a catalog item plus an initial batch of available
// units in one transaction.
func (r *InventoryRepository) CreateItem(ctx context.Context, req models.CreateItemRequest) (err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create item: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const insertItem = `
INSERT INTO items (itm_codigo, itm_nombre, itm_descripcion, itm_categoria, tal_codigo)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5)`
	if _, err = tx.ExecContext(ctx, insertItem, req.Codigo, req.Nombre, req.Descripcion, req.Categoria, req.TallerCodigo); err != nil {
		return fmt.Errorf("insert item: %w", err)
	}

	const insertUnit = `
INSERT INTO inv_items (inv_id, itm_codigo, inv_estado, inv_condicion, inv_fecha_alta)
VALUES ($1, $2, $3, $4, $5)`
	now := time.Now().UTC()
	for i := 0; i < req.Unidades; i++ {
		if _, err = tx.ExecContext(ctx, insertUnit, uuid.NewString(), req.Codigo, models.UnitStatusAvailable, models.UnitConditionGood, now); err != nil {
			return fmt.Errorf("insert inventory unit: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit create item: %w", err)
	}
	return nil
}

// UpdateUnitStatus moves a unit between states and records the change.
// Returns false when the unit does not exist.
func (r *InventoryRepository) UpdateUnitStatus(ctx context.Context, unitID string, req models.UpdateUnitStatusRequest, docRut string) (found bool, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin unit status: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var current string
	const lockQuery = `SELECT inv_estado FROM inv_items WHERE inv_id = $1 FOR UPDATE`
	if err = tx.GetContext(ctx, &current, lockQuery, unitID); err != nil {
		if err == sql.ErrNoRows {
			err = nil
			_ = tx.Rollback()
			return false, nil
		}
		return false, fmt.Errorf("lock inventory unit: %w", err)
	}

	const updateQuery = `
UPDATE inv_items SET inv_estado = $1, inv_condicion = COALESCE(NULLIF($2, ''), inv_condicion)
WHERE inv_id = $3`
	if _, err = tx.ExecContext(ctx, updateQuery, req.Estado, req.Condicion, unitID); err != nil {
		return false, fmt.Errorf("update unit status: %w", err)
	}

	// A unit brought back to DISPONIBLE closes its pending problem reports.
	if req.Estado == models.UnitStatusAvailable {
		const resolveQuery = `
UPDATE items_problematicos SET ip_estado = $1, ip_fecha_cierre = $2
WHERE inv_id = $3 AND ip_estado = $4`
		if _, err = tx.ExecContext(ctx, resolveQuery, models.ProblemStatusResolved, time.Now().UTC(), unitID, models.ProblemStatusPending); err != nil {
			return false, fmt.Errorf("resolve problem reports: %w", err)
		}
	}

	movementType := models.MovementStatusChange
	if current != models.UnitStatusAvailable && req.Estado == models.UnitStatusAvailable {
		movementType = models.MovementRestock
	}
	note := fmt.Sprintf("%s -> %s", current, req.Estado)
	if req.Observaciones != "" {
		note = note + ": " + req.Observaciones
	}
	const historyQuery = `
INSERT INTO historial_movimientos (hm_id, hm_fecha, hm_tipo, hm_observaciones, inv_id, doc_rut)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))`
	if _, err = tx.ExecContext(ctx, historyQuery, uuid.NewString(), time.Now().UTC(), movementType, note, unitID, docRut); err != nil {
		return false, fmt.Errorf("insert unit movement: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("commit unit status: %w", err)
	}
	return true, nil
}

// ReportMissing flags a unit as lost outside the return flow: marks it
// EXTRAVIADO, opens a FALTANTE report and records the movement.
func (r *InventoryRepository) ReportMissing(ctx context.Context, req models.ReportMissingRequest, docRut string) (found bool, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin report missing: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var current string
	const lockQuery = `SELECT inv_estado FROM inv_items WHERE inv_id = $1 FOR UPDATE`
	if err = tx.GetContext(ctx, &current, lockQuery, req.InventarioID); err != nil {
		if err == sql.ErrNoRows {
			err = nil
			_ = tx.Rollback()
			return false, nil
		}
		return false, fmt.Errorf("lock inventory unit: %w", err)
	}

	const updateQuery = `UPDATE inv_items SET inv_estado = $1 WHERE inv_id = $2`
	if _, err = tx.ExecContext(ctx, updateQuery, models.UnitStatusLost, req.InventarioID); err != nil {
		return false, fmt.Errorf("mark unit lost: %w", err)
	}

	now := time.Now().UTC()
	const problemQuery = `
INSERT INTO items_problematicos (ip_id, pre_id, inv_id, ip_tipo, ip_descripcion, ip_estado, ip_fecha_reporte)
VALUES ($1, NULLIF($2, ''), $3, $4, NULLIF($5, ''), $6, $7)`
	if _, err = tx.ExecContext(ctx, problemQuery, uuid.NewString(), req.PrestamoID, req.InventarioID, models.ProblemTypeMissing, req.Descripcion, models.ProblemStatusPending, now); err != nil {
		return false, fmt.Errorf("insert problem report: %w", err)
	}

	const historyQuery = `
INSERT INTO historial_movimientos (hm_id, hm_fecha, hm_tipo, hm_observaciones, inv_id, pre_id, doc_rut)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''))`
	if _, err = tx.ExecContext(ctx, historyQuery, uuid.NewString(), now, models.MovementStatusChange, "reportado como faltante", req.InventarioID, req.PrestamoID, docRut); err != nil {
		return false, fmt.Errorf("insert missing movement: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("commit report missing: %w", err)
	}
	return true, nil
}
