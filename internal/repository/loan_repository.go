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
	appErrors "github.com/colegio-nocedal/panol-api/pkg/errors"
)

const loanDetailColumns = `
	p.pre_id,
	p.caj_codigo,
	p.gru_id,
	p.doc_rut,
	p.pre_anio,
	p.pre_fecha_inicio,
	p.pre_fecha_fin,
	p.pre_estado,
	p.pre_observaciones,
	cj.caj_numero,
	g.gru_numero,
	g.gru_nombre,
	c.cur_codigo,
	c.cur_nombre,
	t.tal_codigo,
	t.tal_nombre,
	d.doc_nombre || ' ' || d.doc_apellido AS doc_nombre`

const loanDetailJoins = `
FROM prestamos p
JOIN cajas cj ON cj.caj_codigo = p.caj_codigo
JOIN grupos g ON g.gru_id = p.gru_id
JOIN cursos c ON c.cur_codigo = g.cur_codigo
LEFT JOIN talleres t ON t.tal_codigo = c.tal_codigo
LEFT JOIN docentes d ON d.doc_rut = p.doc_rut`

// LoanRepository manages annual toolbox loans. The assign and return
// flows run as single transactions with the box row locked, so two
// concurrent requests on the same box serialize instead of both passing
// the precondition checks.
type LoanRepository struct {
	db *sqlx.DB
}

// NewLoanRepository constructs a LoanRepository.
func NewLoanRepository(db *sqlx.DB) *LoanRepository {
	return &LoanRepository{db: db}
}

// List returns loans matching the filter, newest first.
func (r *LoanRepository) List(ctx context.Context, filter models.LoanFilter) ([]models.LoanDetail, error) {
	query := strings.Builder{}
	query.WriteString("SELECT" + loanDetailColumns + loanDetailJoins + "\nWHERE 1=1")

	args := []interface{}{}
	if filter.Anio > 0 {
		args = append(args, filter.Anio)
		fmt.Fprintf(&query, " AND p.pre_anio = $%d", len(args))
	}
	if filter.Estado != "" {
		args = append(args, filter.Estado)
		fmt.Fprintf(&query, " AND p.pre_estado = $%d", len(args))
	}
	if filter.TallerCodigo != "" {
		args = append(args, filter.TallerCodigo)
		fmt.Fprintf(&query, " AND t.tal_codigo = $%d", len(args))
	}
	query.WriteString("\nORDER BY p.pre_fecha_inicio DESC")

	var loans []models.LoanDetail
	if err := r.db.SelectContext(ctx, &loans, query.String(), args...); err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	return loans, nil
}

// FindByID fetches one loan with naming. Returns nil when no row matches.
func (r *LoanRepository) FindByID(ctx context.Context, id string) (*models.LoanDetail, error) {
	query := "SELECT" + loanDetailColumns + loanDetailJoins + "\nWHERE p.pre_id = $1"

	var loan models.LoanDetail
	if err := r.db.GetContext(ctx, &loan, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find loan: %w", err)
	}
	return &loan, nil
}

// AssignAnnual loans a box to a group for the year. The box row is locked
// first; both preconditions are then checked inside the same transaction:
// the box must be DISPONIBLE and the group must have no ACTIVO loan for
// the year. On success the loan is created, the box flips to PRESTADA,
// every unit inside it to ASIGNADO, and the movement is recorded.
func (r *LoanRepository) AssignAnnual(ctx context.Context, req models.AssignLoanRequest, docRut string) (loanID string, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin assign loan: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var boxStatus string
	const lockBox = `SELECT caj_estado FROM cajas WHERE caj_codigo = $1 FOR UPDATE`
	if err = tx.GetContext(ctx, &boxStatus, lockBox, req.CajaCodigo); err != nil {
		if err == sql.ErrNoRows {
			err = appErrors.ErrNotFound
		} else {
			err = fmt.Errorf("lock toolbox: %w", err)
		}
		return "", err
	}
	if boxStatus != models.ToolboxStatusAvailable {
		err = appErrors.ErrBoxUnavailable
		return "", err
	}

	var activeLoans int
	const checkGroup = `SELECT COUNT(*) FROM prestamos WHERE gru_id = $1 AND pre_anio = $2 AND pre_estado = $3`
	if err = tx.GetContext(ctx, &activeLoans, checkGroup, req.GrupoID, req.Anio, models.LoanStatusActive); err != nil {
		return "", fmt.Errorf("check group loans: %w", err)
	}
	if activeLoans > 0 {
		err = appErrors.ErrGroupHasActiveLoan
		return "", err
	}

	loanID = uuid.NewString()
	now := time.Now().UTC()
	const insertLoan = `
INSERT INTO prestamos (pre_id, caj_codigo, gru_id, doc_rut, pre_anio, pre_fecha_inicio, pre_estado, pre_observaciones)
VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''))`
	if _, err = tx.ExecContext(ctx, insertLoan, loanID, req.CajaCodigo, req.GrupoID, docRut, req.Anio, now, models.LoanStatusActive, req.Observaciones); err != nil {
		return "", fmt.Errorf("insert loan: %w", err)
	}

	const updateBox = `UPDATE cajas SET caj_estado = $1 WHERE caj_codigo = $2`
	if _, err = tx.ExecContext(ctx, updateBox, models.ToolboxStatusLoaned, req.CajaCodigo); err != nil {
		return "", fmt.Errorf("mark toolbox loaned: %w", err)
	}

	const updateUnits = `
UPDATE inv_items SET inv_estado = $1
WHERE inv_id IN (SELECT inv_id FROM items_en_cajas WHERE caj_codigo = $2)
	AND inv_estado = $3`
	if _, err = tx.ExecContext(ctx, updateUnits, models.UnitStatusAssigned, req.CajaCodigo, models.UnitStatusAvailable); err != nil {
		return "", fmt.Errorf("assign box units: %w", err)
	}

	const insertMovement = `
INSERT INTO historial_movimientos (hm_id, hm_fecha, hm_tipo, hm_observaciones, caj_codigo, pre_id, doc_rut)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	note := fmt.Sprintf("préstamo anual %d", req.Anio)
	if _, err = tx.ExecContext(ctx, insertMovement, uuid.NewString(), now, models.MovementLoan, note, req.CajaCodigo, loanID, docRut); err != nil {
		return "", fmt.Errorf("insert loan movement: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("commit assign loan: %w", err)
	}
	return loanID, nil
}

// Return closes a loan after the end-of-year review. The loan row is
// locked and must still be ACTIVO, which makes a repeated return request
// fail cleanly instead of double-processing. Every reviewed id must
// belong to the loaned box; an entry naming any other unit rejects the
// whole request. Each reviewed unit is reclassified: absent units
// become EXTRAVIADO with a FALTANTE report, present units in MALA
// condition go to MANTENIMIENTO with a DAÑADO report, the rest return
// to DISPONIBLE. The loan closes as DEVUELTO or DEVUELTO_PARCIAL and
// the box becomes DISPONIBLE again.
func (r *LoanRepository) Return(ctx context.Context, loanID string, req models.ReturnLoanRequest, docRut string) (result *models.ReturnResult, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin return loan: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var loan struct {
		CajaCodigo string `db:"caj_codigo"`
		Estado     string `db:"pre_estado"`
	}
	const lockLoan = `SELECT caj_codigo, pre_estado FROM prestamos WHERE pre_id = $1 FOR UPDATE`
	if err = tx.GetContext(ctx, &loan, lockLoan, loanID); err != nil {
		if err == sql.ErrNoRows {
			err = appErrors.ErrNotFound
		} else {
			err = fmt.Errorf("lock loan: %w", err)
		}
		return nil, err
	}
	if loan.Estado != models.LoanStatusActive {
		err = appErrors.ErrLoanClosed
		return nil, err
	}

	var boxUnits []string
	const listBoxUnits = `SELECT inv_id FROM items_en_cajas WHERE caj_codigo = $1`
	if err = tx.SelectContext(ctx, &boxUnits, listBoxUnits, loan.CajaCodigo); err != nil {
		return nil, fmt.Errorf("list box units: %w", err)
	}
	inBox := make(map[string]bool, len(boxUnits))
	for _, id := range boxUnits {
		inBox[id] = true
	}
	for _, entry := range req.Revision {
		if !inBox[entry.InventarioID] {
			err = appErrors.Clone(appErrors.ErrValidation, "el item revisado no pertenece a la caja del préstamo")
			return nil, err
		}
	}

	now := time.Now().UTC()
	result = &models.ReturnResult{PrestamoID: loanID}

	const updateUnit = `UPDATE inv_items SET inv_estado = $1, inv_condicion = COALESCE(NULLIF($2, ''), inv_condicion) WHERE inv_id = $3`
	const insertProblem = `
INSERT INTO items_problematicos (ip_id, pre_id, inv_id, ip_tipo, ip_descripcion, ip_estado, ip_fecha_reporte)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)`

	for _, entry := range req.Revision {
		result.ItemsRevisados++
		switch {
		case !entry.Presente:
			result.ItemsFaltantes++
			if _, err = tx.ExecContext(ctx, updateUnit, models.UnitStatusLost, "", entry.InventarioID); err != nil {
				return nil, fmt.Errorf("mark unit lost: %w", err)
			}
			if _, err = tx.ExecContext(ctx, insertProblem, uuid.NewString(), loanID, entry.InventarioID, models.ProblemTypeMissing, entry.Observaciones, models.ProblemStatusPending, now); err != nil {
				return nil, fmt.Errorf("insert missing report: %w", err)
			}
		case entry.Condicion == models.UnitConditionBad:
			result.ItemsDanados++
			if _, err = tx.ExecContext(ctx, updateUnit, models.UnitStatusMaintenance, entry.Condicion, entry.InventarioID); err != nil {
				return nil, fmt.Errorf("send unit to maintenance: %w", err)
			}
			if _, err = tx.ExecContext(ctx, insertProblem, uuid.NewString(), loanID, entry.InventarioID, models.ProblemTypeDamaged, entry.Observaciones, models.ProblemStatusPending, now); err != nil {
				return nil, fmt.Errorf("insert damage report: %w", err)
			}
		default:
			if _, err = tx.ExecContext(ctx, updateUnit, models.UnitStatusAvailable, entry.Condicion, entry.InventarioID); err != nil {
				return nil, fmt.Errorf("restore unit: %w", err)
			}
		}
	}

	result.Estado = models.LoanStatusReturned
	if result.ItemsFaltantes > 0 || result.ItemsDanados > 0 {
		result.Estado = models.LoanStatusReturnedPartial
	}

	const closeLoan = `
UPDATE prestamos SET pre_estado = $1, pre_fecha_fin = $2, pre_observaciones = COALESCE(NULLIF($3, ''), pre_observaciones)
WHERE pre_id = $4`
	if _, err = tx.ExecContext(ctx, closeLoan, result.Estado, now, req.Observaciones, loanID); err != nil {
		return nil, fmt.Errorf("close loan: %w", err)
	}

	const releaseBox = `UPDATE cajas SET caj_estado = $1 WHERE caj_codigo = $2`
	if _, err = tx.ExecContext(ctx, releaseBox, models.ToolboxStatusAvailable, loan.CajaCodigo); err != nil {
		return nil, fmt.Errorf("release toolbox: %w", err)
	}

	const insertMovement = `
INSERT INTO historial_movimientos (hm_id, hm_fecha, hm_tipo, hm_observaciones, caj_codigo, pre_id, doc_rut)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	note := fmt.Sprintf("devolución: %d revisados, %d faltantes, %d dañados", result.ItemsRevisados, result.ItemsFaltantes, result.ItemsDanados)
	if _, err = tx.ExecContext(ctx, insertMovement, uuid.NewString(), now, models.MovementReturn, note, loan.CajaCodigo, loanID, docRut); err != nil {
		return nil, fmt.Errorf("insert return movement: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit return loan: %w", err)
	}
	return result, nil
}
