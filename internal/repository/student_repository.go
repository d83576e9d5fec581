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

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns students matching the provided filters, newest course first.
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]models.StudentDetail, error) {
	query := strings.Builder{}
	query.WriteString(`
SELECT
	a.alu_rut,
	a.alu_nombres,
	a.alu_apellidos,
	a.alu_email,
	a.alu_telefono,
	a.alu_estado,
	a.alu_anio_ingreso,
	a.cur_codigo,
	c.cur_nombre
FROM alumnos a
LEFT JOIN cursos c ON c.cur_codigo = a.cur_codigo
WHERE 1=1`)

	args := []interface{}{}
	if filter.Estado != "" {
		args = append(args, filter.Estado)
		fmt.Fprintf(&query, " AND a.alu_estado = $%d", len(args))
	}
	if filter.CursoCodigo != "" {
		args = append(args, filter.CursoCodigo)
		fmt.Fprintf(&query, " AND a.cur_codigo = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
		fmt.Fprintf(&query, " AND (LOWER(a.alu_nombres) LIKE $%d OR LOWER(a.alu_apellidos) LIKE $%d OR a.alu_rut LIKE $%d)", len(args), len(args), len(args))
	}
	query.WriteString("\nORDER BY a.alu_apellidos ASC, a.alu_nombres ASC")

	var students []models.StudentDetail
	if err := r.db.SelectContext(ctx, &students, query.String(), args...); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// FindByRut fetches a single student. Returns nil when no row matches.
func (r *StudentRepository) FindByRut(ctx context.Context, rut string) (*models.StudentDetail, error) {
	const query = `
SELECT
	a.alu_rut,
	a.alu_nombres,
	a.alu_apellidos,
	a.alu_email,
	a.alu_telefono,
	a.alu_estado,
	a.alu_anio_ingreso,
	a.cur_codigo,
	c.cur_nombre
FROM alumnos a
LEFT JOIN cursos c ON c.cur_codigo = a.cur_codigo
WHERE a.alu_rut = $1`

	var student models.StudentDetail
	if err := r.db.GetContext(ctx, &student, query, rut); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find student: %w", err)
	}
	return &student, nil
}

// Groups returns every group membership of the student across years,
// most recent year first.
func (r *StudentRepository) Groups(ctx context.Context, rut string) ([]models.StudentGroup, error) {
	const query = `
SELECT
	g.gru_id,
	g.gru_numero,
	g.gru_nombre,
	g.gru_anio,
	ig.ig_rol,
	c.cur_codigo,
	c.cur_nombre,
	t.tal_nombre
FROM integrantes_grupo ig
JOIN grupos g ON g.gru_id = ig.gru_id
JOIN cursos c ON c.cur_codigo = g.cur_codigo
LEFT JOIN talleres t ON t.tal_codigo = c.tal_codigo
WHERE ig.alu_rut = $1
ORDER BY g.gru_anio DESC, g.gru_numero ASC`

	var groups []models.StudentGroup
	if err := r.db.SelectContext(ctx, &groups, query, rut); err != nil {
		return nil, fmt.Errorf("list student groups: %w", err)
	}
	return groups, nil
}

// LoanHistory returns loans granted to any group the student belonged to.
func (r *StudentRepository) LoanHistory(ctx context.Context, rut string) ([]models.LoanDetail, error) {
	const query = `
SELECT
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
	d.doc_nombre || ' ' || d.doc_apellido AS doc_nombre
FROM prestamos p
JOIN grupos g ON g.gru_id = p.gru_id
JOIN integrantes_grupo ig ON ig.gru_id = g.gru_id AND ig.alu_rut = $1
JOIN cajas cj ON cj.caj_codigo = p.caj_codigo
JOIN cursos c ON c.cur_codigo = g.cur_codigo
LEFT JOIN talleres t ON t.tal_codigo = c.tal_codigo
LEFT JOIN docentes d ON d.doc_rut = p.doc_rut
ORDER BY p.pre_fecha_inicio DESC`

	var loans []models.LoanDetail
	if err := r.db.SelectContext(ctx, &loans, query, rut); err != nil {
		return nil, fmt.Errorf("list student loan history: %w", err)
	}
	return loans, nil
}

// Create inserts a new student row.
func (r *StudentRepository) Create(ctx context.Context, student models.Student) error {
	const query = `
INSERT INTO alumnos (alu_rut, alu_nombres, alu_apellidos, alu_email, alu_telefono, alu_estado, alu_anio_ingreso, cur_codigo)
VALUES (:alu_rut, :alu_nombres, :alu_apellidos, :alu_email, :alu_telefono, :alu_estado, :alu_anio_ingreso, :cur_codigo)`

	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// Update replaces a student's editable fields. Returns false when the
// student does not exist.
func (r *StudentRepository) Update(ctx context.Context, student models.Student) (bool, error) {
	const query = `
UPDATE alumnos
SET alu_nombres = :alu_nombres,
	alu_apellidos = :alu_apellidos,
	alu_email = :alu_email,
	alu_telefono = :alu_telefono,
	alu_anio_ingreso = :alu_anio_ingreso,
	cur_codigo = :cur_codigo
WHERE alu_rut = :alu_rut`

	result, err := r.db.NamedExecContext(ctx, query, student)
	if err != nil {
		return false, fmt.Errorf("update student: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update student rows: %w", err)
	}
	return rows > 0, nil
}

// UpdateStatus flips a student's enrollment status and records the
// change in the movement trail. Returns false when the student does
// not exist.
func (r *StudentRepository) UpdateStatus(ctx context.Context, rut, estado, docRut string) (found bool, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin student status: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var current string
	const lockQuery = `SELECT alu_estado FROM alumnos WHERE alu_rut = $1 FOR UPDATE`
	if err = tx.GetContext(ctx, &current, lockQuery, rut); err != nil {
		if err == sql.ErrNoRows {
			err = nil
			_ = tx.Rollback()
			return false, nil
		}
		return false, fmt.Errorf("lock student: %w", err)
	}

	const updateQuery = `UPDATE alumnos SET alu_estado = $1 WHERE alu_rut = $2`
	if _, err = tx.ExecContext(ctx, updateQuery, estado, rut); err != nil {
		return false, fmt.Errorf("update student status: %w", err)
	}

	const historyQuery = `
INSERT INTO historial_movimientos (hm_id, hm_fecha, hm_tipo, hm_observaciones, alu_rut, doc_rut)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))`
	note := fmt.Sprintf("%s -> %s", current, estado)
	if _, err = tx.ExecContext(ctx, historyQuery, uuid.NewString(), time.Now().UTC(), models.MovementStatusChange, note, rut, docRut); err != nil {
		return false, fmt.Errorf("insert student movement: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("commit student status: %w", err)
	}
	return true, nil
}
