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

// GroupRepository manages persistence for student groups and memberships.
type GroupRepository struct {
	db *sqlx.DB
}

// NewGroupRepository constructs a GroupRepository.
func NewGroupRepository(db *sqlx.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// List returns groups matching the filter with membership counts.
func (r *GroupRepository) List(ctx context.Context, filter models.GroupFilter) ([]models.GroupDetail, error) {
	query := strings.Builder{}
	query.WriteString(`
SELECT
	g.gru_id,
	g.gru_numero,
	g.gru_nombre,
	g.cur_codigo,
	g.gru_anio,
	g.gru_estado,
	c.cur_nombre,
	t.tal_codigo,
	t.tal_nombre,
	COUNT(ig.ig_id) AS total_integrantes
FROM grupos g
JOIN cursos c ON c.cur_codigo = g.cur_codigo
LEFT JOIN talleres t ON t.tal_codigo = c.tal_codigo
LEFT JOIN integrantes_grupo ig ON ig.gru_id = g.gru_id
WHERE g.gru_estado = 'ACTIVO'`)

	args := []interface{}{}
	if filter.CursoCodigo != "" {
		args = append(args, filter.CursoCodigo)
		fmt.Fprintf(&query, " AND g.cur_codigo = $%d", len(args))
	}
	if filter.Anio > 0 {
		args = append(args, filter.Anio)
		fmt.Fprintf(&query, " AND g.gru_anio = $%d", len(args))
	}
	query.WriteString(`
GROUP BY g.gru_id, g.gru_numero, g.gru_nombre, g.cur_codigo, g.gru_anio, g.gru_estado, c.cur_nombre, t.tal_codigo, t.tal_nombre
ORDER BY c.cur_nombre ASC, g.gru_numero ASC`)

	var groups []models.GroupDetail
	if err := r.db.SelectContext(ctx, &groups, query.String(), args...); err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	return groups, nil
}

// FindByID fetches one group. Returns nil when no row matches.
func (r *GroupRepository) FindByID(ctx context.Context, id string) (*models.GroupDetail, error) {
	const query = `
SELECT
	g.gru_id,
	g.gru_numero,
	g.gru_nombre,
	g.cur_codigo,
	g.gru_anio,
	g.gru_estado,
	c.cur_nombre,
	t.tal_codigo,
	t.tal_nombre,
	COUNT(ig.ig_id) AS total_integrantes
FROM grupos g
JOIN cursos c ON c.cur_codigo = g.cur_codigo
LEFT JOIN talleres t ON t.tal_codigo = c.tal_codigo
LEFT JOIN integrantes_grupo ig ON ig.gru_id = g.gru_id
WHERE g.gru_id = $1
GROUP BY g.gru_id, g.gru_numero, g.gru_nombre, g.cur_codigo, g.gru_anio, g.gru_estado, c.cur_nombre, t.tal_codigo, t.tal_nombre`

	var group models.GroupDetail
	if err := r.db.GetContext(ctx, &group, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find group: %w", err)
	}
	return &group, nil
}

// Members returns the students belonging to a group.
func (r *GroupRepository) Members(ctx context.Context, groupID string) ([]models.GroupMember, error) {
	const query = `
SELECT
	ig.ig_id,
	ig.gru_id,
	ig.alu_rut,
	ig.ig_rol,
	a.alu_nombres,
	a.alu_apellidos,
	a.alu_estado
FROM integrantes_grupo ig
JOIN alumnos a ON a.alu_rut = ig.alu_rut
WHERE ig.gru_id = $1
ORDER BY ig.ig_rol DESC, a.alu_apellidos ASC`

	var members []models.GroupMember
	if err := r.db.SelectContext(ctx, &members, query, groupID); err != nil {
		return nil, fmt.Errorf("list group members: %w", err)
	}
	return members, nil
}

// ListWithoutLoan returns groups that have no active loan for the year,
// which is the candidate list when assigning boxes.
func (r *GroupRepository) ListWithoutLoan(ctx context.Context, anio int) ([]models.GroupDetail, error) {
	const query = `
SELECT
	g.gru_id,
	g.gru_numero,
	g.gru_nombre,
	g.cur_codigo,
	g.gru_anio,
	g.gru_estado,
	c.cur_nombre,
	t.tal_codigo,
	t.tal_nombre,
	COUNT(ig.ig_id) AS total_integrantes
FROM grupos g
JOIN cursos c ON c.cur_codigo = g.cur_codigo
LEFT JOIN talleres t ON t.tal_codigo = c.tal_codigo
LEFT JOIN integrantes_grupo ig ON ig.gru_id = g.gru_id
WHERE g.gru_anio = $1
	AND g.gru_estado = 'ACTIVO'
	AND NOT EXISTS (
		SELECT 1 FROM prestamos p
		WHERE p.gru_id = g.gru_id AND p.pre_anio = $1 AND p.pre_estado = 'ACTIVO'
	)
GROUP BY g.gru_id, g.gru_numero, g.gru_nombre, g.cur_codigo, g.gru_anio, g.gru_estado, c.cur_nombre, t.tal_codigo, t.tal_nombre
ORDER BY c.cur_nombre ASC, g.gru_numero ASC`

	var groups []models.GroupDetail
	if err := r.db.SelectContext(ctx, &groups, query, anio); err != nil {
		return nil, fmt.Errorf("list groups without loan: %w", err)
	}
	return groups, nil
}

// Create inserts the group and its initial members atomically.
func (r *GroupRepository) Create(ctx context.Context, req models.CreateGroupRequest) (groupID string, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin create group: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	groupID = uuid.NewString()
	const insertGroup = `
INSERT INTO grupos (gru_id, gru_numero, gru_nombre, cur_codigo, gru_anio, gru_estado)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)`
	if _, err = tx.ExecContext(ctx, insertGroup, groupID, req.Numero, req.Nombre, req.CursoCodigo, req.Anio, models.GroupStatusActive); err != nil {
		return "", fmt.Errorf("insert group: %w", err)
	}

	const insertMember = `
INSERT INTO integrantes_grupo (ig_id, gru_id, alu_rut, ig_rol)
VALUES ($1, $2, $3, $4)`
	for i, rut := range req.Integrantes {
		rol := models.GroupRoleMember
		if i == 0 {
			rol = models.GroupRoleResponsible
		}
		if _, err = tx.ExecContext(ctx, insertMember, uuid.NewString(), groupID, rut, rol); err != nil {
			return "", fmt.Errorf("insert group member: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("commit create group: %w", err)
	}
	return groupID, nil
}

// AddMember adds one student to a group, demoting nobody. The caller is
// responsible for size and role checks.
func (r *GroupRepository) AddMember(ctx context.Context, groupID, rut, rol string) error {
	const query = `
INSERT INTO integrantes_grupo (ig_id, gru_id, alu_rut, ig_rol)
VALUES ($1, $2, $3, $4)`

	if _, err := r.db.ExecContext(ctx, query, uuid.NewString(), groupID, rut, rol); err != nil {
		return fmt.Errorf("add group member: %w", err)
	}
	return nil
}

// RemoveMember deletes a membership row. Returns false when nothing matched.
func (r *GroupRepository) RemoveMember(ctx context.Context, groupID, rut string) (bool, error) {
	const query = `DELETE FROM integrantes_grupo WHERE gru_id = $1 AND alu_rut = $2`

	result, err := r.db.ExecContext(ctx, query, groupID, rut)
	if err != nil {
		return false, fmt.Errorf("remove group member: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("remove group member rows: %w", err)
	}
	return rows > 0, nil
}

// UpdateStatus flips a group's lifecycle state and records the change
// in the movement trail. The trail has no group column, so the entry
// carries the group id in its note. Returns false when the group does
// not exist.
func (r *GroupRepository) UpdateStatus(ctx context.Context, groupID, estado, docRut string) (found bool, err error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin group status: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var current string
	const lockQuery = `SELECT gru_estado FROM grupos WHERE gru_id = $1 FOR UPDATE`
	if err = tx.GetContext(ctx, &current, lockQuery, groupID); err != nil {
		if err == sql.ErrNoRows {
			err = nil
			_ = tx.Rollback()
			return false, nil
		}
		return false, fmt.Errorf("lock group: %w", err)
	}

	const updateQuery = `UPDATE grupos SET gru_estado = $1 WHERE gru_id = $2`
	if _, err = tx.ExecContext(ctx, updateQuery, estado, groupID); err != nil {
		return false, fmt.Errorf("update group status: %w", err)
	}

	const historyQuery = `
INSERT INTO historial_movimientos (hm_id, hm_fecha, hm_tipo, hm_observaciones, doc_rut)
VALUES ($1, $2, $3, $4, NULLIF($5, ''))`
	note := fmt.Sprintf("grupo %s: %s -> %s", groupID, current, estado)
	if _, err = tx.ExecContext(ctx, historyQuery, uuid.NewString(), time.Now().UTC(), models.MovementStatusChange, note, docRut); err != nil {
		return false, fmt.Errorf("insert group movement: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("commit group status: %w", err)
	}
	return true, nil
}

// HasActiveLoan reports whether the group holds an ACTIVO loan for the year.
func (r *GroupRepository) HasActiveLoan(ctx context.Context, groupID string, anio int) (bool, error) {
	const query = `SELECT COUNT(*) FROM prestamos WHERE gru_id = $1 AND pre_anio = $2 AND pre_estado = 'ACTIVO'`

	var count int
	if err := r.db.GetContext(ctx, &count, query, groupID, anio); err != nil {
		return false, fmt.Errorf("count active group loans: %w", err)
	}
	return count > 0, nil
}

// HasResponsible reports whether the group already has a RESPONSABLE member.
func (r *GroupRepository) HasResponsible(ctx context.Context, groupID string) (bool, error) {
	const query = `SELECT COUNT(*) FROM integrantes_grupo WHERE gru_id = $1 AND ig_rol = 'RESPONSABLE'`

	var count int
	if err := r.db.GetContext(ctx, &count, query, groupID); err != nil {
		return false, fmt.Errorf("count group responsibles: %w", err)
	}
	return count > 0, nil
}
