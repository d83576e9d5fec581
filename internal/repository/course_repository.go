package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/colegio-nocedal/panol-api/internal/models"
)

// CourseRepository manages persistence for course records.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// List returns courses, optionally limited to a workshop or year.
func (r *CourseRepository) List(ctx context.Context, tallerCodigo string, anio int) ([]models.CourseDetail, error) {
	query := strings.Builder{}
	query.WriteString(`
SELECT
	c.cur_codigo,
	c.cur_nombre,
	c.cur_nivel,
	c.cur_letra,
	c.cur_anio,
	c.cur_cupos,
	c.tal_codigo,
	t.tal_nombre,
	COUNT(DISTINCT a.alu_rut) AS total_alumnos,
	COUNT(DISTINCT g.gru_id) AS total_grupos
FROM cursos c
LEFT JOIN talleres t ON t.tal_codigo = c.tal_codigo
LEFT JOIN alumnos a ON a.cur_codigo = c.cur_codigo AND a.alu_estado = 'ACTIVO'
LEFT JOIN grupos g ON g.cur_codigo = c.cur_codigo
WHERE 1=1`)

	args := []interface{}{}
	if tallerCodigo != "" {
		args = append(args, tallerCodigo)
		fmt.Fprintf(&query, " AND c.tal_codigo = $%d", len(args))
	}
	if anio > 0 {
		args = append(args, anio)
		fmt.Fprintf(&query, " AND c.cur_anio = $%d", len(args))
	}
	query.WriteString(`
GROUP BY c.cur_codigo, c.cur_nombre, c.cur_nivel, c.cur_letra, c.cur_anio, c.cur_cupos, c.tal_codigo, t.tal_nombre
ORDER BY c.cur_nombre ASC`)

	var courses []models.CourseDetail
	if err := r.db.SelectContext(ctx, &courses, query.String(), args...); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// Create inserts a course section.
func (r *CourseRepository) Create(ctx context.Context, req models.CreateCourseRequest) error {
	const query = `
INSERT INTO cursos (cur_codigo, cur_nombre, cur_nivel, cur_letra, cur_anio, cur_cupos, tal_codigo)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, NULLIF($6, 0), NULLIF($7, ''))`

	if _, err := r.db.ExecContext(ctx, query, req.Codigo, req.Nombre, req.Nivel, req.Letra, req.Anio, req.Cupos, req.TallerCodigo); err != nil {
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

// FindByCode fetches a single course. Returns nil when no row matches.
func (r *CourseRepository) FindByCode(ctx context.Context, code string) (*models.CourseDetail, error) {
	const query = `
SELECT
	c.cur_codigo,
	c.cur_nombre,
	c.cur_nivel,
	c.cur_letra,
	c.cur_anio,
	c.cur_cupos,
	c.tal_codigo,
	t.tal_nombre,
	COUNT(DISTINCT a.alu_rut) AS total_alumnos,
	COUNT(DISTINCT g.gru_id) AS total_grupos
FROM cursos c
LEFT JOIN talleres t ON t.tal_codigo = c.tal_codigo
LEFT JOIN alumnos a ON a.cur_codigo = c.cur_codigo AND a.alu_estado = 'ACTIVO'
LEFT JOIN grupos g ON g.cur_codigo = c.cur_codigo
WHERE c.cur_codigo = $1
GROUP BY c.cur_codigo, c.cur_nombre, c.cur_nivel, c.cur_letra, c.cur_anio, c.cur_cupos, c.tal_codigo, t.tal_nombre`

	var course models.CourseDetail
	if err := r.db.GetContext(ctx, &course, query, code); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return &course, nil
}
