package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/colegio-nocedal/panol-api/internal/models"
)

// TeacherRepository manages persistence for teacher records.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository constructs a TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// FindActiveByRut looks up an active teacher by normalized RUT. Returns
// nil without error when no active teacher matches.
func (r *TeacherRepository) FindActiveByRut(ctx context.Context, rut string) (*models.Teacher, error) {
	const query = `
SELECT doc_rut, doc_nombre, doc_apellido, doc_email, doc_estado, doc_password_hash
FROM docentes
WHERE doc_rut = $1 AND doc_estado = $2`

	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, rut, models.TeacherStatusActive); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("find teacher by rut: %w", err)
	}
	return &teacher, nil
}

// List returns all teachers ordered by last name.
func (r *TeacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	const query = `
SELECT doc_rut, doc_nombre, doc_apellido, doc_email, doc_estado, doc_password_hash
FROM docentes
ORDER BY doc_apellido ASC, doc_nombre ASC`

	var teachers []models.Teacher
	if err := r.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}
