package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colegio-nocedal/panol-api/internal/models"
)

func newTeacherRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	cleanup := func() {
		_ = sqlxDB.Close()
		db.Close()
	}
	return sqlxDB, mock, cleanup
}

func TestTeacherRepositoryFindActiveByRut(t *testing.T) {
	db, mock, cleanup := newTeacherRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	rows := sqlmock.NewRows([]string{"doc_rut", "doc_nombre", "doc_apellido", "doc_email", "doc_estado", "doc_password_hash"}).
		AddRow("11111111-1", "Ana", "Rojas", "arojas@nocedal.cl", "ACTIVO", nil)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM docentes`)).
		WithArgs("11111111-1", models.TeacherStatusActive).
		WillReturnRows(rows)

	teacher, err := repo.FindActiveByRut(context.Background(), "11111111-1")
	require.NoError(t, err)
	require.NotNil(t, teacher)
	assert.Equal(t, "Ana", teacher.Nombre)
	assert.Nil(t, teacher.PasswordHash)
}

func TestTeacherRepositoryFindActiveByRutNotFound(t *testing.T) {
	db, mock, cleanup := newTeacherRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM docentes`)).
		WithArgs("22222222-2", models.TeacherStatusActive).
		WillReturnRows(sqlmock.NewRows([]string{"doc_rut"}))

	teacher, err := repo.FindActiveByRut(context.Background(), "22222222-2")
	require.NoError(t, err)
	assert.Nil(t, teacher)
}
