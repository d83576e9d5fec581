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

func newStudentRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
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

func TestStudentRepositoryUpdateStatus(t *testing.T) {
	db, mock, cleanup := newStudentRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT alu_estado FROM alumnos WHERE alu_rut = $1 FOR UPDATE`)).
		WithArgs("20111222-3").
		WillReturnRows(sqlmock.NewRows([]string{"alu_estado"}).AddRow("ACTIVO"))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE alumnos SET alu_estado = $1 WHERE alu_rut = $2`)).
		WithArgs("EGRESADO", "20111222-3").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO historial_movimientos`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), models.MovementStatusChange, sqlmock.AnyArg(), "20111222-3", "11111111-1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	found, err := repo.UpdateStatus(context.Background(), "20111222-3", "EGRESADO", "11111111-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryUpdateStatusNotFound(t *testing.T) {
	db, mock, cleanup := newStudentRepoMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT alu_estado FROM alumnos WHERE alu_rut = $1 FOR UPDATE`)).
		WithArgs("99999999-9").
		WillReturnRows(sqlmock.NewRows([]string{"alu_estado"}))
	mock.ExpectRollback()

	found, err := repo.UpdateStatus(context.Background(), "99999999-9", "INACTIVO", "11111111-1")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}
