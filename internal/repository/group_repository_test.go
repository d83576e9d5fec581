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

func newGroupRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
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

func TestGroupRepositoryUpdateStatus(t *testing.T) {
	db, mock, cleanup := newGroupRepoMock(t)
	defer cleanup()
	repo := NewGroupRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT gru_estado FROM grupos WHERE gru_id = $1 FOR UPDATE`)).
		WithArgs("grupo-1").
		WillReturnRows(sqlmock.NewRows([]string{"gru_estado"}).AddRow("ACTIVO"))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE grupos SET gru_estado = $1 WHERE gru_id = $2`)).
		WithArgs("INACTIVO", "grupo-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO historial_movimientos`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), models.MovementStatusChange, sqlmock.AnyArg(), "11111111-1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	found, err := repo.UpdateStatus(context.Background(), "grupo-1", "INACTIVO", "11111111-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupRepositoryUpdateStatusNotFound(t *testing.T) {
	db, mock, cleanup := newGroupRepoMock(t)
	defer cleanup()
	repo := NewGroupRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT gru_estado FROM grupos WHERE gru_id = $1 FOR UPDATE`)).
		WithArgs("grupo-none").
		WillReturnRows(sqlmock.NewRows([]string{"gru_estado"}))
	mock.ExpectRollback()

	found, err := repo.UpdateStatus(context.Background(), "grupo-none", "INACTIVO", "11111111-1")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}
