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

func newToolboxRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
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

func toolboxRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"caj_codigo", "caj_numero", "tal_codigo", "caj_estado", "caj_candado", "caj_observaciones",
		"tal_nombre", "completitud", "total_items",
	})
}

func TestToolboxRepositoryList(t *testing.T) {
	db, mock, cleanup := newToolboxRepoMock(t)
	defer cleanup()
	repo := NewToolboxRepository(db)

	rows := toolboxRows().
		AddRow("CAJ-ELEC-001", 1, "ELEC", "DISPONIBLE", "L-101", nil, "Electricidad", 100.0, 12).
		AddRow("CAJ-ELEC-002", 2, "ELEC", "PRESTADA", "L-102", nil, "Electricidad", 83.3, 10)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM cajas cj`)).
		WithArgs("ELEC").
		WillReturnRows(rows)

	boxes, err := repo.List(context.Background(), models.ToolboxFilter{TallerCodigo: "ELEC"})
	require.NoError(t, err)
	require.Len(t, boxes, 2)
	assert.Equal(t, 100.0, boxes[0].Completitud)
	assert.Equal(t, models.ToolboxStatusLoaned, boxes[1].Estado)
}

func TestToolboxRepositoryFindByCodeNotFound(t *testing.T) {
	db, mock, cleanup := newToolboxRepoMock(t)
	defer cleanup()
	repo := NewToolboxRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM cajas cj`)).
		WithArgs("CAJ-NONE").
		WillReturnRows(toolboxRows())

	box, err := repo.FindByCode(context.Background(), "CAJ-NONE")
	require.NoError(t, err)
	assert.Nil(t, box)
}

func TestToolboxRepositoryUpdateStatus(t *testing.T) {
	db, mock, cleanup := newToolboxRepoMock(t)
	defer cleanup()
	repo := NewToolboxRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT caj_estado FROM cajas WHERE caj_codigo = $1 FOR UPDATE`)).
		WithArgs("CAJ-ELEC-001").
		WillReturnRows(sqlmock.NewRows([]string{"caj_estado"}).AddRow("DISPONIBLE"))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE cajas SET caj_estado = $1`)).
		WithArgs("MANTENIMIENTO", "bisagra rota", "CAJ-ELEC-001").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO historial_movimientos`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), models.MovementStatusChange, sqlmock.AnyArg(), "CAJ-ELEC-001", "11111111-1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	found, err := repo.UpdateStatus(context.Background(), "CAJ-ELEC-001", "MANTENIMIENTO", "bisagra rota", "11111111-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToolboxRepositoryUpdateStatusNotFound(t *testing.T) {
	db, mock, cleanup := newToolboxRepoMock(t)
	defer cleanup()
	repo := NewToolboxRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT caj_estado FROM cajas WHERE caj_codigo = $1 FOR UPDATE`)).
		WithArgs("CAJ-NONE").
		WillReturnRows(sqlmock.NewRows([]string{"caj_estado"}))
	mock.ExpectRollback()

	found, err := repo.UpdateStatus(context.Background(), "CAJ-NONE", "MANTENIMIENTO", "", "11111111-1")
	require.NoError(t, err)
	assert.False(t, found)
}
