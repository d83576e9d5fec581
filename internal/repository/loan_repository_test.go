package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colegio-nocedal/panol-api/internal/models"
	appErrors "github.com/colegio-nocedal/panol-api/pkg/errors"
)

func newLoanRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
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

func TestLoanRepositoryAssignAnnual(t *testing.T) {
	db, mock, cleanup := newLoanRepoMock(t)
	defer cleanup()
	repo := NewLoanRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT caj_estado FROM cajas WHERE caj_codigo = $1 FOR UPDATE`)).
		WithArgs("CAJ-ELEC-001").
		WillReturnRows(sqlmock.NewRows([]string{"caj_estado"}).AddRow("DISPONIBLE"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM prestamos WHERE gru_id = $1 AND pre_anio = $2 AND pre_estado = $3`)).
		WithArgs("grupo-1", 2026, models.LoanStatusActive).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO prestamos`)).
		WithArgs(sqlmock.AnyArg(), "CAJ-ELEC-001", "grupo-1", "11111111-1", 2026, sqlmock.AnyArg(), models.LoanStatusActive, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE cajas SET caj_estado = $1 WHERE caj_codigo = $2`)).
		WithArgs(models.ToolboxStatusLoaned, "CAJ-ELEC-001").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE inv_items SET inv_estado = $1`)).
		WithArgs(models.UnitStatusAssigned, "CAJ-ELEC-001", models.UnitStatusAvailable).
		WillReturnResult(sqlmock.NewResult(0, 12))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO historial_movimientos`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), models.MovementLoan, sqlmock.AnyArg(), "CAJ-ELEC-001", sqlmock.AnyArg(), "11111111-1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	req := models.AssignLoanRequest{CajaCodigo: "CAJ-ELEC-001", GrupoID: "grupo-1", Anio: 2026}
	loanID, err := repo.AssignAnnual(context.Background(), req, "11111111-1")
	require.NoError(t, err)
	assert.NotEmpty(t, loanID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanRepositoryAssignAnnualBoxUnavailable(t *testing.T) {
	db, mock, cleanup := newLoanRepoMock(t)
	defer cleanup()
	repo := NewLoanRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT caj_estado FROM cajas WHERE caj_codigo = $1 FOR UPDATE`)).
		WithArgs("CAJ-ELEC-001").
		WillReturnRows(sqlmock.NewRows([]string{"caj_estado"}).AddRow("PRESTADA"))
	mock.ExpectRollback()

	req := models.AssignLoanRequest{CajaCodigo: "CAJ-ELEC-001", GrupoID: "grupo-1", Anio: 2026}
	_, err := repo.AssignAnnual(context.Background(), req, "11111111-1")
	assert.ErrorIs(t, err, appErrors.ErrBoxUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanRepositoryAssignAnnualGroupAlreadyServed(t *testing.T) {
	db, mock, cleanup := newLoanRepoMock(t)
	defer cleanup()
	repo := NewLoanRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT caj_estado FROM cajas WHERE caj_codigo = $1 FOR UPDATE`)).
		WithArgs("CAJ-ELEC-001").
		WillReturnRows(sqlmock.NewRows([]string{"caj_estado"}).AddRow("DISPONIBLE"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM prestamos`)).
		WithArgs("grupo-1", 2026, models.LoanStatusActive).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	req := models.AssignLoanRequest{CajaCodigo: "CAJ-ELEC-001", GrupoID: "grupo-1", Anio: 2026}
	_, err := repo.AssignAnnual(context.Background(), req, "11111111-1")
	assert.ErrorIs(t, err, appErrors.ErrGroupHasActiveLoan)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanRepositoryReturn(t *testing.T) {
	db, mock, cleanup := newLoanRepoMock(t)
	defer cleanup()
	repo := NewLoanRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT caj_codigo, pre_estado FROM prestamos WHERE pre_id = $1 FOR UPDATE`)).
		WithArgs("loan-1").
		WillReturnRows(sqlmock.NewRows([]string{"caj_codigo", "pre_estado"}).AddRow("CAJ-ELEC-001", "ACTIVO"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT inv_id FROM items_en_cajas WHERE caj_codigo = $1`)).
		WithArgs("CAJ-ELEC-001").
		WillReturnRows(sqlmock.NewRows([]string{"inv_id"}).AddRow("unit-1").AddRow("unit-2").AddRow("unit-3"))

	// unit present in good shape goes back to DISPONIBLE
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE inv_items SET inv_estado = $1`)).
		WithArgs(models.UnitStatusAvailable, models.UnitConditionGood, "unit-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	// absent unit becomes EXTRAVIADO with a FALTANTE report
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE inv_items SET inv_estado = $1`)).
		WithArgs(models.UnitStatusLost, "", "unit-2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO items_problematicos`)).
		WithArgs(sqlmock.AnyArg(), "loan-1", "unit-2", models.ProblemTypeMissing, sqlmock.AnyArg(), models.ProblemStatusPending, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	// damaged unit goes to MANTENIMIENTO with a DAÑADO report
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE inv_items SET inv_estado = $1`)).
		WithArgs(models.UnitStatusMaintenance, models.UnitConditionBad, "unit-3").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO items_problematicos`)).
		WithArgs(sqlmock.AnyArg(), "loan-1", "unit-3", models.ProblemTypeDamaged, sqlmock.AnyArg(), models.ProblemStatusPending, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE prestamos SET pre_estado = $1`)).
		WithArgs(models.LoanStatusReturnedPartial, sqlmock.AnyArg(), sqlmock.AnyArg(), "loan-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE cajas SET caj_estado = $1 WHERE caj_codigo = $2`)).
		WithArgs(models.ToolboxStatusAvailable, "CAJ-ELEC-001").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO historial_movimientos`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), models.MovementReturn, sqlmock.AnyArg(), "CAJ-ELEC-001", "loan-1", "11111111-1").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	req := models.ReturnLoanRequest{Revision: []models.ReviewEntry{
		{InventarioID: "unit-1", Presente: true, Condicion: models.UnitConditionGood},
		{InventarioID: "unit-2", Presente: false},
		{InventarioID: "unit-3", Presente: true, Condicion: models.UnitConditionBad},
	}}
	result, err := repo.Return(context.Background(), "loan-1", req, "11111111-1")
	require.NoError(t, err)
	assert.Equal(t, models.LoanStatusReturnedPartial, result.Estado)
	assert.Equal(t, 3, result.ItemsRevisados)
	assert.Equal(t, 1, result.ItemsFaltantes)
	assert.Equal(t, 1, result.ItemsDanados)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanRepositoryReturnRejectsForeignUnit(t *testing.T) {
	db, mock, cleanup := newLoanRepoMock(t)
	defer cleanup()
	repo := NewLoanRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT caj_codigo, pre_estado FROM prestamos WHERE pre_id = $1 FOR UPDATE`)).
		WithArgs("loan-1").
		WillReturnRows(sqlmock.NewRows([]string{"caj_codigo", "pre_estado"}).AddRow("CAJ-ELEC-001", "ACTIVO"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT inv_id FROM items_en_cajas WHERE caj_codigo = $1`)).
		WithArgs("CAJ-ELEC-001").
		WillReturnRows(sqlmock.NewRows([]string{"inv_id"}).AddRow("unit-1"))
	mock.ExpectRollback()

	req := models.ReturnLoanRequest{Revision: []models.ReviewEntry{
		{InventarioID: "unit-1", Presente: true, Condicion: models.UnitConditionGood},
		{InventarioID: "unit-otra-caja", Presente: false},
	}}
	_, err := repo.Return(context.Background(), "loan-1", req, "11111111-1")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanRepositoryReturnAlreadyClosed(t *testing.T) {
	db, mock, cleanup := newLoanRepoMock(t)
	defer cleanup()
	repo := NewLoanRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT caj_codigo, pre_estado FROM prestamos WHERE pre_id = $1 FOR UPDATE`)).
		WithArgs("loan-1").
		WillReturnRows(sqlmock.NewRows([]string{"caj_codigo", "pre_estado"}).AddRow("CAJ-ELEC-001", "DEVUELTO"))
	mock.ExpectRollback()

	req := models.ReturnLoanRequest{Revision: []models.ReviewEntry{{InventarioID: "unit-1", Presente: true}}}
	_, err := repo.Return(context.Background(), "loan-1", req, "11111111-1")
	assert.ErrorIs(t, err, appErrors.ErrLoanClosed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanRepositoryList(t *testing.T) {
	db, mock, cleanup := newLoanRepoMock(t)
	defer cleanup()
	repo := NewLoanRepository(db)

	rows := sqlmock.NewRows([]string{
		"pre_id", "caj_codigo", "gru_id", "doc_rut", "pre_anio", "pre_fecha_inicio", "pre_fecha_fin", "pre_estado", "pre_observaciones",
		"caj_numero", "gru_numero", "gru_nombre", "cur_codigo", "cur_nombre", "tal_codigo", "tal_nombre", "doc_nombre",
	}).AddRow(
		"loan-1", "CAJ-ELEC-001", "grupo-1", "11111111-1", 2026, time.Now(), nil, "ACTIVO", nil,
		1, 3, nil, "3A-ELEC", "3°A Electricidad", "ELEC", "Electricidad", "Ana Rojas",
	)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM prestamos p`)).
		WithArgs(2026).
		WillReturnRows(rows)

	loans, err := repo.List(context.Background(), models.LoanFilter{Anio: 2026})
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, "CAJ-ELEC-001", loans[0].CajaCodigo)
	assert.Equal(t, models.LoanStatusActive, loans[0].Estado)
}
