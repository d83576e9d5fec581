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
)

func newDashboardRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
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

func TestDashboardRepositoryMetrics(t *testing.T) {
	db, mock, cleanup := newDashboardRepoMock(t)
	defer cleanup()
	repo := NewDashboardRepository(db)

	rows := sqlmock.NewRows([]string{"total_cajas", "cajas_disponibles", "prestamos_activos", "items_extraviados"}).
		AddRow(40, 12, 28, 5)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).WillReturnRows(rows)

	metrics, err := repo.Metrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 40, metrics.TotalCajas)
	assert.Equal(t, 28, metrics.PrestamosActivos)
}

func TestDashboardRepositoryRecentLoans(t *testing.T) {
	db, mock, cleanup := newDashboardRepoMock(t)
	defer cleanup()
	repo := NewDashboardRepository(db)

	rows := sqlmock.NewRows([]string{"pre_id", "pre_fecha_inicio", "pre_estado", "caj_codigo", "gru_numero", "cur_nombre", "tal_nombre"}).
		AddRow("loan-1", time.Now(), "ACTIVO", "CAJ-ELEC-001", 3, "3°A Electricidad", "Electricidad")
	mock.ExpectQuery(regexp.QuoteMeta(`FROM prestamos p`)).
		WithArgs(10).
		WillReturnRows(rows)

	loans, err := repo.RecentLoans(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, "CAJ-ELEC-001", loans[0].CajaCodigo)
}

func TestDashboardRepositoryAlertCounts(t *testing.T) {
	db, mock, cleanup := newDashboardRepoMock(t)
	defer cleanup()
	repo := NewDashboardRepository(db)

	rows := sqlmock.NewRows([]string{"pending_problems", "boxes_maintenance", "boxes_lost"}).AddRow(4, 2, 1)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).WillReturnRows(rows)

	problems, maintenance, lost, err := repo.AlertCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, problems)
	assert.Equal(t, 2, maintenance)
	assert.Equal(t, 1, lost)
}
