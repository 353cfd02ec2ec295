package employee_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-timesheet/internal/employee"
)

func setupRepoTest(t *testing.T) (employee.Repository, *sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return employee.NewRepository(gdb), db, mock
}

func TestRepositoryWithTx(t *testing.T) {
	ctx := context.Background()
	empID := "0703985123456"

	t.Run("statements run on the transaction", func(t *testing.T) {
		repo, db, mock := setupRepoTest(t)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM working_times WHERE employee_id = $1")).
			WithArgs(empID).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectRollback()

		tx, err := db.Begin()
		require.NoError(t, err)

		require.NoError(t, repo.WithTx(tx).DeleteWorkingTimes(ctx, empID))
		require.NoError(t, tx.Rollback())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("without a transaction statements run on the pool", func(t *testing.T) {
		repo, _, mock := setupRepoTest(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM working_times WHERE employee_id = $1")).
			WithArgs(empID).
			WillReturnResult(sqlmock.NewResult(0, 2))

		require.NoError(t, repo.DeleteWorkingTimes(ctx, empID))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
