package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/finbooks/ledger/pkg/domain"
	"github.com/finbooks/ledger/pkg/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDb.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func accountRows(id uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "type", "currency", "created_at"}).
		AddRow(id, uuid.New(), "checking", "USD", time.Now())
}

func TestAccountGetForUpdateLocksRow(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE id = $1 ORDER BY "accounts"."id" LIMIT $2 FOR UPDATE`)).
		WithArgs(id, 1).
		WillReturnRows(accountRows(id))
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(u repository.UnitOfWork) error {
		a, err := u.AccountRepository().GetForUpdate(context.Background(), id)
		if err != nil {
			return err
		}
		assert.Equal(t, id, a.ID)
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountGetNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "accounts"`).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := uow.AccountRepository().Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestEntrySumByAccount(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(amount\), 0\) FROM "ledger_entries" WHERE account_id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("59.75"))

	sum, err := uow.EntryRepository().SumByAccount(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.RequireFromString("59.75")))
}

func TestDoRollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := uow.Do(context.Background(), func(u repository.UnitOfWork) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoWrapsSerializationConflicts(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)

	for _, code := range []string{"40001", "40P01"} {
		mock.ExpectBegin()
		mock.ExpectRollback()

		err := uow.Do(context.Background(), func(u repository.UnitOfWork) error {
			return &pgconn.PgError{Code: code}
		})
		assert.ErrorIs(t, err, repository.ErrSerializationConflict, "code %s", code)
	}
}

func TestDoCommitsTransactionWithEntries(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUoW(db)
	acct := uuid.New()

	tx := domain.NewDeposit(acct, decimal.NewFromInt(100))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "transactions"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "ledger_entries"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := uow.Do(context.Background(), func(u repository.UnitOfWork) error {
		if err := u.TransactionRepository().Create(context.Background(), tx); err != nil {
			return err
		}
		for _, e := range tx.Entries() {
			if err := u.EntryRepository().Create(context.Background(), e); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
