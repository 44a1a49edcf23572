// Package repository provides the gorm-backed UnitOfWork binding the account,
// transaction and entry repositories to one Postgres transaction.
package repository

import (
	"context"
	"errors"
	"fmt"

	accountrepo "github.com/finbooks/ledger/infra/repository/account"
	entryrepo "github.com/finbooks/ledger/infra/repository/entry"
	transactionrepo "github.com/finbooks/ledger/infra/repository/transaction"
	"github.com/finbooks/ledger/pkg/repository"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// UoW implements repository.UnitOfWork on gorm. Inside Do every repository
// accessor returns a repository bound to the same transaction; outside Do the
// accessors serve plain reads on the base connection.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a UnitOfWork for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn inside one database transaction. A serialization conflict or
// deadlock reported by Postgres is wrapped with
// repository.ErrSerializationConflict so the engine can retry the whole
// operation.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
	if err != nil && isSerializationConflict(err) {
		return fmt.Errorf("%w: %v", repository.ErrSerializationConflict, err)
	}
	return err
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// AccountRepository returns the account repository bound to the current session.
func (u *UoW) AccountRepository() repository.AccountRepository {
	return accountrepo.New(u.session())
}

// TransactionRepository returns the transaction repository bound to the current session.
func (u *UoW) TransactionRepository() repository.TransactionRepository {
	return transactionrepo.New(u.session())
}

// EntryRepository returns the ledger entry repository bound to the current session.
func (u *UoW) EntryRepository() repository.EntryRepository {
	return entryrepo.New(u.session())
}

func isSerializationConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	// 40001 serialization_failure, 40P01 deadlock_detected
	return pgerrcode.IsTransactionRollback(pgErr.Code)
}

var _ repository.UnitOfWork = (*UoW)(nil)
