package repository

import "context"

// UnitOfWork is the transaction boundary of the ledger store. Do runs fn
// inside one atomic unit: every repository obtained from the UnitOfWork passed
// to fn is bound to the same store transaction, so a group of reads and writes
// commits or rolls back as a whole. If fn returns an error nothing is
// persisted.
//
// Repository accessors are part of the UnitOfWork so that service code cannot
// accidentally mix sessions and break atomicity. Outside of Do, accessors
// return repositories bound to the base connection (plain reads).
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	AccountRepository() AccountRepository
	TransactionRepository() TransactionRepository
	EntryRepository() EntryRepository
}
