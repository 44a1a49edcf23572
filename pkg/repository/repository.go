// Package repository defines the data-access contracts of the ledger. The
// engine only ever sees these interfaces; the gorm implementations live under
// infra/repository.
package repository

import (
	"context"

	"github.com/finbooks/ledger/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountRepository defines account data access. Accounts are created once and
// only read afterwards; the ledger core never updates or deletes them.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	// GetForUpdate reads the account row under the store's conflict
	// protection (row lock or equivalent), serializing concurrent
	// read-check-debit sequences against the same account. Only meaningful
	// inside a unit of work.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Account, error)
}

// TransactionRepository defines append-only transaction persistence.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain.Transaction, error)
}

// EntryRepository defines append-only ledger entry persistence and the
// read-path aggregation balances are derived from.
type EntryRepository interface {
	Create(ctx context.Context, entry domain.LedgerEntry) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.LedgerEntry, error)
	// SumByAccount returns the signed sum of all entry amounts for the
	// account, zero when no entries exist.
	SumByAccount(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error)
}
