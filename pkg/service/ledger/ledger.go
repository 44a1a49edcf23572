// Package ledger implements the ledger engine: deposits, withdrawals and
// transfers recorded as balanced double-entry records inside one atomic unit,
// with balances derived from the entry history.
//
// The engine's only algorithmic content is the read-then-conditionally-write
// sequence on withdraw and transfer. Correctness under concurrency rests on
// the unit of work's isolation: the funds check reads the balance after
// acquiring the account's row lock, so two concurrent debits against the same
// account serialize and at most one can spend a balance sufficient for one.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/finbooks/ledger/pkg/domain"
	"github.com/finbooks/ledger/pkg/domain/events"
	"github.com/finbooks/ledger/pkg/eventbus"
	"github.com/finbooks/ledger/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxAttempts bounds the internal retries on serialization conflicts before
// the failure surfaces to the caller.
const maxAttempts = 3

// Service is the ledger engine. All operations are atomic: either the
// transaction row and every entry commit together, or nothing is written.
type Service struct {
	uow    repository.UnitOfWork
	bus    eventbus.Publisher
	logger *slog.Logger
}

// New creates a ledger engine on top of the given unit of work.
func New(uow repository.UnitOfWork, bus eventbus.Publisher, logger *slog.Logger) *Service {
	return &Service{uow: uow, bus: bus, logger: logger}
}

// Deposit credits amount to the account and records the matching transaction.
// Deposits never read the balance, so they need no conflict protection.
func (s *Service) Deposit(
	ctx context.Context,
	accountID uuid.UUID,
	amount decimal.Decimal,
) (*domain.Transaction, error) {
	if amount.Cmp(decimal.Zero) <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	var tx *domain.Transaction
	err := s.withRetry(ctx, func() error {
		return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
			if _, err := uow.AccountRepository().Get(ctx, accountID); err != nil {
				return err
			}
			tx = domain.NewDeposit(accountID, amount)
			return s.append(ctx, uow, tx)
		})
	})
	if err != nil {
		s.logger.Error("deposit failed", "accountID", accountID, "error", err)
		return nil, classify(err)
	}

	s.publish(ctx, tx)
	return tx, nil
}

// Withdraw debits amount from the account after a conflict-protected funds
// check. The balance read and the debit happen in one atomic unit; an
// insufficient balance aborts the unit with nothing written.
func (s *Service) Withdraw(
	ctx context.Context,
	accountID uuid.UUID,
	amount decimal.Decimal,
) (*domain.Transaction, error) {
	if amount.Cmp(decimal.Zero) <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	var tx *domain.Transaction
	err := s.withRetry(ctx, func() error {
		return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
			if _, err := uow.AccountRepository().GetForUpdate(ctx, accountID); err != nil {
				return err
			}
			balance, err := uow.EntryRepository().SumByAccount(ctx, accountID)
			if err != nil {
				return err
			}
			if balance.Cmp(amount) < 0 {
				return domain.ErrInsufficientFunds
			}
			tx = domain.NewWithdrawal(accountID, amount)
			return s.append(ctx, uow, tx)
		})
	})
	if err != nil {
		s.logger.Error("withdrawal failed", "accountID", accountID, "error", err)
		return nil, classify(err)
	}

	s.publish(ctx, tx)
	return tx, nil
}

// Transfer moves amount from source to destination as one transaction with a
// debit leg and a credit leg that sum to zero. Both account rows are locked in
// a deterministic order so two opposing transfers cannot deadlock.
func (s *Service) Transfer(
	ctx context.Context,
	sourceID, destinationID uuid.UUID,
	amount decimal.Decimal,
) (*domain.Transaction, error) {
	if amount.Cmp(decimal.Zero) <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if sourceID == destinationID {
		return nil, domain.ErrSameAccount
	}

	var tx *domain.Transaction
	err := s.withRetry(ctx, func() error {
		return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
			accounts := uow.AccountRepository()

			first, second := sourceID, destinationID
			if strings.Compare(second.String(), first.String()) < 0 {
				first, second = second, first
			}
			locked := make(map[uuid.UUID]*domain.Account, 2)
			for _, id := range []uuid.UUID{first, second} {
				a, err := accounts.GetForUpdate(ctx, id)
				if err != nil {
					return err
				}
				locked[id] = a
			}
			if locked[sourceID].Currency != locked[destinationID].Currency {
				return domain.ErrCurrencyMismatch
			}

			balance, err := uow.EntryRepository().SumByAccount(ctx, sourceID)
			if err != nil {
				return err
			}
			if balance.Cmp(amount) < 0 {
				return domain.ErrInsufficientFunds
			}
			tx = domain.NewTransfer(sourceID, destinationID, amount)
			return s.append(ctx, uow, tx)
		})
	})
	if err != nil {
		s.logger.Error("transfer failed",
			"sourceID", sourceID, "destinationID", destinationID, "error", err)
		return nil, classify(err)
	}

	s.publish(ctx, tx)
	return tx, nil
}

// Balance derives the account's current balance by summing its entries.
// Read-only; zero for an account with no entries.
func (s *Service) Balance(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	if _, err := s.uow.AccountRepository().Get(ctx, accountID); err != nil {
		return decimal.Zero, classify(err)
	}
	balance, err := s.uow.EntryRepository().SumByAccount(ctx, accountID)
	if err != nil {
		return decimal.Zero, classify(err)
	}
	return balance, nil
}

// Entries returns the account's ledger, oldest first.
func (s *Service) Entries(ctx context.Context, accountID uuid.UUID) ([]domain.LedgerEntry, error) {
	if _, err := s.uow.AccountRepository().Get(ctx, accountID); err != nil {
		return nil, classify(err)
	}
	entries, err := s.uow.EntryRepository().ListByAccount(ctx, accountID)
	if err != nil {
		return nil, classify(err)
	}
	return entries, nil
}

// Transactions returns the committed transactions touching the account.
func (s *Service) Transactions(ctx context.Context, accountID uuid.UUID) ([]*domain.Transaction, error) {
	if _, err := s.uow.AccountRepository().Get(ctx, accountID); err != nil {
		return nil, classify(err)
	}
	txs, err := s.uow.TransactionRepository().ListByAccount(ctx, accountID)
	if err != nil {
		return nil, classify(err)
	}
	return txs, nil
}

// append writes the transaction row and its derived entries within the
// current unit of work.
func (s *Service) append(ctx context.Context, uow repository.UnitOfWork, tx *domain.Transaction) error {
	if err := uow.TransactionRepository().Create(ctx, tx); err != nil {
		return err
	}
	for _, entry := range tx.Entries() {
		if err := uow.EntryRepository().Create(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}

// withRetry reruns the whole operation when the store reports a serialization
// conflict, up to maxAttempts. The operation restarts from the balance read,
// never mid-way.
func (s *Service) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = ctx.Err(); err != nil {
			return err
		}
		err = op()
		if err == nil || !errors.Is(err, repository.ErrSerializationConflict) {
			return err
		}
		s.logger.Warn("serialization conflict, retrying", "attempt", attempt)
	}
	return err
}

// classify keeps client-class errors intact and wraps everything else as a
// store failure so the caller can always distinguish the error kinds.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrSameAccount),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrCurrencyMismatch):
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
	}
}

func (s *Service) publish(ctx context.Context, tx *domain.Transaction) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, events.NewTransactionCompleted(tx)); err != nil {
		s.logger.Error("failed to publish transaction event",
			"transactionID", tx.ID, "error", err)
	}
}
