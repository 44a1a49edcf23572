package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind identifies the shape of a transaction.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
	KindTransfer   TransactionKind = "transfer"
)

// TransactionStatus is the lifecycle state of a transaction. Only completed
// transactions are ever persisted: a transaction either fully committed or it
// does not exist.
type TransactionStatus string

// StatusCompleted is the only persisted status.
const StatusCompleted TransactionStatus = "completed"

// Transaction records one committed ledger operation. Source is nil for
// deposits, destination is nil for withdrawals. Immutable once created.
type Transaction struct {
	ID                   uuid.UUID
	Kind                 TransactionKind
	Status               TransactionStatus
	SourceAccountID      *uuid.UUID
	DestinationAccountID *uuid.UUID
	Amount               decimal.Decimal
	CreatedAt            time.Time
}

// NewDeposit builds a completed deposit transaction crediting accountID.
func NewDeposit(accountID uuid.UUID, amount decimal.Decimal) *Transaction {
	return &Transaction{
		ID:                   uuid.New(),
		Kind:                 KindDeposit,
		Status:               StatusCompleted,
		DestinationAccountID: &accountID,
		Amount:               amount,
		CreatedAt:            time.Now().UTC(),
	}
}

// NewWithdrawal builds a completed withdrawal transaction debiting accountID.
func NewWithdrawal(accountID uuid.UUID, amount decimal.Decimal) *Transaction {
	return &Transaction{
		ID:              uuid.New(),
		Kind:            KindWithdrawal,
		Status:          StatusCompleted,
		SourceAccountID: &accountID,
		Amount:          amount,
		CreatedAt:       time.Now().UTC(),
	}
}

// NewTransfer builds a completed transfer transaction moving amount from
// sourceID to destinationID.
func NewTransfer(sourceID, destinationID uuid.UUID, amount decimal.Decimal) *Transaction {
	return &Transaction{
		ID:                   uuid.New(),
		Kind:                 KindTransfer,
		Status:               StatusCompleted,
		SourceAccountID:      &sourceID,
		DestinationAccountID: &destinationID,
		Amount:               amount,
		CreatedAt:            time.Now().UTC(),
	}
}

// Entries derives the ledger entries for this transaction: one credit for a
// deposit, one debit for a withdrawal, a debit/credit pair for a transfer.
// A transfer's pair sums to zero; deposits and withdrawals have a single leg
// because the outside world is not modeled as an account.
func (t *Transaction) Entries() []LedgerEntry {
	switch t.Kind {
	case KindDeposit:
		return []LedgerEntry{NewCredit(*t.DestinationAccountID, t.ID, t.Amount, t.CreatedAt)}
	case KindWithdrawal:
		return []LedgerEntry{NewDebit(*t.SourceAccountID, t.ID, t.Amount, t.CreatedAt)}
	case KindTransfer:
		return []LedgerEntry{
			NewDebit(*t.SourceAccountID, t.ID, t.Amount, t.CreatedAt),
			NewCredit(*t.DestinationAccountID, t.ID, t.Amount, t.CreatedAt),
		}
	default:
		return nil
	}
}
