package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryType says which side of the books an entry sits on. The sign of the
// entry amount is fully determined by it: debit is negative, credit positive.
type EntryType string

const (
	EntryDebit  EntryType = "debit"
	EntryCredit EntryType = "credit"
)

// LedgerEntry is one signed movement against one account, always tied to
// exactly one transaction. Entries are append-only facts; an account's balance
// is the sum of its entry amounts.
type LedgerEntry struct {
	ID            uuid.UUID
	AccountID     uuid.UUID
	TransactionID uuid.UUID
	EntryType     EntryType
	Amount        decimal.Decimal
	CreatedAt     time.Time
}

// NewDebit builds a debit entry for the given magnitude. The stored amount is
// negative.
func NewDebit(accountID, transactionID uuid.UUID, magnitude decimal.Decimal, at time.Time) LedgerEntry {
	return LedgerEntry{
		ID:            uuid.New(),
		AccountID:     accountID,
		TransactionID: transactionID,
		EntryType:     EntryDebit,
		Amount:        magnitude.Neg(),
		CreatedAt:     at,
	}
}

// NewCredit builds a credit entry for the given magnitude. The stored amount
// is positive.
func NewCredit(accountID, transactionID uuid.UUID, magnitude decimal.Decimal, at time.Time) LedgerEntry {
	return LedgerEntry{
		ID:            uuid.New(),
		AccountID:     accountID,
		TransactionID: transactionID,
		EntryType:     EntryCredit,
		Amount:        magnitude,
		CreatedAt:     at,
	}
}

// SumEntries adds up the signed amounts of the given entries. A transfer's
// debit/credit pair always sums to zero.
func SumEntries(entries []LedgerEntry) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range entries {
		sum = sum.Add(e.Amount)
	}
	return sum
}
