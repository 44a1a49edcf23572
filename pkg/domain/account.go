// Package domain holds the ledger's entities and invariants: accounts,
// transactions and the signed double-entry records derived balances are built
// from. Entities are plain data carriers; all orchestration lives in the
// service layer.
package domain

import (
	"time"

	"github.com/finbooks/ledger/pkg/currency"
	"github.com/google/uuid"
)

// AccountType tags what kind of account this is (e.g. "checking", "savings").
// The ledger core treats it as an opaque label.
type AccountType string

// Account is an open ledger account. It is created once at opening time and
// never mutated by the ledger core; balances are derived from entries, never
// stored on the account.
type Account struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      AccountType
	Currency  currency.Code
	CreatedAt time.Time
}

// NewAccount builds an account with a fresh ID, defaulting the currency when
// none is given.
func NewAccount(userID uuid.UUID, accountType AccountType, code currency.Code) (*Account, error) {
	if code == "" {
		code = currency.DefaultCurrency
	}
	if !currency.IsValidCurrencyFormat(code.String()) {
		return nil, ErrInvalidCurrencyCode
	}
	return &Account{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      accountType,
		Currency:  code,
		CreatedAt: time.Now().UTC(),
	}, nil
}
