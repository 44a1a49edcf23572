package domain_test

import (
	"testing"

	"github.com/finbooks/ledger/pkg/currency"
	"github.com/finbooks/ledger/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	userID := uuid.New()

	a, err := domain.NewAccount(userID, "checking", "")
	require.NoError(t, err)
	assert.Equal(t, currency.DefaultCurrency, a.Currency)
	assert.Equal(t, userID, a.UserID)
	assert.NotEqual(t, uuid.Nil, a.ID)

	_, err = domain.NewAccount(userID, "checking", "usd")
	assert.ErrorIs(t, err, domain.ErrInvalidCurrencyCode)
}

func TestTransferEntriesBalance(t *testing.T) {
	src, dst := uuid.New(), uuid.New()
	amount := decimal.RequireFromString("40.25")

	tx := domain.NewTransfer(src, dst, amount)
	entries := tx.Entries()

	require.Len(t, entries, 2)
	assert.True(t, domain.SumEntries(entries).IsZero(), "transfer entries must sum to zero")

	debit, credit := entries[0], entries[1]
	assert.Equal(t, domain.EntryDebit, debit.EntryType)
	assert.Equal(t, src, debit.AccountID)
	assert.True(t, debit.Amount.Equal(amount.Neg()))
	assert.Equal(t, domain.EntryCredit, credit.EntryType)
	assert.Equal(t, dst, credit.AccountID)
	assert.True(t, credit.Amount.Equal(amount))

	for _, e := range entries {
		assert.Equal(t, tx.ID, e.TransactionID)
	}
}

func TestDepositEntrySign(t *testing.T) {
	acct := uuid.New()
	tx := domain.NewDeposit(acct, decimal.NewFromInt(100))

	require.Equal(t, domain.KindDeposit, tx.Kind)
	require.Nil(t, tx.SourceAccountID)
	require.NotNil(t, tx.DestinationAccountID)

	entries := tx.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, domain.EntryCredit, entries[0].EntryType)
	assert.True(t, entries[0].Amount.Equal(decimal.NewFromInt(100)))
}

func TestWithdrawalEntrySign(t *testing.T) {
	acct := uuid.New()
	tx := domain.NewWithdrawal(acct, decimal.NewFromInt(35))

	require.Equal(t, domain.KindWithdrawal, tx.Kind)
	require.Nil(t, tx.DestinationAccountID)
	require.NotNil(t, tx.SourceAccountID)

	entries := tx.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, domain.EntryDebit, entries[0].EntryType)
	assert.True(t, entries[0].Amount.Equal(decimal.NewFromInt(-35)))
}

func TestTransactionStatusAlwaysCompleted(t *testing.T) {
	assert.Equal(t, domain.StatusCompleted, domain.NewDeposit(uuid.New(), decimal.NewFromInt(1)).Status)
	assert.Equal(t, domain.StatusCompleted, domain.NewWithdrawal(uuid.New(), decimal.NewFromInt(1)).Status)
	assert.Equal(t, domain.StatusCompleted, domain.NewTransfer(uuid.New(), uuid.New(), decimal.NewFromInt(1)).Status)
}
