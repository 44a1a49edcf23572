// Package events holds the integration events the ledger publishes after a
// transaction commits.
package events

import (
	"time"

	"github.com/finbooks/ledger/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionCompleted is published once per committed transaction. It is an
// after-the-fact notification; the ledger tables remain the source of truth.
type TransactionCompleted struct {
	TransactionID        uuid.UUID              `json:"transaction_id"`
	Kind                 domain.TransactionKind `json:"kind"`
	SourceAccountID      *uuid.UUID             `json:"source_account_id,omitempty"`
	DestinationAccountID *uuid.UUID             `json:"destination_account_id,omitempty"`
	Amount               decimal.Decimal        `json:"amount"`
	OccurredAt           time.Time              `json:"occurred_at"`
}

// NewTransactionCompleted maps a committed transaction to its event payload.
func NewTransactionCompleted(tx *domain.Transaction) TransactionCompleted {
	return TransactionCompleted{
		TransactionID:        tx.ID,
		Kind:                 tx.Kind,
		SourceAccountID:      tx.SourceAccountID,
		DestinationAccountID: tx.DestinationAccountID,
		Amount:               tx.Amount,
		OccurredAt:           tx.CreatedAt,
	}
}
