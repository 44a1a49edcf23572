package transaction

import (
	"time"

	"github.com/finbooks/ledger/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is the transactions table row. Append-only: the ledger never
// updates or deletes a committed transaction.
type Transaction struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primary_key"`
	Kind                 string          `gorm:"type:varchar(16);not null"`
	Status               string          `gorm:"type:varchar(16);not null;default:'completed'"`
	SourceAccountID      *uuid.UUID      `gorm:"type:uuid;index"`
	DestinationAccountID *uuid.UUID      `gorm:"type:uuid;index"`
	Amount               decimal.Decimal `gorm:"type:numeric(20,8);not null"`
	CreatedAt            time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}

func toModel(t *domain.Transaction) Transaction {
	return Transaction{
		ID:                   t.ID,
		Kind:                 string(t.Kind),
		Status:               string(t.Status),
		SourceAccountID:      t.SourceAccountID,
		DestinationAccountID: t.DestinationAccountID,
		Amount:               t.Amount,
		CreatedAt:            t.CreatedAt,
	}
}

func toDomain(m *Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:                   m.ID,
		Kind:                 domain.TransactionKind(m.Kind),
		Status:               domain.TransactionStatus(m.Status),
		SourceAccountID:      m.SourceAccountID,
		DestinationAccountID: m.DestinationAccountID,
		Amount:               m.Amount,
		CreatedAt:            m.CreatedAt,
	}
}
