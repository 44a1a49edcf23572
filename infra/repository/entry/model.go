package entry

import (
	"time"

	"github.com/finbooks/ledger/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntry is the ledger_entries table row: one signed movement against
// one account. Append-only.
type LedgerEntry struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key"`
	AccountID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	TransactionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	EntryType     string          `gorm:"type:varchar(8);not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(20,8);not null"`
	CreatedAt     time.Time
}

// TableName specifies the table name for the LedgerEntry model.
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}

func toModel(e domain.LedgerEntry) LedgerEntry {
	return LedgerEntry{
		ID:            e.ID,
		AccountID:     e.AccountID,
		TransactionID: e.TransactionID,
		EntryType:     string(e.EntryType),
		Amount:        e.Amount,
		CreatedAt:     e.CreatedAt,
	}
}

func toDomain(m *LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		ID:            m.ID,
		AccountID:     m.AccountID,
		TransactionID: m.TransactionID,
		EntryType:     domain.EntryType(m.EntryType),
		Amount:        m.Amount,
		CreatedAt:     m.CreatedAt,
	}
}
