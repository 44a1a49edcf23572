package account

import (
	"time"

	"github.com/finbooks/ledger/pkg/currency"
	"github.com/finbooks/ledger/pkg/domain"
	"github.com/google/uuid"
)

// Account is the accounts table row. Rows are written once at account opening
// and never updated by the ledger, so there are no update/delete columns.
type Account struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null"`
	Type      string    `gorm:"type:varchar(32);not null"`
	Currency  string    `gorm:"type:varchar(3);not null;default:'USD'"`
	CreatedAt time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}

func toModel(a *domain.Account) Account {
	return Account{
		ID:        a.ID,
		UserID:    a.UserID,
		Type:      string(a.Type),
		Currency:  a.Currency.String(),
		CreatedAt: a.CreatedAt,
	}
}

func toDomain(m *Account) *domain.Account {
	return &domain.Account{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      domain.AccountType(m.Type),
		Currency:  currency.Code(m.Currency),
		CreatedAt: m.CreatedAt,
	}
}
