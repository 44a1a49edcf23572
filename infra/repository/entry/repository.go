// Package entry implements the ledger entry repository on gorm/Postgres.
package entry

import (
	"context"

	"github.com/finbooks/ledger/pkg/domain"
	repo "github.com/finbooks/ledger/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a ledger entry repository bound to the given session.
func New(db *gorm.DB) repo.EntryRepository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e domain.LedgerEntry) error {
	m := toModel(e)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *repository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]domain.LedgerEntry, error) {
	var models []LedgerEntry
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.LedgerEntry, 0, len(models))
	for i := range models {
		out = append(out, toDomain(&models[i]))
	}
	return out, nil
}

// SumByAccount aggregates the signed entry amounts in SQL. Postgres does not
// allow FOR UPDATE on an aggregate, so conflict protection comes from locking
// the account row first (AccountRepository.GetForUpdate) inside the same
// transaction.
func (r *repository) SumByAccount(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&LedgerEntry{}).
		Where("account_id = ?", accountID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}
