// Package transaction implements the transaction repository on gorm/Postgres.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbooks/ledger/pkg/domain"
	repo "github.com/finbooks/ledger/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a transaction repository bound to the given session.
func New(db *gorm.DB) repo.TransactionRepository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, tx *domain.Transaction) error {
	m := toModel(tx)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	var m Transaction
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("transaction %s not found", id)
		}
		return nil, err
	}
	return toDomain(&m), nil
}

func (r *repository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*domain.Transaction, error) {
	var models []Transaction
	err := r.db.WithContext(ctx).
		Where("source_account_id = ? OR destination_account_id = ?", accountID, accountID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Transaction, 0, len(models))
	for i := range models {
		out = append(out, toDomain(&models[i]))
	}
	return out, nil
}
