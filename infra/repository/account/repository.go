// Package account implements the account repository on gorm/Postgres.
package account

import (
	"context"
	"errors"

	"github.com/finbooks/ledger/pkg/domain"
	repo "github.com/finbooks/ledger/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New creates an account repository bound to the given session.
func New(db *gorm.DB) repo.AccountRepository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *domain.Account) error {
	m := toModel(a)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	var m Account
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return toDomain(&m), nil
}

// GetForUpdate reads the account row with SELECT ... FOR UPDATE. Holding the
// row lock serializes concurrent read-check-debit sequences on the account
// until the surrounding transaction commits or rolls back.
func (r *repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	var m Account
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return toDomain(&m), nil
}
