// Package account provides account opening and lookup. Account creation sits
// outside the ledger engine: the engine only ever reads account rows as
// foreign keys.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/finbooks/ledger/pkg/currency"
	"github.com/finbooks/ledger/pkg/domain"
	"github.com/finbooks/ledger/pkg/repository"
	"github.com/google/uuid"
)

// Service opens and reads accounts.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates an account service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Open creates a new account for the given owner. The currency defaults to
// the system default when empty.
func (s *Service) Open(
	ctx context.Context,
	userID uuid.UUID,
	accountType domain.AccountType,
	code currency.Code,
) (*domain.Account, error) {
	acct, err := domain.NewAccount(userID, accountType, code)
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.AccountRepository().Create(ctx, acct)
	})
	if err != nil {
		s.logger.Error("failed to open account", "userID", userID, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
	}
	s.logger.Info("account opened",
		"accountID", acct.ID, "type", acct.Type, "currency", acct.Currency)
	return acct, nil
}

// Get returns the account by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	acct, err := s.uow.AccountRepository().Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreFailure, err)
	}
	return acct, nil
}
