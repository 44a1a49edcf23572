package ledger_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/finbooks/ledger/pkg/domain"
	"github.com/finbooks/ledger/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// conflictUoW reports a serialization conflict for the first n units of work,
// then delegates. Exercises the engine's retry path.
type conflictUoW struct {
	repository.UnitOfWork
	mu        sync.Mutex
	conflicts int
}

func (c *conflictUoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	c.mu.Lock()
	if c.conflicts > 0 {
		c.conflicts--
		c.mu.Unlock()
		return fmt.Errorf("%w: injected", repository.ErrSerializationConflict)
	}
	c.mu.Unlock()
	return c.UnitOfWork.Do(ctx, fn)
}

// failEntryUoW makes every entry insert inside a unit of work fail, so the
// whole unit rolls back.
type failEntryUoW struct {
	repository.UnitOfWork
	err error
}

func (f *failEntryUoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return f.UnitOfWork.Do(ctx, func(u repository.UnitOfWork) error {
		return fn(&failEntryUnit{UnitOfWork: u, err: f.err})
	})
}

type failEntryUnit struct {
	repository.UnitOfWork
	err error
}

func (f *failEntryUnit) EntryRepository() repository.EntryRepository {
	return failingEntries{err: f.err}
}

type failingEntries struct{ err error }

func (r failingEntries) Create(context.Context, domain.LedgerEntry) error { return r.err }

func (r failingEntries) ListByAccount(context.Context, uuid.UUID) ([]domain.LedgerEntry, error) {
	return nil, r.err
}

func (r failingEntries) SumByAccount(context.Context, uuid.UUID) (decimal.Decimal, error) {
	return decimal.Zero, r.err
}
