// Package memory implements the repository contracts in process memory. It
// honors the same store guarantees the engine relies on from Postgres:
// per-account row locks held until the unit of work ends, and all-or-nothing
// visibility of a unit's writes. Used by tests and as the fallback store when
// no database is configured.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/finbooks/ledger/pkg/domain"
	"github.com/finbooks/ledger/pkg/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store holds the committed state: accounts, transactions and entries.
type Store struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*domain.Account
	txs      []*domain.Transaction
	entries  []domain.LedgerEntry
	locks    map[uuid.UUID]*sync.Mutex
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		accounts: make(map[uuid.UUID]*domain.Account),
		locks:    make(map[uuid.UUID]*sync.Mutex),
	}
}

// NewUoW returns a UnitOfWork over the store.
func NewUoW(store *Store) repository.UnitOfWork {
	return &uow{store: store}
}

// Transactions returns a snapshot of all committed transactions.
func (s *Store) Transactions() []*domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}

// Entries returns a snapshot of all committed ledger entries.
func (s *Store) Entries() []domain.LedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.LedgerEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Store) rowLock(id uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locks[id] == nil {
		s.locks[id] = &sync.Mutex{}
	}
	return s.locks[id]
}

// unit stages writes and tracks held row locks for one atomic unit.
type unit struct {
	held    []*sync.Mutex
	heldIDs map[uuid.UUID]bool
	txs     []*domain.Transaction
	entries []domain.LedgerEntry
}

type uow struct {
	store *Store
	unit  *unit
}

// Do runs fn against a staged view of the store. Staged writes become visible
// atomically on success; row locks release only after that, mirroring
// commit-then-unlock in a real store.
func (u *uow) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	child := &uow{store: u.store, unit: &unit{heldIDs: make(map[uuid.UUID]bool)}}
	err := fn(child)
	if err == nil {
		u.store.mu.Lock()
		u.store.txs = append(u.store.txs, child.unit.txs...)
		u.store.entries = append(u.store.entries, child.unit.entries...)
		u.store.mu.Unlock()
	}
	for i := len(child.unit.held) - 1; i >= 0; i-- {
		child.unit.held[i].Unlock()
	}
	return err
}

func (u *uow) AccountRepository() repository.AccountRepository         { return accounts{u} }
func (u *uow) TransactionRepository() repository.TransactionRepository { return transactions{u} }
func (u *uow) EntryRepository() repository.EntryRepository             { return entries{u} }

type accounts struct{ u *uow }

func (r accounts) Create(_ context.Context, a *domain.Account) error {
	r.u.store.mu.Lock()
	defer r.u.store.mu.Unlock()
	r.u.store.accounts[a.ID] = a
	return nil
}

func (r accounts) Get(_ context.Context, id uuid.UUID) (*domain.Account, error) {
	r.u.store.mu.Lock()
	defer r.u.store.mu.Unlock()
	a, ok := r.u.store.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return a, nil
}

func (r accounts) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	if r.u.unit != nil && !r.u.unit.heldIDs[id] {
		lock := r.u.store.rowLock(id)
		lock.Lock()
		r.u.unit.held = append(r.u.unit.held, lock)
		r.u.unit.heldIDs[id] = true
	}
	return r.Get(ctx, id)
}

type transactions struct{ u *uow }

func (r transactions) Create(_ context.Context, tx *domain.Transaction) error {
	if r.u.unit == nil {
		return fmt.Errorf("transaction create outside a unit of work")
	}
	r.u.unit.txs = append(r.u.unit.txs, tx)
	return nil
}

func (r transactions) Get(_ context.Context, id uuid.UUID) (*domain.Transaction, error) {
	r.u.store.mu.Lock()
	defer r.u.store.mu.Unlock()
	for _, tx := range r.u.store.txs {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, fmt.Errorf("transaction %s not found", id)
}

func (r transactions) ListByAccount(_ context.Context, accountID uuid.UUID) ([]*domain.Transaction, error) {
	r.u.store.mu.Lock()
	defer r.u.store.mu.Unlock()
	var out []*domain.Transaction
	for _, tx := range r.u.store.txs {
		src, dst := tx.SourceAccountID, tx.DestinationAccountID
		if (src != nil && *src == accountID) || (dst != nil && *dst == accountID) {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

type entries struct{ u *uow }

func (r entries) Create(_ context.Context, e domain.LedgerEntry) error {
	if r.u.unit == nil {
		return fmt.Errorf("entry create outside a unit of work")
	}
	r.u.unit.entries = append(r.u.unit.entries, e)
	return nil
}

func (r entries) ListByAccount(_ context.Context, accountID uuid.UUID) ([]domain.LedgerEntry, error) {
	r.u.store.mu.Lock()
	defer r.u.store.mu.Unlock()
	var out []domain.LedgerEntry
	for _, e := range r.u.store.entries {
		if e.AccountID == accountID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r entries) SumByAccount(_ context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	r.u.store.mu.Lock()
	defer r.u.store.mu.Unlock()
	sum := decimal.Zero
	for _, e := range r.u.store.entries {
		if e.AccountID == accountID {
			sum = sum.Add(e.Amount)
		}
	}
	if r.u.unit != nil {
		for _, e := range r.u.unit.entries {
			if e.AccountID == accountID {
				sum = sum.Add(e.Amount)
			}
		}
	}
	return sum, nil
}

var _ repository.UnitOfWork = (*uow)(nil)
