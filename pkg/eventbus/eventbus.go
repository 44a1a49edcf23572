// Package eventbus defines the contract for publishing ledger events, plus an
// in-memory implementation used in tests and when no broker is configured.
package eventbus

import (
	"context"
	"sync"
)

// Publisher publishes integration events after a transaction commits.
// Publishing happens outside the atomic unit; a failed publish never rolls a
// committed transaction back.
type Publisher interface {
	Publish(ctx context.Context, event any) error
}

// MemoryPublisher collects published events in memory. Thread-safe.
type MemoryPublisher struct {
	mu        sync.Mutex
	published []any
}

// NewMemoryPublisher creates an in-memory publisher.
func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

// Publish records the event.
func (p *MemoryPublisher) Publish(_ context.Context, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, event)
	return nil
}

// Published returns a copy of everything published so far.
func (p *MemoryPublisher) Published() []any {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]any, len(p.published))
	copy(out, p.published)
	return out
}

var _ Publisher = (*MemoryPublisher)(nil)
