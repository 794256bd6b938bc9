package txmanager

import (
	"context"
	"sync"
)

// Manager serializes mutations that span more than one repository. Each
// in-memory repository guards its own state, but an operation that reads
// one repository and writes another has no database transaction to lean
// on, so every such operation runs inside a single critical section.
type Manager struct {
	mu sync.Mutex
}

// New creates a new transaction manager
func New() *Manager {
	return &Manager{}
}

// Do runs fn while holding the mutation lock
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}
