package payment

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu       sync.RWMutex
	payments []Payment
}

// NewMemoryRepository builds an in-memory payment store for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(_ context.Context, p Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments = append(r.payments, p)
	return nil
}

func (r *memoryRepository) ListByEmail(_ context.Context, email string) ([]Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Payment{}
	for _, p := range r.payments {
		if p.UserEmail == email {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaidAt.After(out[j].PaidAt) })
	return out, nil
}
