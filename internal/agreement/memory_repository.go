package agreement

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu         sync.RWMutex
	agreements map[string]Agreement
}

// NewMemoryRepository builds an in-memory agreement store for development and
// tests. The email-keyed map enforces the same uniqueness the Postgres index
// does.
func NewMemoryRepository() Repository {
	return &memoryRepository{agreements: make(map[string]Agreement)}
}

func (r *memoryRepository) Create(_ context.Context, agr Agreement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.agreements[agr.UserEmail]; exists {
		return ErrDuplicate
	}
	r.agreements[agr.UserEmail] = agr
	return nil
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (Agreement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	agr, ok := r.agreements[email]
	if !ok {
		return Agreement{}, ErrNotFound
	}
	return agr, nil
}

func (r *memoryRepository) List(_ context.Context) ([]Agreement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	agreements := make([]Agreement, 0, len(r.agreements))
	for _, agr := range r.agreements {
		agreements = append(agreements, agr)
	}
	sort.Slice(agreements, func(i, j int) bool { return agreements[i].CreatedAt.Before(agreements[j].CreatedAt) })
	return agreements, nil
}

func (r *memoryRepository) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for email, agr := range r.agreements {
		if agr.ID == id {
			agr.Status = status
			r.agreements[email] = agr
			return nil
		}
	}
	return ErrNotFound
}
