package apartment

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu         sync.RWMutex
	apartments []Apartment
}

// NewMemoryRepository builds an in-memory listing store for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(_ context.Context, apt Apartment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apartments = append(r.apartments, apt)
	return nil
}

func (r *memoryRepository) All(_ context.Context) ([]Apartment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Apartment, len(r.apartments))
	copy(out, r.apartments)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *memoryRepository) Search(_ context.Context, filter Filter) ([]Apartment, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := []Apartment{}
	for _, apt := range r.apartments {
		if apt.Rent >= filter.MinRent && apt.Rent <= filter.MaxRent {
			matches = append(matches, apt)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].CreatedAt.Before(matches[j].CreatedAt) })

	total := int64(len(matches))
	start := (filter.Page - 1) * filter.Limit
	if start >= len(matches) {
		return []Apartment{}, total, nil
	}
	end := start + filter.Limit
	if end > len(matches) {
		end = len(matches)
	}
	return matches[start:end], total, nil
}
