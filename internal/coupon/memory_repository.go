package coupon

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	coupons map[string]Coupon
}

// NewMemoryRepository builds an in-memory coupon store for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{coupons: make(map[string]Coupon)}
}

func (r *memoryRepository) Create(_ context.Context, cp Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.coupons[cp.Code]; exists {
		return ErrExists
	}
	r.coupons[cp.Code] = cp
	return nil
}

func (r *memoryRepository) FindByCode(_ context.Context, code string) (Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp, ok := r.coupons[code]
	if !ok {
		return Coupon{}, ErrNotFound
	}
	return cp, nil
}

func (r *memoryRepository) List(_ context.Context) ([]Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	coupons := make([]Coupon, 0, len(r.coupons))
	for _, cp := range r.coupons {
		coupons = append(coupons, cp)
	}
	sort.Slice(coupons, func(i, j int) bool { return coupons[i].CreatedAt.Before(coupons[j].CreatedAt) })
	return coupons, nil
}

func (r *memoryRepository) SetAvailability(_ context.Context, id string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for code, cp := range r.coupons {
		if cp.ID == id {
			cp.Available = available
			r.coupons[code] = cp
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for code, cp := range r.coupons {
		if cp.ID == id {
			delete(r.coupons, code)
			return nil
		}
	}
	return ErrNotFound
}
