package announcement

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu            sync.RWMutex
	announcements []Announcement
}

// NewMemoryRepository builds an in-memory announcement store for development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(_ context.Context, ann Announcement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.announcements = append(r.announcements, ann)
	return nil
}

func (r *memoryRepository) List(_ context.Context) ([]Announcement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Announcement, len(r.announcements))
	copy(out, r.announcements)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
