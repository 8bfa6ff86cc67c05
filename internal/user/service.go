package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrAlreadyRegistered reports an idempotent re-registration of a known email.
var ErrAlreadyRegistered = errors.New("user already registered")

// Service manages the user directory and keeps the role cache coherent.
type Service struct {
	repo  Repository
	cache *RoleCache
}

// NewService creates a directory service. The cache may be nil.
func NewService(repo Repository, cache *RoleCache) *Service {
	return &Service{repo: repo, cache: cache}
}

// Register stores a new user with the default role. Re-registering an
// existing email is a no-op that reports ErrAlreadyRegistered.
func (s *Service) Register(ctx context.Context, name, email string) (User, error) {
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return User{}, ErrAlreadyRegistered
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	u := User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Role:      RoleUser,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		// Lost a concurrent registration race: the store's unique index
		// makes this the same outcome as finding the record up front.
		if errors.Is(err, ErrExists) {
			return User{}, ErrAlreadyRegistered
		}
		return User{}, err
	}
	return u, nil
}

// Role resolves the email's role, consulting the cache first. Exactly one
// directory read happens on a cache miss.
func (s *Service) Role(ctx context.Context, email string) (string, error) {
	if role, ok := s.cache.Get(ctx, email); ok {
		return role, nil
	}
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	s.cache.Set(ctx, email, u.Role)
	return u.Role, nil
}

// IsAdmin reports whether the email resolves to an admin. Unknown users are
// simply not admins.
func (s *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	role, err := s.Role(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return role == RoleAdmin, nil
}

// List returns all directory records.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// ChangeRole updates the user's role and synchronously invalidates the cache
// so the change is visible on the very next request.
func (s *Service) ChangeRole(ctx context.Context, id, role string) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateRole(ctx, id, role); err != nil {
		return err
	}
	return s.cache.Invalidate(ctx, u.Email)
}

// Delete removes the user and invalidates any cached role. Agreements and
// payments referencing the email are intentionally left in place.
func (s *Service) Delete(ctx context.Context, id string) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	return s.cache.Invalidate(ctx, u.Email)
}
