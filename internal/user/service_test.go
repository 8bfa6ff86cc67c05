package user

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRegisterIdempotent(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)
	ctx := context.Background()

	u, err := svc.Register(ctx, "Amina", "amina@edifica.test")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Role != RoleUser {
		t.Fatalf("expected default role %q, got %q", RoleUser, u.Role)
	}

	if _, err := svc.Register(ctx, "Amina", "amina@edifica.test"); !errors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("expected ErrAlreadyRegistered, got %v", err)
	}
}

func TestIsAdminUnknownUser(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)

	admin, err := svc.IsAdmin(context.Background(), "ghost@edifica.test")
	if err != nil {
		t.Fatalf("is admin: %v", err)
	}
	if admin {
		t.Fatalf("unknown user must not be admin")
	}
}

func TestChangeRoleNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)

	if err := svc.ChangeRole(context.Background(), "no-such-id", RoleAdmin); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRoleCacheInvalidationOnChange(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	cache := NewRoleCache(client, time.Minute)
	repo := NewMemoryRepository()
	svc := NewService(repo, cache)
	ctx := context.Background()

	u, err := svc.Register(ctx, "Amina", "amina@edifica.test")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// First resolution fills the cache.
	role, err := svc.Role(ctx, u.Email)
	if err != nil {
		t.Fatalf("role: %v", err)
	}
	if role != RoleUser {
		t.Fatalf("expected %q, got %q", RoleUser, role)
	}
	if _, ok := cache.Get(ctx, u.Email); !ok {
		t.Fatalf("expected cached role after resolution")
	}

	if err := svc.ChangeRole(ctx, u.ID, RoleAdmin); err != nil {
		t.Fatalf("change role: %v", err)
	}

	// Promotion is visible immediately: the change invalidated the cache.
	admin, err := svc.IsAdmin(ctx, u.Email)
	if err != nil {
		t.Fatalf("is admin: %v", err)
	}
	if !admin {
		t.Fatalf("role change must be visible on the next request")
	}
}

func TestDeleteInvalidatesCache(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	cache := NewRoleCache(client, time.Minute)
	svc := NewService(NewMemoryRepository(), cache)
	ctx := context.Background()

	u, err := svc.Register(ctx, "Amina", "amina@edifica.test")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Role(ctx, u.Email); err != nil {
		t.Fatalf("role: %v", err)
	}

	if err := svc.Delete(ctx, u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, ok := cache.Get(ctx, u.Email); ok {
		t.Fatalf("expected cache entry to be invalidated on delete")
	}
	if _, err := svc.Role(ctx, u.Email); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
