package user

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const roleCachePrefix = "rolecache:v1:"

// RoleCache is a short-lived email→role cache in front of the directory.
// Entries expire after the configured TTL, and every role mutation
// invalidates synchronously, so a revoked role takes effect on the next
// request. A nil RoleCache is valid and degrades to a directory read per
// request.
type RoleCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRoleCache builds a role cache over the given redis client. Returns nil
// when the client is nil so callers can wire it unconditionally.
func NewRoleCache(client *redis.Client, ttl time.Duration) *RoleCache {
	if client == nil {
		return nil
	}
	return &RoleCache{client: client, ttl: ttl}
}

// Get returns the cached role for the email, if present.
func (c *RoleCache) Get(ctx context.Context, email string) (string, bool) {
	if c == nil {
		return "", false
	}
	role, err := c.client.Get(ctx, roleCachePrefix+email).Result()
	if err != nil {
		return "", false
	}
	return role, true
}

// Set stores the role for the email. Failures are ignored: the cache is an
// optimization, the directory stays authoritative.
func (c *RoleCache) Set(ctx context.Context, email, role string) {
	if c == nil {
		return
	}
	c.client.Set(ctx, roleCachePrefix+email, role, c.ttl)
}

// Invalidate drops the cached role for the email. Called synchronously from
// role-change and user-delete paths before they report success.
func (c *RoleCache) Invalidate(ctx context.Context, email string) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, roleCachePrefix+email).Err()
}
