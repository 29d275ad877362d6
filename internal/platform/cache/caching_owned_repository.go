// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// DefaultTTL applies when the configured TTL is not positive.
const DefaultTTL = 5 * time.Minute

// OwnedRepository is the owner-scoped store shape shared by every record kind.
// E is the entity and P its partial-update patch.
type OwnedRepository[E, P any] interface {
	List(ctx context.Context, ownerID uint) ([]E, error)
	Create(ctx context.Context, ownerID uint, e *E) error
	Update(ctx context.Context, id, ownerID uint, patch P) error
	Delete(ctx context.Context, id, ownerID uint) error
	PurgeOwner(ctx context.Context, tx *gorm.DB, ownerID uint) error
}

// CachingOwnedRepository decorates an OwnedRepository with a per-owner list
// cache in Redis. A nil client bypasses the cache entirely.
type CachingOwnedRepository[E, P any] struct {
	inner     OwnedRepository[E, P]
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingOwnedRepository wraps inner. namespace keys the record kind, e.g. "parcels".
func NewCachingOwnedRepository[E, P any](rdb *redis.Client, ttl time.Duration, inner OwnedRepository[E, P], namespace string) *CachingOwnedRepository[E, P] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachingOwnedRepository[E, P]{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: safe(namespace),
	}
}

// List serves the owner's rows from cache, falling back to the inner repository.
// Empty results are not cached; an unreachable database also reads as empty.
func (c *CachingOwnedRepository[E, P]) List(ctx context.Context, ownerID uint) ([]E, error) {
	if c.rdb == nil {
		return c.inner.List(ctx, ownerID)
	}

	key := c.ownerKey(ownerID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []E
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// 壊れたエントリは削除して取り直す
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
			slog.DebugContext(ctx, "cache set failed", "key", key, "error", err)
		}
	}
	return out, nil
}

// Create writes through and drops the owner's cached list.
func (c *CachingOwnedRepository[E, P]) Create(ctx context.Context, ownerID uint, e *E) error {
	if err := c.inner.Create(ctx, ownerID, e); err != nil {
		return err
	}
	c.invalidate(ctx, ownerID)
	return nil
}

// Update writes through and drops the owner's cached list.
func (c *CachingOwnedRepository[E, P]) Update(ctx context.Context, id, ownerID uint, patch P) error {
	if err := c.inner.Update(ctx, id, ownerID, patch); err != nil {
		return err
	}
	c.invalidate(ctx, ownerID)
	return nil
}

// Delete writes through and drops the owner's cached list.
func (c *CachingOwnedRepository[E, P]) Delete(ctx context.Context, id, ownerID uint) error {
	if err := c.inner.Delete(ctx, id, ownerID); err != nil {
		return err
	}
	c.invalidate(ctx, ownerID)
	return nil
}

// PurgeOwner deletes inside tx. The cached list is left alone until
// OwnerPurged, since a List before commit would refill it with the old rows.
func (c *CachingOwnedRepository[E, P]) PurgeOwner(ctx context.Context, tx *gorm.DB, ownerID uint) error {
	return c.inner.PurgeOwner(ctx, tx, ownerID)
}

// OwnerPurged drops the owner's cached list once the purge has committed.
func (c *CachingOwnedRepository[E, P]) OwnerPurged(ctx context.Context, ownerID uint) {
	c.invalidate(ctx, ownerID)
}

func (c *CachingOwnedRepository[E, P]) invalidate(ctx context.Context, ownerID uint) {
	if c.rdb == nil {
		return
	}
	key := c.ownerKey(ownerID)
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		// Best effort: the entry expires after ttl anyway
		slog.WarnContext(ctx, "cache invalidation failed", "key", key, "error", err)
	}
}

// ownerKey generates the cache key for one owner's list.
func (c *CachingOwnedRepository[E, P]) ownerKey(ownerID uint) string {
	return fmt.Sprintf("%s:owner:%d", c.namespace, ownerID)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
