package db

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"gorm.io/gorm"
)

// Source yields the gorm handle for one operation. A nil result means the
// backend cannot be reached right now.
type Source interface {
	Conn(ctx context.Context) *gorm.DB
}

type staticSource struct{ db *gorm.DB }

func (s staticSource) Conn(context.Context) *gorm.DB { return s.db }

// Static wraps an already opened handle. Static(nil) is never available.
func Static(db *gorm.DB) Source {
	return staticSource{db: db}
}

// Handle connects on first use and keeps trying while the backend is down.
// Once connected it hands out the same *gorm.DB for the life of the process.
type Handle struct {
	dial    func() (*gorm.DB, error)
	backoff time.Duration
	now     func() time.Time

	db   atomic.Pointer[gorm.DB]
	mu   sync.Mutex
	next time.Time
}

var _ Source = (*Handle)(nil)

// NewHandle returns a Handle that calls dial at most once per backoff until it succeeds.
func NewHandle(dial func() (*gorm.DB, error), backoff time.Duration) *Handle {
	return &Handle{dial: dial, backoff: backoff, now: time.Now}
}

// Connect opens cfg with the usual start-up retry window. When that fails the
// returned Handle is empty and reconnects lazily, one attempt per retryInterval.
func Connect(cfg Config, logger *slog.Logger, models ...any) *Handle {
	h := NewHandle(func() (*gorm.DB, error) {
		return openWithin(cfg, logger, 0, models...)
	}, retryInterval)

	db, err := Open(cfg, logger, models...)
	if err != nil {
		slog.Warn("database unavailable, starting in degraded mode", "error", err)
		h.next = h.now().Add(retryInterval)
		return h
	}
	h.db.Store(db)
	return h
}

// Conn returns the handle, dialing if none is held yet. Callers never wait on
// another caller's dial: while one is in flight the others see nil.
func (h *Handle) Conn(ctx context.Context) *gorm.DB {
	if db := h.db.Load(); db != nil {
		return db
	}
	if !h.mu.TryLock() {
		return nil
	}
	defer h.mu.Unlock()

	if db := h.db.Load(); db != nil {
		return db
	}
	now := h.now()
	if now.Before(h.next) {
		return nil
	}
	db, err := h.dial()
	if err != nil {
		h.next = now.Add(h.backoff)
		slog.WarnContext(ctx, "database still unavailable", "error", err, "retry_in", h.backoff)
		return nil
	}
	h.db.Store(db)
	slog.InfoContext(ctx, "database connected")
	return db
}

// Ping reports whether src currently answers.
func Ping(ctx context.Context, src Source) error {
	db := src.Conn(ctx)
	if db == nil {
		return ErrUnavailable
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
