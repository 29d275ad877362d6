// Package ownedstore is the gorm persistence shared by every per-user record
// kind. Every statement it issues is filtered by user_id; the owner id is
// always a separate argument and never read from the row being written.
package ownedstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"gorm.io/gorm"

	infradb "parcel_backend/internal/platform/db"
)

const (
	// OrderCreated lists rows in creation order.
	OrderCreated = "created_at ASC, id ASC"
	// OrderWeekStart lists weekly plans by the week they start.
	OrderWeekStart = "week_start_date ASC, id ASC"
)

// ErrUnknownOwner is returned when a write names an owner with no users row,
// for example a token that outlived its account.
var ErrUnknownOwner = errors.New("owner does not exist")

// Store provides owner-scoped CRUD for the gorm model M.
// While src has no handle the store is degraded: reads return nothing and
// writes fail with infradb.ErrUnavailable.
type Store[M any] struct {
	src   infradb.Source
	kind  string
	order string
}

// New returns a Store for M. kind names the record type in logs and errors.
func New[M any](src infradb.Source, kind, order string) *Store[M] {
	if order == "" {
		order = OrderCreated
	}
	return &Store[M]{src: src, kind: kind, order: order}
}

// List returns every row owned by ownerID. An unreachable backend yields an
// empty result and a warning instead of an error.
func (s *Store[M]) List(ctx context.Context, ownerID uint) ([]M, error) {
	db := s.src.Conn(ctx)
	if db == nil {
		slog.WarnContext(ctx, "storage unavailable, returning empty list", "kind", s.kind, "owner_id", ownerID)
		return []M{}, nil
	}

	var rows []M
	if err := db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order(s.order).
		Find(&rows).Error; err != nil {
		if infradb.IsUnavailable(err) {
			slog.WarnContext(ctx, "storage unavailable, returning empty list", "kind", s.kind, "owner_id", ownerID, "error", err)
			return []M{}, nil
		}
		return nil, fmt.Errorf("list %s: %w", s.kind, err)
	}
	if rows == nil {
		rows = []M{}
	}
	return rows, nil
}

// Create inserts row. The caller has already stamped the owner on it.
func (s *Store[M]) Create(ctx context.Context, row *M) error {
	db := s.src.Conn(ctx)
	if db == nil {
		return fmt.Errorf("create %s: %w", s.kind, infradb.ErrUnavailable)
	}
	if err := db.WithContext(ctx).Create(row).Error; err != nil {
		return s.writeErr("create", err)
	}
	return nil
}

// Update writes only the given columns of the row matching id and ownerID.
// An empty change set is a no-op. A row owned by someone else, or no row at
// all, is indistinguishable from success.
func (s *Store[M]) Update(ctx context.Context, id, ownerID uint, changes map[string]any) error {
	if len(changes) == 0 {
		return nil
	}
	db := s.src.Conn(ctx)
	if db == nil {
		return fmt.Errorf("update %s: %w", s.kind, infradb.ErrUnavailable)
	}

	cols := maps.Clone(changes)
	cols["updated_at"] = time.Now()

	res := db.WithContext(ctx).
		Model(new(M)).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(cols)
	if res.Error != nil {
		return s.writeErr("update", res.Error)
	}
	if res.RowsAffected == 0 {
		slog.DebugContext(ctx, "update matched no owned row", "kind", s.kind, "id", id, "owner_id", ownerID)
	}
	return nil
}

// Delete removes at most the one row matching id and ownerID.
func (s *Store[M]) Delete(ctx context.Context, id, ownerID uint) error {
	db := s.src.Conn(ctx)
	if db == nil {
		return fmt.Errorf("delete %s: %w", s.kind, infradb.ErrUnavailable)
	}

	res := db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(new(M))
	if res.Error != nil {
		return s.writeErr("delete", res.Error)
	}
	if res.RowsAffected == 0 {
		slog.DebugContext(ctx, "delete matched no owned row", "kind", s.kind, "id", id, "owner_id", ownerID)
	}
	return nil
}

// PurgeOwner deletes every row of ownerID inside tx. Used by account deletion.
func (s *Store[M]) PurgeOwner(ctx context.Context, tx *gorm.DB, ownerID uint) error {
	if err := tx.WithContext(ctx).Where("user_id = ?", ownerID).Delete(new(M)).Error; err != nil {
		return s.writeErr("purge", err)
	}
	return nil
}

// Kind names the record type.
func (s *Store[M]) Kind() string { return s.kind }

func (s *Store[M]) writeErr(op string, err error) error {
	if infradb.IsForeignKeyViolation(err) {
		return fmt.Errorf("%s %s: %w: %v", op, s.kind, ErrUnknownOwner, err)
	}
	if infradb.IsUnavailable(err) {
		return fmt.Errorf("%s %s: %w: %v", op, s.kind, infradb.ErrUnavailable, err)
	}
	return fmt.Errorf("%s %s: %w", op, s.kind, err)
}
