// Package adapters はidentityフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"parcel_backend/internal/feature/identity/domain/entity"
	"parcel_backend/internal/feature/identity/usecase"
	infradb "parcel_backend/internal/platform/db"
	"parcel_backend/internal/platform/ownedstore"
)

// OwnerPurger deletes every record of one owner inside a transaction.
type OwnerPurger interface {
	PurgeOwner(ctx context.Context, tx *gorm.DB, ownerID uint) error
}

// purgeListener is an OwnerPurger that also holds state derived from the
// owner's rows. OwnerPurged runs only after the deletion has committed.
type purgeListener interface {
	OwnerPurged(ctx context.Context, ownerID uint)
}

// userRepository はUserRepositoryのgorm実装です。
// MySQL・PostgreSQL・SQLiteのいずれでも同じupsert文が生成されます。
type userRepository struct {
	src     infradb.Source
	purgers []OwnerPurger
}

var _ usecase.UserRepository = (*userRepository)(nil)

// NewUserRepository returns a repository over src. purgers are run, in order,
// before the user row is removed by DeleteWithOwnedRecords.
func NewUserRepository(src infradb.Source, purgers ...OwnerPurger) *userRepository {
	return &userRepository{src: src, purgers: purgers}
}

// Upsert は open_id の一意制約を使って1文で挿入または更新します。
func (r *userRepository) Upsert(ctx context.Context, row *entity.User, patch entity.UserPatch) error {
	db := r.src.Conn(ctx)
	if db == nil {
		return fmt.Errorf("upsert user: %w", infradb.ErrUnavailable)
	}

	set := ownedstore.Changes{}
	ownedstore.Put(set, "name", patch.Name)
	ownedstore.Put(set, "email", patch.Email)
	ownedstore.Put(set, "login_method", patch.LoginMethod)
	ownedstore.Put(set, "role", patch.Role)
	ownedstore.Put(set, "last_signed_in", patch.LastSignedIn)
	if patch.TouchesProfile() {
		set["updated_at"] = time.Now()
	}

	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "open_id"}},
		DoUpdates: clause.Assignments(set),
	}).Create(row).Error
	if err != nil {
		if infradb.IsUnavailable(err) {
			return fmt.Errorf("upsert user: %w: %v", infradb.ErrUnavailable, err)
		}
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

// FindByOpenID は外部IDでユーザーを取得します。
func (r *userRepository) FindByOpenID(ctx context.Context, openID string) (*entity.User, error) {
	return r.first(ctx, "open_id = ?", openID)
}

// FindByID はIDでユーザーを取得します。
func (r *userRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *userRepository) first(ctx context.Context, query string, arg any) (*entity.User, error) {
	db := r.src.Conn(ctx)
	if db == nil {
		slog.WarnContext(ctx, "cannot get user: storage unavailable")
		return nil, nil
	}
	var u entity.User
	if err := db.WithContext(ctx).Where(query, arg).First(&u).Error; err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, usecase.ErrUserNotFound
		case infradb.IsUnavailable(err):
			slog.WarnContext(ctx, "cannot get user: storage unavailable", "error", err)
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

// DeleteWithOwnedRecords は所有レコードとユーザー行を1つのトランザクションで削除します。
// コミット後にのみ purgeListener へ通知します。
func (r *userRepository) DeleteWithOwnedRecords(ctx context.Context, id uint) error {
	db := r.src.Conn(ctx)
	if db == nil {
		return infradb.ErrUnavailable
	}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range r.purgers {
			if err := p.PurgeOwner(ctx, tx, id); err != nil {
				return err
			}
		}
		return tx.Where("id = ?", id).Delete(&entity.User{}).Error
	})
	if err != nil {
		if infradb.IsUnavailable(err) && !errors.Is(err, infradb.ErrUnavailable) {
			return fmt.Errorf("%w: %v", infradb.ErrUnavailable, err)
		}
		return err
	}

	for _, p := range r.purgers {
		if l, ok := p.(purgeListener); ok {
			l.OwnerPurged(ctx, id)
		}
	}
	return nil
}
