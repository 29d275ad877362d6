// Package usecase はidentityフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"parcel_backend/internal/feature/identity/domain/entity"
	"parcel_backend/internal/shared/apperr"
	"parcel_backend/internal/shared/optional"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
type UserRepository interface {
	// Upsert inserts row, or applies patch to the row with the same open id.
	// It is a single statement.
	Upsert(ctx context.Context, row *entity.User, patch entity.UserPatch) error

	// FindByOpenID returns nil, nil when storage is unreachable.
	FindByOpenID(ctx context.Context, openID string) (*entity.User, error)

	// FindByID returns nil, nil when storage is unreachable.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// DeleteWithOwnedRecords removes the user and everything they own in one transaction.
	DeleteWithOwnedRecords(ctx context.Context, id uint) error
}

// TokenGenerator はJWTトークン生成のインターフェースを定義します。
type TokenGenerator interface {
	GenerateToken(userID uint, openID, role string) (string, error)
}

type identityUsecase struct {
	users       UserRepository
	tokens      TokenGenerator
	ownerOpenID string
	now         func() time.Time
}

// NewIdentityUsecase creates the reconciler. ownerOpenID may be empty.
func NewIdentityUsecase(users UserRepository, tokens TokenGenerator, ownerOpenID string) *identityUsecase {
	return &identityUsecase{
		users:       users,
		tokens:      tokens,
		ownerOpenID: ownerOpenID,
		now:         time.Now,
	}
}

// Reconcile inserts or updates the user identified by p.OpenID.
func (u *identityUsecase) Reconcile(ctx context.Context, p entity.Profile) error {
	if strings.TrimSpace(p.OpenID) == "" {
		return ErrOpenIDRequired
	}
	if p.Role.IsNull() {
		return apperr.Validation("role cannot be null")
	}
	if r, ok := p.Role.Get(); ok && !r.Valid() {
		return apperr.Validation("role: unknown value %q", r)
	}
	if p.LastSignedIn.IsNull() {
		return apperr.Validation("lastSignedIn cannot be null")
	}

	// 役割が指定されていない場合、オーナーは管理者になる
	role := p.Role
	if !role.IsSet() && u.ownerOpenID != "" && p.OpenID == u.ownerOpenID {
		role = optional.Of(entity.RoleAdmin)
	}

	now := u.now()
	row := &entity.User{
		OpenID:       p.OpenID,
		Name:         p.Name.Ptr(),
		Email:        p.Email.Ptr(),
		LoginMethod:  p.LoginMethod.Ptr(),
		Role:         role.OrElse(entity.RoleUser),
		LastSignedIn: p.LastSignedIn.OrElse(now),
	}
	patch := entity.UserPatch{
		Name:         p.Name,
		Email:        p.Email,
		LoginMethod:  p.LoginMethod,
		Role:         role,
		LastSignedIn: p.LastSignedIn,
	}
	if patch.Empty() {
		patch.LastSignedIn = optional.Of(now)
	}

	if err := u.users.Upsert(ctx, row, patch); err != nil {
		return fmt.Errorf("reconcile user: %w", err)
	}
	return nil
}

// SignIn reconciles p and issues a session token for the resulting user.
func (u *identityUsecase) SignIn(ctx context.Context, p entity.Profile) (string, error) {
	if err := u.Reconcile(ctx, p); err != nil {
		return "", err
	}
	user, err := u.users.FindByOpenID(ctx, p.OpenID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	token, err := u.tokens.GenerateToken(user.ID, user.OpenID, string(user.Role))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	slog.InfoContext(ctx, "user signed in", "user_id", user.ID, "role", user.Role)
	return token, nil
}

// Me returns the user behind an authenticated request.
func (u *identityUsecase) Me(ctx context.Context, id uint) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// DeleteAccount removes the user together with every record they own.
func (u *identityUsecase) DeleteAccount(ctx context.Context, id uint) error {
	if err := u.users.DeleteWithOwnedRecords(ctx, id); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	slog.InfoContext(ctx, "account deleted", "user_id", id)
	return nil
}
