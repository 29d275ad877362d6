package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcel_backend/internal/feature/identity/domain/entity"
	"parcel_backend/internal/shared/apperr"
	"parcel_backend/internal/shared/optional"
)

// mockUserRepository はUserRepositoryインターフェースのモック実装です。
type mockUserRepository struct {
	UpsertFunc       func(ctx context.Context, row *entity.User, patch entity.UserPatch) error
	FindByOpenIDFunc func(ctx context.Context, openID string) (*entity.User, error)
	FindByIDFunc     func(ctx context.Context, id uint) (*entity.User, error)
	DeleteFunc       func(ctx context.Context, id uint) error
}

func (m *mockUserRepository) Upsert(ctx context.Context, row *entity.User, patch entity.UserPatch) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, row, patch)
	}
	return nil
}

func (m *mockUserRepository) FindByOpenID(ctx context.Context, openID string) (*entity.User, error) {
	if m.FindByOpenIDFunc != nil {
		return m.FindByOpenIDFunc(ctx, openID)
	}
	return &entity.User{ID: 1, OpenID: openID, Role: entity.RoleUser}, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepository) DeleteWithOwnedRecords(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockTokenGenerator struct {
	GenerateTokenFunc func(userID uint, openID, role string) (string, error)
}

func (m *mockTokenGenerator) GenerateToken(userID uint, openID, role string) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, openID, role)
	}
	return "mock-jwt-token", nil
}

var fixedNow = time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

func newTestUsecase(repo UserRepository, owner string) *identityUsecase {
	uc := NewIdentityUsecase(repo, &mockTokenGenerator{}, owner)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestReconcile_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile entity.Profile
		wantErr error
	}{
		{"missing open id", entity.Profile{}, ErrOpenIDRequired},
		{"blank open id", entity.Profile{OpenID: "  "}, ErrOpenIDRequired},
		{"unknown role", entity.Profile{OpenID: "abc", Role: optional.Of(entity.Role("root"))}, apperr.ErrValidation},
		{"null role", entity.Profile{OpenID: "abc", Role: optional.Null[entity.Role]()}, apperr.ErrValidation},
		{"null last signed in", entity.Profile{OpenID: "abc", LastSignedIn: optional.Null[time.Time]()}, apperr.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			called := false
			uc := newTestUsecase(&mockUserRepository{
				UpsertFunc: func(context.Context, *entity.User, entity.UserPatch) error { called = true; return nil },
			}, "")

			err := uc.Reconcile(context.Background(), tt.profile)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, called, "storage must not be touched")
		})
	}
}

func TestReconcile_BuildsUpsert(t *testing.T) {
	t.Parallel()

	signed := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name        string
		owner       string
		profile     entity.Profile
		wantRole    entity.Role
		wantSigned  time.Time
		checkUpdate func(t *testing.T, p entity.UserPatch)
	}{
		{
			name:       "open id only touches last signed in",
			profile:    entity.Profile{OpenID: "abc"},
			wantRole:   entity.RoleUser,
			wantSigned: fixedNow,
			checkUpdate: func(t *testing.T, p entity.UserPatch) {
				v, ok := p.LastSignedIn.Get()
				require.True(t, ok)
				assert.Equal(t, fixedNow, v)
				assert.False(t, p.TouchesProfile())
			},
		},
		{
			name:       "owner becomes admin",
			owner:      "owner-1",
			profile:    entity.Profile{OpenID: "owner-1", Name: optional.Of("Owner")},
			wantRole:   entity.RoleAdmin,
			wantSigned: fixedNow,
			checkUpdate: func(t *testing.T, p entity.UserPatch) {
				assert.Equal(t, entity.RoleAdmin, p.Role.OrElse(""))
				assert.False(t, p.LastSignedIn.IsSet(), "last signed in is kept when profile fields change")
			},
		},
		{
			name:       "explicit role wins over owner rule",
			owner:      "owner-1",
			profile:    entity.Profile{OpenID: "owner-1", Role: optional.Of(entity.RoleUser)},
			wantRole:   entity.RoleUser,
			wantSigned: fixedNow,
			checkUpdate: func(t *testing.T, p entity.UserPatch) {
				assert.Equal(t, entity.RoleUser, p.Role.OrElse(""))
			},
		},
		{
			name:       "supplied last signed in and null email",
			profile:    entity.Profile{OpenID: "abc", LastSignedIn: optional.Of(signed), Email: optional.Null[string]()},
			wantRole:   entity.RoleUser,
			wantSigned: signed,
			checkUpdate: func(t *testing.T, p entity.UserPatch) {
				assert.True(t, p.Email.IsNull())
				assert.False(t, p.Role.IsSet())
				assert.Equal(t, signed, p.LastSignedIn.OrElse(time.Time{}))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotRow *entity.User
			var gotPatch entity.UserPatch
			uc := newTestUsecase(&mockUserRepository{
				UpsertFunc: func(ctx context.Context, row *entity.User, patch entity.UserPatch) error {
					gotRow, gotPatch = row, patch
					return nil
				},
			}, tt.owner)

			require.NoError(t, uc.Reconcile(context.Background(), tt.profile))

			require.NotNil(t, gotRow)
			assert.Equal(t, tt.profile.OpenID, gotRow.OpenID)
			assert.Equal(t, tt.wantRole, gotRow.Role)
			assert.Equal(t, tt.wantSigned, gotRow.LastSignedIn)
			tt.checkUpdate(t, gotPatch)
		})
	}
}

func TestSignIn(t *testing.T) {
	t.Parallel()

	t.Run("success: token carries user id and role", func(t *testing.T) {
		t.Parallel()

		repo := &mockUserRepository{FindByOpenIDFunc: func(ctx context.Context, openID string) (*entity.User, error) {
			return &entity.User{ID: 9, OpenID: openID, Role: entity.RoleAdmin}, nil
		}}
		uc := NewIdentityUsecase(repo, &mockTokenGenerator{GenerateTokenFunc: func(userID uint, openID, role string) (string, error) {
			assert.Equal(t, uint(9), userID)
			assert.Equal(t, "abc", openID)
			assert.Equal(t, "admin", role)
			return "signed", nil
		}}, "")

		token, err := uc.SignIn(context.Background(), entity.Profile{OpenID: "abc"})

		require.NoError(t, err)
		assert.Equal(t, "signed", token)
	})

	t.Run("failure: user missing after degraded read", func(t *testing.T) {
		t.Parallel()

		repo := &mockUserRepository{FindByOpenIDFunc: func(context.Context, string) (*entity.User, error) { return nil, nil }}
		uc := NewIdentityUsecase(repo, &mockTokenGenerator{}, "")

		_, err := uc.SignIn(context.Background(), entity.Profile{OpenID: "abc"})

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("failure: upsert error is propagated", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		repo := &mockUserRepository{UpsertFunc: func(context.Context, *entity.User, entity.UserPatch) error { return boom }}
		uc := NewIdentityUsecase(repo, &mockTokenGenerator{}, "")

		_, err := uc.SignIn(context.Background(), entity.Profile{OpenID: "abc"})

		assert.ErrorIs(t, err, boom)
	})
}

func TestMe(t *testing.T) {
	t.Parallel()

	repo := &mockUserRepository{FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
		if id == 1 {
			return &entity.User{ID: 1, OpenID: "abc"}, nil
		}
		return nil, nil
	}}
	uc := NewIdentityUsecase(repo, &mockTokenGenerator{}, "")

	u, err := uc.Me(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "abc", u.OpenID)

	_, err = uc.Me(context.Background(), 2)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
