package ownedstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	infradb "parcel_backend/internal/platform/db"
)

type noteModel struct {
	ID        uint    `gorm:"primaryKey"`
	UserID    uint    `gorm:"not null;index"`
	Title     string  `gorm:"not null"`
	Body      *string `gorm:"type:text"`
	WeekStart time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (noteModel) TableName() string { return "notes" }

// setupTestDB はテスト用のインメモリSQLiteデータベースを準備します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&noteModel{}), "failed to migrate table")
	return db
}

func seed(t *testing.T, s *Store[noteModel], owner uint, title string) *noteModel {
	t.Helper()
	n := &noteModel{UserID: owner, Title: title}
	require.NoError(t, s.Create(context.Background(), n))
	return n
}

func strPtr(s string) *string { return &s }

func TestStore_ListIsOwnerScopedAndOrdered(t *testing.T) {
	t.Parallel()

	s := New[noteModel](infradb.Static(setupTestDB(t)), "note", OrderCreated)
	seed(t, s, 1, "a1")
	seed(t, s, 2, "b1")
	seed(t, s, 1, "a2")

	rows, err := s.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "a1", rows[0].Title)
	assert.Equal(t, "a2", rows[1].Title)

	none, err := s.List(context.Background(), 99)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestStore_ListCustomOrder(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	s := New[noteModel](infradb.Static(db), "note", "week_start ASC, id ASC")
	later := &noteModel{UserID: 1, Title: "later", WeekStart: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)}
	earlier := &noteModel{UserID: 1, Title: "earlier", WeekStart: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, s.Create(context.Background(), later))
	require.NoError(t, s.Create(context.Background(), earlier))

	rows, err := s.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "earlier", rows[0].Title)
}

// TestStore_OwnershipIsolation は他ユーザーのレコードが更新・削除されないことを検証します。
func TestStore_OwnershipIsolation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New[noteModel](infradb.Static(setupTestDB(t)), "note", OrderCreated)
	mine := seed(t, s, 1, "owned by 1")

	require.NoError(t, s.Update(ctx, mine.ID, 2, map[string]any{"title": "hijacked"}))
	require.NoError(t, s.Delete(ctx, mine.ID, 2))

	rows, err := s.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "owned by 1", rows[0].Title)

	other, err := s.List(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, other)
}

// TestStore_UpdateTouchesOnlyGivenColumns は部分更新で指定外のカラムが変化しないことを検証します。
func TestStore_UpdateTouchesOnlyGivenColumns(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New[noteModel](infradb.Static(setupTestDB(t)), "note", OrderCreated)
	n := &noteModel{UserID: 1, Title: "keep", Body: strPtr("original")}
	require.NoError(t, s.Create(ctx, n))

	require.NoError(t, s.Update(ctx, n.ID, 1, map[string]any{"body": ""}))

	rows, err := s.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "keep", rows[0].Title)
	require.NotNil(t, rows[0].Body)
	assert.Equal(t, "", *rows[0].Body, "explicit empty string is a write")
	assert.False(t, rows[0].UpdatedAt.Before(n.UpdatedAt))

	require.NoError(t, s.Update(ctx, n.ID, 1, map[string]any{"body": nil}))
	rows, _ = s.List(ctx, 1)
	assert.Nil(t, rows[0].Body, "explicit null clears the column")
}

func TestStore_UpdateEmptyChangesIsNoop(t *testing.T) {
	t.Parallel()

	// an unavailable source proves no statement is issued
	s := New[noteModel](infradb.Static(nil), "note", OrderCreated)

	assert.NoError(t, s.Update(context.Background(), 1, 1, nil))
	assert.NoError(t, s.Update(context.Background(), 1, 1, map[string]any{}))
}

func TestStore_DeleteThenList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New[noteModel](infradb.Static(setupTestDB(t)), "note", OrderCreated)
	keep := seed(t, s, 1, "keep")
	gone := seed(t, s, 1, "gone")

	require.NoError(t, s.Delete(ctx, gone.ID, 1))
	require.NoError(t, s.Delete(ctx, gone.ID, 1), "second delete is a silent no-op")

	rows, err := s.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, keep.ID, rows[0].ID)
}

func TestStore_PurgeOwner(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := setupTestDB(t)
	s := New[noteModel](infradb.Static(db), "note", OrderCreated)
	seed(t, s, 1, "x")
	seed(t, s, 1, "y")
	seed(t, s, 2, "z")

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return s.PurgeOwner(ctx, tx, 1)
	}))

	mine, _ := s.List(ctx, 1)
	theirs, _ := s.List(ctx, 2)
	assert.Empty(t, mine)
	assert.Len(t, theirs, 1)
}

// TestStore_Degraded はDB未接続時に読み取りは空、書き込みはErrUnavailableになることを検証します。
func TestStore_Degraded(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New[noteModel](infradb.Static(nil), "note", OrderCreated)

	rows, err := s.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, rows)

	assert.ErrorIs(t, s.Create(ctx, &noteModel{UserID: 1, Title: "t"}), infradb.ErrUnavailable)
	assert.ErrorIs(t, s.Update(ctx, 1, 1, map[string]any{"title": "t"}), infradb.ErrUnavailable)
	assert.ErrorIs(t, s.Delete(ctx, 1, 1), infradb.ErrUnavailable)
}

func TestStore_ClosedConnection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := setupTestDB(t)
	s := New[noteModel](infradb.Static(db), "note", OrderCreated)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	rows, err := s.List(ctx, 1)
	require.NoError(t, err, "reads degrade to empty")
	assert.Empty(t, rows)

	err = s.Create(ctx, &noteModel{UserID: 1, Title: "t"})
	assert.ErrorIs(t, err, infradb.ErrUnavailable)
}

// TestStore_ServesRowsOnceStorageComesUp はDB停止中に作られたストアが復旧後に読み書きできることを検証します。
func TestStore_ServesRowsOnceStorageComesUp(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := setupTestDB(t)
	up := false
	h := infradb.NewHandle(func() (*gorm.DB, error) {
		if !up {
			return nil, errors.New("connection refused")
		}
		return db, nil
	}, 0)
	s := New[noteModel](h, "note", OrderCreated)

	rows, err := s.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.ErrorIs(t, s.Create(ctx, &noteModel{UserID: 1, Title: "early"}), infradb.ErrUnavailable)

	up = true
	require.NoError(t, s.Create(ctx, &noteModel{UserID: 1, Title: "after recovery"}))
	rows, err = s.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "after recovery", rows[0].Title)
}
