package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"parcel_backend/internal/feature/shipments/domain/entity"
	"parcel_backend/internal/feature/shipments/usecase"
	infradb "parcel_backend/internal/platform/db"
	"parcel_backend/internal/shared/optional"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&entity.Shipment{}))
	return db
}

func strPtr(s string) *string { return &s }

// TestShipment_CreateStoresDraft は作成直後のステータスがdraftであることを検証します。
func TestShipment_CreateStoresDraft(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	uc := usecase.NewShipmentUsecase(NewShipmentRepository(infradb.Static(setupTestDB(t))))

	err := uc.Create(ctx, 1, usecase.CreateShipmentInput{
		ShipmentName: "Spring restock",
		Origin:       strPtr("Osaka"),
		Weight:       strPtr("12kg"),
	})
	require.NoError(t, err)

	shipments, err := uc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, shipments, 1)
	s := shipments[0]
	assert.Equal(t, "Spring restock", s.ShipmentName)
	require.NotNil(t, s.Status)
	assert.Equal(t, usecase.DefaultStatus, *s.Status)
	assert.Equal(t, "12kg", *s.Weight)
	assert.Nil(t, s.Destination)
}

func TestShipment_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewShipmentRepository(infradb.Static(setupTestDB(t)))
	s := &entity.Shipment{ShipmentName: "Crates", Notes: strPtr("keep dry"), Origin: strPtr("Kobe")}
	require.NoError(t, repo.Create(ctx, 1, s))

	err := repo.Update(ctx, s.ID, 1, entity.ShipmentPatch{
		Status: optional.Of("shipped"),
		Notes:  optional.Null[string](),
	})
	require.NoError(t, err)

	list, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "shipped", *list[0].Status)
	assert.Nil(t, list[0].Notes)
	assert.Equal(t, "Kobe", *list[0].Origin)
	assert.Equal(t, "Crates", list[0].ShipmentName)

	// 他ユーザーからの削除は無視される
	require.NoError(t, repo.Delete(ctx, s.ID, 2))
	list, _ = repo.List(ctx, 1)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, s.ID, 1))
	list, _ = repo.List(ctx, 1)
	assert.Empty(t, list)
}

func TestShipment_OwnershipIsolation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewShipmentRepository(infradb.Static(db))
	s := &entity.Shipment{UserID: 7, ShipmentName: "Mine"}
	require.NoError(t, repo.Create(ctx, 1, s))

	require.NoError(t, repo.Update(ctx, s.ID, 2, entity.ShipmentPatch{ShipmentName: optional.Of("Theirs")}))

	other, _ := repo.List(ctx, 7)
	assert.Empty(t, other)
	mine, _ := repo.List(ctx, 1)
	require.Len(t, mine, 1)
	assert.Equal(t, "Mine", mine[0].ShipmentName)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error { return repo.PurgeOwner(ctx, tx, 1) }))
	mine, _ = repo.List(ctx, 1)
	assert.Empty(t, mine)
}

func TestShipment_Degraded(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewShipmentRepository(infradb.Static(nil))

	list, err := repo.List(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, list)

	err = repo.Update(ctx, 1, 1, entity.ShipmentPatch{Status: optional.Of("x")})
	assert.ErrorIs(t, err, infradb.ErrUnavailable)
}
