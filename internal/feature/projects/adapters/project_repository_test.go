package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"parcel_backend/internal/feature/projects/domain/entity"
	"parcel_backend/internal/feature/projects/usecase"
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

	require.NoError(t, db.AutoMigrate(&entity.Project{}))
	return db
}

func TestProject_CreateUpdateList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	uc := usecase.NewProjectUsecase(NewProjectRepository(infradb.Static(setupTestDB(t))))

	require.NoError(t, uc.Create(ctx, 1, usecase.CreateProjectInput{ProjectName: "Catalog"}))
	list, err := uc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.StatusPlanning, list[0].Status)
	assert.Equal(t, entity.PriorityMedium, list[0].Priority)

	err = uc.Update(ctx, list[0].ID, 1, usecase.UpdateProjectInput{
		Status:        optional.Of("completed"),
		CompletedDate: optional.Of("2025-06-30T12:00:00Z"),
	})
	require.NoError(t, err)

	list, err = uc.List(ctx, 1)
	require.NoError(t, err)
	p := list[0]
	assert.Equal(t, entity.StatusCompleted, p.Status)
	assert.Equal(t, entity.PriorityMedium, p.Priority)
	assert.Equal(t, "Catalog", p.ProjectName)
	require.NotNil(t, p.CompletedDate)
	assert.True(t, time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC).Equal(*p.CompletedDate))
}

func TestProject_OwnershipAndDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewProjectRepository(infradb.Static(db))
	p := &entity.Project{ProjectName: "Mine", Status: entity.StatusPlanning, Priority: entity.PriorityLow}
	require.NoError(t, repo.Create(ctx, 1, p))

	require.NoError(t, repo.Update(ctx, p.ID, 2, entity.ProjectPatch{ProjectName: optional.Of("Hijacked")}))
	require.NoError(t, repo.Delete(ctx, p.ID, 2))

	list, _ := repo.List(ctx, 1)
	require.Len(t, list, 1)
	assert.Equal(t, "Mine", list[0].ProjectName)

	require.NoError(t, repo.Delete(ctx, p.ID, 1))
	list, _ = repo.List(ctx, 1)
	assert.Empty(t, list)

	require.NoError(t, repo.Create(ctx, 1, &entity.Project{ProjectName: "Again", Status: entity.StatusPlanning, Priority: entity.PriorityLow}))
	require.NoError(t, db.Transaction(func(tx *gorm.DB) error { return repo.PurgeOwner(ctx, tx, 1) }))
	list, _ = repo.List(ctx, 1)
	assert.Empty(t, list)
}

func TestProject_Degraded(t *testing.T) {
	t.Parallel()

	repo := NewProjectRepository(infradb.Static(nil))

	list, err := repo.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.ErrorIs(t, repo.Delete(context.Background(), 1, 1), infradb.ErrUnavailable)
}
