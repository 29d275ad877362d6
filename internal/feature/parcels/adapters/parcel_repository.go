// Package adapters はparcelsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"

	"gorm.io/gorm"

	"parcel_backend/internal/feature/parcels/domain/entity"
	"parcel_backend/internal/feature/parcels/usecase"
	infradb "parcel_backend/internal/platform/db"
	"parcel_backend/internal/platform/ownedstore"
)

// parcelRepository はParcelRepositoryのgorm実装です。
type parcelRepository struct {
	store *ownedstore.Store[entity.Parcel]
}

var _ usecase.ParcelRepository = (*parcelRepository)(nil)

// NewParcelRepository serves from src; the store degrades while src has no handle.
func NewParcelRepository(src infradb.Source) *parcelRepository {
	return &parcelRepository{store: ownedstore.New[entity.Parcel](src, "parcel", ownedstore.OrderCreated)}
}

func (r *parcelRepository) List(ctx context.Context, ownerID uint) ([]entity.Parcel, error) {
	return r.store.List(ctx, ownerID)
}

// Create stamps ownerID on p before inserting it.
func (r *parcelRepository) Create(ctx context.Context, ownerID uint, p *entity.Parcel) error {
	p.ID = 0
	p.UserID = ownerID
	return r.store.Create(ctx, p)
}

func (r *parcelRepository) Update(ctx context.Context, id, ownerID uint, patch entity.ParcelPatch) error {
	return r.store.Update(ctx, id, ownerID, parcelChanges(patch))
}

func (r *parcelRepository) Delete(ctx context.Context, id, ownerID uint) error {
	return r.store.Delete(ctx, id, ownerID)
}

// PurgeOwner removes all parcels of ownerID inside tx.
func (r *parcelRepository) PurgeOwner(ctx context.Context, tx *gorm.DB, ownerID uint) error {
	return r.store.PurgeOwner(ctx, tx, ownerID)
}

func parcelChanges(p entity.ParcelPatch) ownedstore.Changes {
	c := ownedstore.Changes{}
	ownedstore.Put(c, "tracking_number", p.TrackingNumber)
	ownedstore.Put(c, "parcel_name", p.ParcelName)
	ownedstore.Put(c, "destination", p.Destination)
	ownedstore.Put(c, "date_sent", p.DateSent)
	ownedstore.Put(c, "note", p.Note)
	ownedstore.Put(c, "status", p.Status)
	ownedstore.Put(c, "status_description", p.StatusDescription)
	ownedstore.Put(c, "status_date", p.StatusDate)
	ownedstore.Put(c, "location", p.Location)
	return c
}
