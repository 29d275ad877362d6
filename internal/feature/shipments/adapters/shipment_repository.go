package adapters

import (
	"context"

	"gorm.io/gorm"

	"parcel_backend/internal/feature/shipments/domain/entity"
	"parcel_backend/internal/feature/shipments/usecase"
	infradb "parcel_backend/internal/platform/db"
	"parcel_backend/internal/platform/ownedstore"
)

type shipmentRepository struct {
	store *ownedstore.Store[entity.Shipment]
}

var _ usecase.ShipmentRepository = (*shipmentRepository)(nil)

// NewShipmentRepository serves from src; the store degrades while src has no handle.
func NewShipmentRepository(src infradb.Source) *shipmentRepository {
	return &shipmentRepository{store: ownedstore.New[entity.Shipment](src, "shipment", ownedstore.OrderCreated)}
}

func (r *shipmentRepository) List(ctx context.Context, ownerID uint) ([]entity.Shipment, error) {
	return r.store.List(ctx, ownerID)
}

func (r *shipmentRepository) Create(ctx context.Context, ownerID uint, s *entity.Shipment) error {
	s.ID = 0
	s.UserID = ownerID
	return r.store.Create(ctx, s)
}

func (r *shipmentRepository) Update(ctx context.Context, id, ownerID uint, p entity.ShipmentPatch) error {
	c := ownedstore.Changes{}
	ownedstore.Put(c, "shipment_name", p.ShipmentName)
	ownedstore.Put(c, "origin", p.Origin)
	ownedstore.Put(c, "destination", p.Destination)
	ownedstore.Put(c, "weight", p.Weight)
	ownedstore.Put(c, "dimensions", p.Dimensions)
	ownedstore.Put(c, "shipping_method", p.ShippingMethod)
	ownedstore.Put(c, "estimated_cost", p.EstimatedCost)
	ownedstore.Put(c, "notes", p.Notes)
	ownedstore.Put(c, "status", p.Status)
	return r.store.Update(ctx, id, ownerID, c)
}

func (r *shipmentRepository) Delete(ctx context.Context, id, ownerID uint) error {
	return r.store.Delete(ctx, id, ownerID)
}

func (r *shipmentRepository) PurgeOwner(ctx context.Context, tx *gorm.DB, ownerID uint) error {
	return r.store.PurgeOwner(ctx, tx, ownerID)
}
