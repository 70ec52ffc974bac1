package interfaces

import (
	"context"

	"logistica_xpto/internal/domain/entities"
)

// TruckUpdate is the explicit allow-list of mutable truck fields.
type TruckUpdate struct {
	PlateNumber *string
	Model       *string
	Capacity    *float64
	Status      *entities.Availability
}

// ITruckRepository abstracts DynamoDB persistence for Truck.
//
// Not-found reads return a zero-value entity (empty ID) and a nil error.
type ITruckRepository interface {
	Create(ctx context.Context, t entities.Truck) (entities.Truck, error)
	GetByTruckID(ctx context.Context, truckID int) (entities.Truck, error)
	List(ctx context.Context) ([]entities.Truck, error)
	UpdateByTruckID(ctx context.Context, truckID int, upd TruckUpdate) (entities.Truck, error)
	DeleteByTruckID(ctx context.Context, truckID int) (bool, error)
}
