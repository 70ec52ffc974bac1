package interfaces

import (
	"context"
	"errors"
	"time"

	"logistica_xpto/internal/domain/entities"
)

// Assignment conflict sentinels raised by CreateAssigned when a concurrent
// request won the truck or driver between the availability check and the
// transactional write.
var (
	ErrTruckAssignmentConflict  = errors.New("truck assignment conflict")
	ErrDriverAssignmentConflict = errors.New("driver assignment conflict")
)

// ShipmentAssignment carries the storage keys of the truck and driver the
// shipment creation must flip to Not Available. Empty keys mean the request
// did not reference that entity.
type ShipmentAssignment struct {
	TruckKey  string
	TruckID   int
	DriverKey string
}

// ShipmentUpdate is the explicit allow-list of mutable shipment fields.
// Truck/driver references are only writable through the creation workflow.
type ShipmentUpdate struct {
	Name                *string
	PickupLocation      *string
	DeliveryLocation    *string
	CargoType           *string
	CargoWeight         *float64
	DepartureDate       *time.Time
	ArrivalDate         *time.Time
	Status              *entities.ShipmentStatus
	SpecialInstructions *string
}

// IShipmentRepository abstracts DynamoDB persistence for Shipment.
//
// CreateAssigned must insert the shipment and flip the referenced truck and
// driver to Not Available as one atomic write: either everything commits or
// nothing does, and a truck/driver that is no longer Available cancels the
// whole write with the matching conflict sentinel.
type IShipmentRepository interface {
	Create(ctx context.Context, s entities.Shipment) (entities.Shipment, error)
	CreateAssigned(ctx context.Context, s entities.Shipment, a ShipmentAssignment) (entities.Shipment, error)
	GetByShipmentID(ctx context.Context, shipmentID int) (entities.Shipment, error)
	GetByKey(ctx context.Context, id string) (entities.Shipment, error)
	List(ctx context.Context) ([]entities.Shipment, error)
	UpdateByShipmentID(ctx context.Context, shipmentID int, upd ShipmentUpdate) (entities.Shipment, error)
	DeleteByShipmentID(ctx context.Context, shipmentID int) (bool, error)
}
