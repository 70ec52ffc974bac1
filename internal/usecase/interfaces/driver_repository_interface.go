package interfaces

import (
	"context"

	"logistica_xpto/internal/domain/entities"
)

// DriverUpdate is the explicit allow-list of mutable driver fields.
// AssignedTruck is only writable through the shipment workflow.
type DriverUpdate struct {
	Name          *string
	LicenseNumber *string
	Phone         *string
	Address       *string
	Salary        *float64
	Status        *entities.Availability
}

// IDriverRepository abstracts DynamoDB persistence for Driver.
//
// Not-found reads return a zero-value entity (empty ID) and a nil error.
type IDriverRepository interface {
	Create(ctx context.Context, d entities.Driver) (entities.Driver, error)
	GetByDriverID(ctx context.Context, driverID int) (entities.Driver, error)
	GetByLicenseNumber(ctx context.Context, licenseNumber string) (entities.Driver, error)
	List(ctx context.Context) ([]entities.Driver, error)
	UpdateByDriverID(ctx context.Context, driverID int, upd DriverUpdate) (entities.Driver, error)
	DeleteByDriverID(ctx context.Context, driverID int) (bool, error)
}
