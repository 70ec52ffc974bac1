package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"logistica_xpto/internal/domain/entities"
	"logistica_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrShipmentNotFound      = errors.New("shipment not found")
	ErrInvalidShipmentInput  = errors.New("invalid shipment input")
	ErrShipmentTruckMissing  = errors.New("referenced truck does not exist")
	ErrTruckNotAvailable     = errors.New("truck is not available")
	ErrShipmentDriverMissing = errors.New("referenced driver does not exist")
	ErrDriverNotAvailable    = errors.New("driver is not available")
	ErrShipmentClientMissing = errors.New("referenced client does not exist")
)

// ShipmentDetail is a shipment with its references resolved. A dangling
// reference leaves the corresponding field nil rather than failing the read.
type ShipmentDetail struct {
	Shipment entities.Shipment
	Truck    *entities.Truck
	Driver   *entities.Driver
	Client   *entities.Client
}

// IShipmentUseCase exposes the shipment workflow: creation with cross-entity
// availability checks, composed retrieval, allow-listed update and delete.

type IShipmentUseCase interface {
	Create(ctx context.Context, s entities.Shipment) (ShipmentDetail, error)
	List(ctx context.Context) ([]ShipmentDetail, error)
	GetByShipmentID(ctx context.Context, shipmentID int) (ShipmentDetail, error)
	Update(ctx context.Context, shipmentID int, upd interfaces.ShipmentUpdate) (ShipmentDetail, error)
	Delete(ctx context.Context, shipmentID int) error
}

type ShipmentUseCase struct {
	repo       interfaces.IShipmentRepository
	truckRepo  interfaces.ITruckRepository
	driverRepo interfaces.IDriverRepository
	clientRepo interfaces.IClientRepository
	seq        interfaces.ISequenceRepository
}

var _ IShipmentUseCase = (*ShipmentUseCase)(nil)

func NewShipmentUseCase(
	repo interfaces.IShipmentRepository,
	truckRepo interfaces.ITruckRepository,
	driverRepo interfaces.IDriverRepository,
	clientRepo interfaces.IClientRepository,
	seq interfaces.ISequenceRepository,
) *ShipmentUseCase {
	return &ShipmentUseCase{
		repo:       repo,
		truckRepo:  truckRepo,
		driverRepo: driverRepo,
		clientRepo: clientRepo,
		seq:        seq,
	}
}

// Create runs the shipment workflow. Business checks run in a fixed order
// (truck, then driver, then client) and the first failing check wins; field
// validation has already been aggregated at the HTTP boundary.
func (u *ShipmentUseCase) Create(ctx context.Context, s entities.Shipment) (ShipmentDetail, error) {
	s.Name = strings.TrimSpace(s.Name)
	s.PickupLocation = strings.TrimSpace(s.PickupLocation)
	s.DeliveryLocation = strings.TrimSpace(s.DeliveryLocation)
	s.CargoType = strings.TrimSpace(s.CargoType)
	if s.Name == "" || s.PickupLocation == "" || s.DeliveryLocation == "" || s.CargoType == "" {
		return ShipmentDetail{}, ErrInvalidShipmentInput
	}
	if s.CargoWeight <= 0 {
		return ShipmentDetail{}, ErrInvalidShipmentInput
	}
	if s.DepartureDate.IsZero() || s.ArrivalDate.IsZero() {
		return ShipmentDetail{}, ErrInvalidShipmentInput
	}
	switch s.Status {
	case "":
		s.Status = entities.ShipmentStatusPending
	case entities.ShipmentStatusPending, entities.ShipmentStatusDelivered, entities.ShipmentStatusCancelled:
	default:
		return ShipmentDetail{}, ErrInvalidShipmentInput
	}

	detail := ShipmentDetail{}
	assignment := interfaces.ShipmentAssignment{}

	if s.TruckID != nil {
		truck, err := u.truckRepo.GetByTruckID(ctx, *s.TruckID)
		if err != nil {
			return ShipmentDetail{}, err
		}
		if truck.ID == "" {
			return ShipmentDetail{}, ErrShipmentTruckMissing
		}
		if truck.Status != entities.AvailabilityAvailable {
			return ShipmentDetail{}, ErrTruckNotAvailable
		}
		assignment.TruckKey = truck.ID
		assignment.TruckID = truck.TruckID
		truck.Status = entities.AvailabilityNotAvailable
		detail.Truck = &truck
	}

	if s.DriverID != nil {
		driver, err := u.driverRepo.GetByDriverID(ctx, *s.DriverID)
		if err != nil {
			return ShipmentDetail{}, err
		}
		if driver.ID == "" {
			return ShipmentDetail{}, ErrShipmentDriverMissing
		}
		if driver.Status != entities.AvailabilityAvailable {
			return ShipmentDetail{}, ErrDriverNotAvailable
		}
		assignment.DriverKey = driver.ID
		driver.Status = entities.AvailabilityNotAvailable
		driver.AssignedTruck = s.TruckID
		detail.Driver = &driver
	}

	client, err := u.clientRepo.GetByClientID(ctx, s.ClientID)
	if err != nil {
		return ShipmentDetail{}, err
	}
	if client.ID == "" {
		return ShipmentDetail{}, ErrShipmentClientMissing
	}
	detail.Client = &client

	shipmentID, err := u.seq.Next(ctx, interfaces.SequenceShipment)
	if err != nil {
		return ShipmentDetail{}, err
	}

	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.ShipmentID = shipmentID
	s.CreatedAt = now
	s.UpdatedAt = now

	if assignment.TruckKey == "" && assignment.DriverKey == "" {
		created, err := u.repo.Create(ctx, s)
		if err != nil {
			return ShipmentDetail{}, err
		}
		detail.Shipment = created
		return detail, nil
	}

	created, err := u.repo.CreateAssigned(ctx, s, assignment)
	if err != nil {
		// A concurrent request won the truck or driver after the check above;
		// the whole transaction was cancelled and nothing was written.
		switch {
		case errors.Is(err, interfaces.ErrTruckAssignmentConflict):
			log.Printf("[shipment][usecase] lost truck race shipment_id=%d truck_id=%d", shipmentID, assignment.TruckID)
			return ShipmentDetail{}, ErrTruckNotAvailable
		case errors.Is(err, interfaces.ErrDriverAssignmentConflict):
			log.Printf("[shipment][usecase] lost driver race shipment_id=%d", shipmentID)
			return ShipmentDetail{}, ErrDriverNotAvailable
		}
		return ShipmentDetail{}, err
	}
	detail.Shipment = created
	return detail, nil
}

func (u *ShipmentUseCase) List(ctx context.Context) ([]ShipmentDetail, error) {
	shipments, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]ShipmentDetail, 0, len(shipments))
	for _, s := range shipments {
		d, err := u.resolve(ctx, s)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

func (u *ShipmentUseCase) GetByShipmentID(ctx context.Context, shipmentID int) (ShipmentDetail, error) {
	s, err := u.repo.GetByShipmentID(ctx, shipmentID)
	if err != nil {
		return ShipmentDetail{}, err
	}
	if s.ID == "" {
		return ShipmentDetail{}, ErrShipmentNotFound
	}
	return u.resolve(ctx, s)
}

func (u *ShipmentUseCase) Update(ctx context.Context, shipmentID int, upd interfaces.ShipmentUpdate) (ShipmentDetail, error) {
	if upd.CargoWeight != nil && *upd.CargoWeight <= 0 {
		return ShipmentDetail{}, ErrInvalidShipmentInput
	}

	updated, err := u.repo.UpdateByShipmentID(ctx, shipmentID, upd)
	if err != nil {
		return ShipmentDetail{}, err
	}
	if updated.ID == "" {
		return ShipmentDetail{}, ErrShipmentNotFound
	}
	return u.resolve(ctx, updated)
}

func (u *ShipmentUseCase) Delete(ctx context.Context, shipmentID int) error {
	found, err := u.repo.DeleteByShipmentID(ctx, shipmentID)
	if err != nil {
		return err
	}
	if !found {
		return ErrShipmentNotFound
	}
	return nil
}

// resolve merges the referenced truck, driver and client into the composed
// view. Dangling references yield nil fields; a broken reference in one
// record must never fail a whole listing.
func (u *ShipmentUseCase) resolve(ctx context.Context, s entities.Shipment) (ShipmentDetail, error) {
	d := ShipmentDetail{Shipment: s}

	if s.TruckID != nil {
		truck, err := u.truckRepo.GetByTruckID(ctx, *s.TruckID)
		if err != nil {
			return ShipmentDetail{}, err
		}
		if truck.ID != "" {
			d.Truck = &truck
		}
	}

	if s.DriverID != nil {
		driver, err := u.driverRepo.GetByDriverID(ctx, *s.DriverID)
		if err != nil {
			return ShipmentDetail{}, err
		}
		if driver.ID != "" {
			d.Driver = &driver
		}
	}

	client, err := u.clientRepo.GetByClientID(ctx, s.ClientID)
	if err != nil {
		return ShipmentDetail{}, err
	}
	if client.ID != "" {
		d.Client = &client
	}

	return d, nil
}
