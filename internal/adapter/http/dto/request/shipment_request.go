package request

import (
	"time"

	"logistica_xpto/internal/domain/entities"
	"logistica_xpto/internal/usecase/interfaces"
)

// ShipmentCreateRequest is the shipment workflow payload. Binding violations
// are aggregated at the handler so a single response lists every bad field.
type ShipmentCreateRequest struct {
	ClientID            *int       `json:"clientId" binding:"required"`
	Name                string     `json:"name" binding:"required"`
	PickupLocation      string     `json:"pickupLocation" binding:"required"`
	DeliveryLocation    string     `json:"deliveryLocation" binding:"required"`
	CargoType           string     `json:"cargoType" binding:"required"`
	CargoWeight         *float64   `json:"cargoWeight" binding:"required,gt=0"`
	DepartureDate       *time.Time `json:"departureDate" binding:"required"`
	ArrivalDate         *time.Time `json:"arrivalDate" binding:"required"`
	TruckID             *int       `json:"truckId"`
	DriverID            *int       `json:"driverId"`
	Status              string     `json:"status" binding:"omitempty,oneof=pending delivered cancelled"`
	SpecialInstructions string     `json:"specialInstructions"`
}

func (r ShipmentCreateRequest) ToEntity() entities.Shipment {
	s := entities.Shipment{
		Name:                r.Name,
		PickupLocation:      r.PickupLocation,
		DeliveryLocation:    r.DeliveryLocation,
		CargoType:           r.CargoType,
		TruckID:             r.TruckID,
		DriverID:            r.DriverID,
		Status:              entities.ShipmentStatus(r.Status),
		SpecialInstructions: r.SpecialInstructions,
	}
	if r.ClientID != nil {
		s.ClientID = *r.ClientID
	}
	if r.CargoWeight != nil {
		s.CargoWeight = *r.CargoWeight
	}
	if r.DepartureDate != nil {
		s.DepartureDate = *r.DepartureDate
	}
	if r.ArrivalDate != nil {
		s.ArrivalDate = *r.ArrivalDate
	}
	return s
}

// ShipmentUpdateRequest mirrors the creation rules with every field optional.
// Truck/driver references are intentionally absent: assignment only happens
// through creation.
type ShipmentUpdateRequest struct {
	Name                *string    `json:"name" binding:"omitempty,min=1"`
	PickupLocation      *string    `json:"pickupLocation" binding:"omitempty,min=1"`
	DeliveryLocation    *string    `json:"deliveryLocation" binding:"omitempty,min=1"`
	CargoType           *string    `json:"cargoType" binding:"omitempty,min=1"`
	CargoWeight         *float64   `json:"cargoWeight" binding:"omitempty,gt=0"`
	DepartureDate       *time.Time `json:"departureDate"`
	ArrivalDate         *time.Time `json:"arrivalDate"`
	Status              *string    `json:"status" binding:"omitempty,oneof=pending delivered cancelled"`
	SpecialInstructions *string    `json:"specialInstructions"`
}

func (r ShipmentUpdateRequest) ToUpdate() interfaces.ShipmentUpdate {
	upd := interfaces.ShipmentUpdate{
		Name:                r.Name,
		PickupLocation:      r.PickupLocation,
		DeliveryLocation:    r.DeliveryLocation,
		CargoType:           r.CargoType,
		CargoWeight:         r.CargoWeight,
		DepartureDate:       r.DepartureDate,
		ArrivalDate:         r.ArrivalDate,
		SpecialInstructions: r.SpecialInstructions,
	}
	if r.Status != nil {
		s := entities.ShipmentStatus(*r.Status)
		upd.Status = &s
	}
	return upd
}
