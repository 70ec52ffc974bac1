package request

import (
	"logistica_xpto/internal/domain/entities"
	"logistica_xpto/internal/usecase/interfaces"
)

type TruckCreateRequest struct {
	PlateNumber string  `json:"plateNumber" binding:"required"`
	Model       string  `json:"model"`
	Capacity    float64 `json:"capacity" binding:"omitempty,gt=0"`
}

func (r TruckCreateRequest) ToEntity() entities.Truck {
	return entities.Truck{
		PlateNumber: r.PlateNumber,
		Model:       r.Model,
		Capacity:    r.Capacity,
	}
}

// TruckUpdateRequest mirrors the creation rules with every field optional.
type TruckUpdateRequest struct {
	PlateNumber *string  `json:"plateNumber" binding:"omitempty,min=1"`
	Model       *string  `json:"model"`
	Capacity    *float64 `json:"capacity" binding:"omitempty,gt=0"`
	Status      *string  `json:"status" binding:"omitempty,oneof='Available' 'Not Available'"`
}

func (r TruckUpdateRequest) ToUpdate() interfaces.TruckUpdate {
	upd := interfaces.TruckUpdate{
		PlateNumber: r.PlateNumber,
		Model:       r.Model,
		Capacity:    r.Capacity,
	}
	if r.Status != nil {
		s := entities.Availability(*r.Status)
		upd.Status = &s
	}
	return upd
}
