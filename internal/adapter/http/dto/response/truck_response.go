package response

import (
	"time"

	"logistica_xpto/internal/domain/entities"
)

type TruckResponse struct {
	ID          string    `json:"id"`
	TruckID     int       `json:"truckId"`
	PlateNumber string    `json:"plateNumber"`
	Model       string    `json:"model,omitempty"`
	Capacity    float64   `json:"capacity,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromTruck(t entities.Truck) TruckResponse {
	return TruckResponse{
		ID:          t.ID,
		TruckID:     t.TruckID,
		PlateNumber: t.PlateNumber,
		Model:       t.Model,
		Capacity:    t.Capacity,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func FromTrucks(trucks []entities.Truck) []TruckResponse {
	out := make([]TruckResponse, 0, len(trucks))
	for _, t := range trucks {
		out = append(out, FromTruck(t))
	}
	return out
}
