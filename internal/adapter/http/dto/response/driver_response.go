package response

import (
	"time"

	"logistica_xpto/internal/domain/entities"
)

type DriverResponse struct {
	ID            string    `json:"id"`
	DriverID      int       `json:"driverId"`
	Name          string    `json:"name"`
	LicenseNumber string    `json:"licenseNumber"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	Salary        float64   `json:"salary"`
	Status        string    `json:"status"`
	AssignedTruck *int      `json:"assignedTruck,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromDriver(d entities.Driver) DriverResponse {
	return DriverResponse{
		ID:            d.ID,
		DriverID:      d.DriverID,
		Name:          d.Name,
		LicenseNumber: d.LicenseNumber,
		Phone:         d.Phone,
		Address:       d.Address,
		Salary:        d.Salary,
		Status:        string(d.Status),
		AssignedTruck: d.AssignedTruck,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func FromDrivers(drivers []entities.Driver) []DriverResponse {
	out := make([]DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, FromDriver(d))
	}
	return out
}
