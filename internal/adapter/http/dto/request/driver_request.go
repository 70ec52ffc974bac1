package request

import (
	"logistica_xpto/internal/domain/entities"
	"logistica_xpto/internal/usecase/interfaces"
)

type DriverCreateRequest struct {
	Name          string  `json:"name" binding:"required"`
	LicenseNumber string  `json:"licenseNumber" binding:"required"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	Salary        float64 `json:"salary" binding:"required,gt=0"`
}

func (r DriverCreateRequest) ToEntity() entities.Driver {
	return entities.Driver{
		Name:          r.Name,
		LicenseNumber: r.LicenseNumber,
		Phone:         r.Phone,
		Address:       r.Address,
		Salary:        r.Salary,
	}
}

// DriverUpdateRequest mirrors the creation rules with every field optional.
// Availability may be reset here (manual release); resetting to Available
// also clears the assigned truck. Assigned-truck cannot be set directly.
type DriverUpdateRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=1"`
	LicenseNumber *string  `json:"licenseNumber" binding:"omitempty,min=1"`
	Phone         *string  `json:"phone"`
	Address       *string  `json:"address"`
	Salary        *float64 `json:"salary" binding:"omitempty,gt=0"`
	Status        *string  `json:"status" binding:"omitempty,oneof='Available' 'Not Available'"`
}

func (r DriverUpdateRequest) ToUpdate() interfaces.DriverUpdate {
	upd := interfaces.DriverUpdate{
		Name:          r.Name,
		LicenseNumber: r.LicenseNumber,
		Phone:         r.Phone,
		Address:       r.Address,
		Salary:        r.Salary,
	}
	if r.Status != nil {
		s := entities.Availability(*r.Status)
		upd.Status = &s
	}
	return upd
}
