package request

import (
	"logistica_xpto/internal/domain/entities"
	"logistica_xpto/internal/usecase/interfaces"
)

type ClientCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (r ClientCreateRequest) ToEntity() entities.Client {
	return entities.Client{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}

// ClientUpdateRequest mirrors the creation rules with every field optional.
// Only fields present in the body reach the allow-list merge.
type ClientUpdateRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (r ClientUpdateRequest) ToUpdate() interfaces.ClientUpdate {
	return interfaces.ClientUpdate{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}
