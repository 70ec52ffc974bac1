package request

import (
	"encoding/json"
	"time"

	"logistica_xpto/internal/domain/entities"
	"logistica_xpto/internal/usecase/interfaces"
)

// BillCreateRequest references the client and shipment by their opaque
// storage ids, unlike the numeric references used elsewhere.
type BillCreateRequest struct {
	ClientKey   string     `json:"clientKey" binding:"required"`
	ShipmentKey string     `json:"shipmentKey" binding:"required"`
	IssueDate   *time.Time `json:"issueDate" binding:"required"`
	DueDate     *time.Time `json:"dueDate" binding:"required"`
	Amount      *float64   `json:"amount" binding:"required,gte=0"`
	TaxAmount   float64    `json:"taxAmount" binding:"omitempty,gte=0"`
	TotalAmount *float64   `json:"totalAmount" binding:"required,gte=0"`

	// Paid cannot be set on creation; it moves through the pay endpoint.
	PaymentStatus string  `json:"paymentStatus" binding:"omitempty,oneof=pending overdue"`
	TaxID         string  `json:"taxId"`
	FuelCost      float64 `json:"fuelCost" binding:"omitempty,gte=0"`
}

func (r BillCreateRequest) ToEntity() entities.Bill {
	b := entities.Bill{
		ClientKey:     r.ClientKey,
		ShipmentKey:   r.ShipmentKey,
		TaxAmount:     r.TaxAmount,
		PaymentStatus: entities.PaymentStatus(r.PaymentStatus),
		TaxID:         r.TaxID,
		FuelCost:      r.FuelCost,
	}
	if r.IssueDate != nil {
		b.IssueDate = *r.IssueDate
	}
	if r.DueDate != nil {
		b.DueDate = *r.DueDate
	}
	if r.Amount != nil {
		b.Amount = *r.Amount
	}
	if r.TotalAmount != nil {
		b.TotalAmount = *r.TotalAmount
	}
	return b
}

// BillUpdateRequest mirrors the creation rules with every field optional.
// PaymentStatus may flag a bill pending or overdue; paid moves through the
// pay endpoint.
type BillUpdateRequest struct {
	IssueDate     *time.Time `json:"issueDate"`
	DueDate       *time.Time `json:"dueDate"`
	Amount        *float64   `json:"amount" binding:"omitempty,gte=0"`
	TaxAmount     *float64   `json:"taxAmount" binding:"omitempty,gte=0"`
	TotalAmount   *float64   `json:"totalAmount" binding:"omitempty,gte=0"`
	PaymentStatus *string    `json:"paymentStatus" binding:"omitempty,oneof=pending overdue"`
	TaxID         *string    `json:"taxId"`
	FuelCost      *float64   `json:"fuelCost" binding:"omitempty,gte=0"`
}

func (r BillUpdateRequest) ToUpdate() interfaces.BillUpdate {
	upd := interfaces.BillUpdate{
		IssueDate:   r.IssueDate,
		DueDate:     r.DueDate,
		Amount:      r.Amount,
		TaxAmount:   r.TaxAmount,
		TotalAmount: r.TotalAmount,
		TaxID:       r.TaxID,
		FuelCost:    r.FuelCost,
	}
	if r.PaymentStatus != nil {
		s := entities.PaymentStatus(*r.PaymentStatus)
		upd.PaymentStatus = &s
	}
	return upd
}

// BillPayRequest settles a bill. GatewayPayload is forwarded to the payment
// provider as-is when one is configured.
type BillPayRequest struct {
	PaymentMethod  string          `json:"paymentMethod" binding:"required"`
	GatewayPayload json.RawMessage `json:"gatewayPayload"`
}
