package response

import (
	"encoding/json"
	"time"

	"logistica_xpto/internal/domain/entities"
)

type BillResponse struct {
	ID                string          `json:"id"`
	BillID            int             `json:"billId"`
	ClientKey         string          `json:"clientKey"`
	ShipmentKey       string          `json:"shipmentKey"`
	IssueDate         time.Time       `json:"issueDate"`
	DueDate           time.Time       `json:"dueDate"`
	Amount            float64         `json:"amount"`
	TaxAmount         float64         `json:"taxAmount"`
	TotalAmount       float64         `json:"totalAmount"`
	PaymentStatus     string          `json:"paymentStatus"`
	PaymentMethod     string          `json:"paymentMethod,omitempty"`
	PaymentDate       *time.Time      `json:"paymentDate,omitempty"`
	ProviderPaymentID string          `json:"providerPaymentId,omitempty"`
	ProviderResponse  json.RawMessage `json:"providerResponse,omitempty"`
	TaxID             string          `json:"taxId,omitempty"`
	FuelCost          float64         `json:"fuelCost,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

func FromBill(b entities.Bill) BillResponse {
	return BillResponse{
		ID:                b.ID,
		BillID:            b.BillID,
		ClientKey:         b.ClientKey,
		ShipmentKey:       b.ShipmentKey,
		IssueDate:         b.IssueDate,
		DueDate:           b.DueDate,
		Amount:            b.Amount,
		TaxAmount:         b.TaxAmount,
		TotalAmount:       b.TotalAmount,
		PaymentStatus:     string(b.PaymentStatus),
		PaymentMethod:     b.PaymentMethod,
		PaymentDate:       b.PaymentDate,
		ProviderPaymentID: b.ProviderPaymentID,
		ProviderResponse:  b.ProviderResponse,
		TaxID:             b.TaxID,
		FuelCost:          b.FuelCost,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func FromBills(bills []entities.Bill) []BillResponse {
	out := make([]BillResponse, 0, len(bills))
	for _, b := range bills {
		out = append(out, FromBill(b))
	}
	return out
}
