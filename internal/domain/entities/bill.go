package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the billing state of a bill.

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// Bill is the invoice issued for a shipment.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (bill_id-index): bill_id
//
// ClientKey and ShipmentKey are the opaque storage ids of the referenced
// client and shipment, unlike the numeric references used elsewhere.

type Bill struct {
	ID            string        `json:"id"`
	BillID        int           `json:"billId"`
	ClientKey     string        `json:"clientKey"`
	ShipmentKey   string        `json:"shipmentKey"`
	IssueDate     time.Time     `json:"issueDate"`
	DueDate       time.Time     `json:"dueDate"`
	Amount        float64       `json:"amount"`
	TaxAmount     float64       `json:"taxAmount"`
	TotalAmount   float64       `json:"totalAmount"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	PaymentDate   *time.Time    `json:"paymentDate,omitempty"`

	// ProviderPaymentID and ProviderResponse record the gateway charge a
	// settlement went through, when one did.
	ProviderPaymentID string          `json:"providerPaymentId,omitempty"`
	ProviderResponse  json.RawMessage `json:"providerResponse,omitempty"`

	TaxID         string        `json:"taxId,omitempty"`
	FuelCost      float64       `json:"fuelCost,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}
