package interfaces

import (
	"context"
	"encoding/json"
	"time"

	"logistica_xpto/internal/domain/entities"
)

// BillUpdate is the explicit allow-list of mutable bill fields. Only the
// pending and overdue statuses may be written here; paid moves through the
// pay operation.
type BillUpdate struct {
	IssueDate     *time.Time
	DueDate       *time.Time
	Amount        *float64
	TaxAmount     *float64
	TotalAmount   *float64
	PaymentStatus *entities.PaymentStatus
	TaxID         *string
	FuelCost      *float64
}

// BillPayment is applied when a bill is settled. The provider fields carry
// the gateway charge and are empty for settlements without one.
type BillPayment struct {
	PaymentMethod     string
	PaymentDate       time.Time
	ProviderPaymentID string
	ProviderResponse  json.RawMessage
}

// IBillRepository abstracts DynamoDB persistence for Bill.
//
// Not-found reads return a zero-value entity (empty ID) and a nil error.
type IBillRepository interface {
	Create(ctx context.Context, b entities.Bill) (entities.Bill, error)
	GetByBillID(ctx context.Context, billID int) (entities.Bill, error)
	List(ctx context.Context) ([]entities.Bill, error)
	UpdateByBillID(ctx context.Context, billID int, upd BillUpdate) (entities.Bill, error)
	MarkPaidByBillID(ctx context.Context, billID int, p BillPayment) (entities.Bill, error)
	DeleteByBillID(ctx context.Context, billID int) (bool, error)
}
