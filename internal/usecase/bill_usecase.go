package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"logistica_xpto/internal/domain/entities"
	"logistica_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBillNotFound           = errors.New("bill not found")
	ErrBillAlreadyPaid        = errors.New("bill already paid")
	ErrInvalidBillAmount      = errors.New("invalid bill amount")
	ErrInvalidBillStatus      = errors.New("invalid bill payment status")
	ErrInvalidBillClient      = errors.New("bill references unknown client")
	ErrInvalidBillShipment    = errors.New("bill references unknown shipment")
	ErrInvalidPaymentMethod   = errors.New("invalid payment method")
	ErrPaymentGatewayDeclined = errors.New("payment gateway declined the charge")
)

// IBillUseCase exposes bill operations. Pay settles a bill, optionally
// charging through the configured payment gateway first.

type IBillUseCase interface {
	Create(ctx context.Context, b entities.Bill) (entities.Bill, error)
	List(ctx context.Context) ([]entities.Bill, error)
	GetByBillID(ctx context.Context, billID int) (entities.Bill, error)
	Update(ctx context.Context, billID int, upd interfaces.BillUpdate) (entities.Bill, error)
	Pay(ctx context.Context, billID int, paymentMethod string, gatewayPayload json.RawMessage) (entities.Bill, error)
	Delete(ctx context.Context, billID int) error
}

type BillUseCase struct {
	repo         interfaces.IBillRepository
	clientRepo   interfaces.IClientRepository
	shipmentRepo interfaces.IShipmentRepository
	seq          interfaces.ISequenceRepository
	gateway      interfaces.IPaymentGateway
}

var _ IBillUseCase = (*BillUseCase)(nil)

func NewBillUseCase(
	repo interfaces.IBillRepository,
	clientRepo interfaces.IClientRepository,
	shipmentRepo interfaces.IShipmentRepository,
	seq interfaces.ISequenceRepository,
	gateway interfaces.IPaymentGateway,
) *BillUseCase {
	return &BillUseCase{
		repo:         repo,
		clientRepo:   clientRepo,
		shipmentRepo: shipmentRepo,
		seq:          seq,
		gateway:      gateway,
	}
}

func (u *BillUseCase) Create(ctx context.Context, b entities.Bill) (entities.Bill, error) {
	b.ClientKey = strings.TrimSpace(b.ClientKey)
	b.ShipmentKey = strings.TrimSpace(b.ShipmentKey)
	if b.Amount < 0 || b.TaxAmount < 0 || b.TotalAmount < 0 || b.FuelCost < 0 {
		return entities.Bill{}, ErrInvalidBillAmount
	}
	if !writablePaymentStatus(b.PaymentStatus) {
		return entities.Bill{}, ErrInvalidBillStatus
	}

	client, err := u.clientRepo.GetByKey(ctx, b.ClientKey)
	if err != nil {
		return entities.Bill{}, err
	}
	if client.ID == "" {
		return entities.Bill{}, ErrInvalidBillClient
	}

	shipment, err := u.shipmentRepo.GetByKey(ctx, b.ShipmentKey)
	if err != nil {
		return entities.Bill{}, err
	}
	if shipment.ID == "" {
		return entities.Bill{}, ErrInvalidBillShipment
	}

	billID, err := u.seq.Next(ctx, interfaces.SequenceBill)
	if err != nil {
		return entities.Bill{}, err
	}

	now := time.Now().UTC()
	b.ID = uuid.NewString()
	b.BillID = billID
	if b.PaymentStatus == "" {
		b.PaymentStatus = entities.PaymentStatusPending
	}
	b.CreatedAt = now
	b.UpdatedAt = now
	return u.repo.Create(ctx, b)
}

func (u *BillUseCase) List(ctx context.Context) ([]entities.Bill, error) {
	return u.repo.List(ctx)
}

func (u *BillUseCase) GetByBillID(ctx context.Context, billID int) (entities.Bill, error) {
	b, err := u.repo.GetByBillID(ctx, billID)
	if err != nil {
		return entities.Bill{}, err
	}
	if b.ID == "" {
		return entities.Bill{}, ErrBillNotFound
	}
	return b, nil
}

func (u *BillUseCase) Update(ctx context.Context, billID int, upd interfaces.BillUpdate) (entities.Bill, error) {
	for _, v := range []*float64{upd.Amount, upd.TaxAmount, upd.TotalAmount, upd.FuelCost} {
		if v != nil && *v < 0 {
			return entities.Bill{}, ErrInvalidBillAmount
		}
	}
	if upd.PaymentStatus != nil && (*upd.PaymentStatus == "" || !writablePaymentStatus(*upd.PaymentStatus)) {
		return entities.Bill{}, ErrInvalidBillStatus
	}

	updated, err := u.repo.UpdateByBillID(ctx, billID, upd)
	if err != nil {
		return entities.Bill{}, err
	}
	if updated.ID == "" {
		return entities.Bill{}, ErrBillNotFound
	}
	return updated, nil
}

// Pay settles a bill. When a payment gateway is configured the charge goes
// through it first and a declined charge leaves the bill untouched.
func (u *BillUseCase) Pay(ctx context.Context, billID int, paymentMethod string, gatewayPayload json.RawMessage) (entities.Bill, error) {
	paymentMethod = strings.TrimSpace(paymentMethod)
	if paymentMethod == "" {
		return entities.Bill{}, ErrInvalidPaymentMethod
	}

	b, err := u.repo.GetByBillID(ctx, billID)
	if err != nil {
		return entities.Bill{}, err
	}
	if b.ID == "" {
		return entities.Bill{}, ErrBillNotFound
	}
	if b.PaymentStatus == entities.PaymentStatusPaid {
		return entities.Bill{}, ErrBillAlreadyPaid
	}

	payment := interfaces.BillPayment{
		PaymentMethod: paymentMethod,
		PaymentDate:   time.Now().UTC(),
	}

	if u.gateway != nil && len(gatewayPayload) > 0 {
		providerID, providerStatus, providerResponse, err := u.gateway.CreatePayment(ctx, gatewayPayload)
		if err != nil {
			return entities.Bill{}, err
		}
		log.Printf("[bill][usecase] gateway charge bill_id=%d provider_payment_id=%s provider_status=%s", billID, providerID, providerStatus)
		if providerStatus != "approved" {
			return entities.Bill{}, ErrPaymentGatewayDeclined
		}
		payment.ProviderPaymentID = providerID
		payment.ProviderResponse = providerResponse
	}

	paid, err := u.repo.MarkPaidByBillID(ctx, billID, payment)
	if err != nil {
		return entities.Bill{}, err
	}
	if paid.ID == "" {
		return entities.Bill{}, ErrBillNotFound
	}
	return paid, nil
}

// writablePaymentStatus reports whether a status may be set through create
// or update. Paid is reserved for Pay.
func writablePaymentStatus(s entities.PaymentStatus) bool {
	switch s {
	case "", entities.PaymentStatusPending, entities.PaymentStatusOverdue:
		return true
	default:
		return false
	}
}

func (u *BillUseCase) Delete(ctx context.Context, billID int) error {
	found, err := u.repo.DeleteByBillID(ctx, billID)
	if err != nil {
		return err
	}
	if !found {
		return ErrBillNotFound
	}
	return nil
}
