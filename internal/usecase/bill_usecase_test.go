package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"logistica_xpto/internal/domain/entities"
	"logistica_xpto/internal/usecase/interfaces"
	mock_interfaces "logistica_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validBillInput() entities.Bill {
	return entities.Bill{
		ClientKey:   "c-1",
		ShipmentKey: "s-1",
		IssueDate:   time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		DueDate:     time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC),
		Amount:      1500,
		TaxAmount:   150,
		TotalAmount: 1650,
	}
}

func TestBillUseCase_Create(t *testing.T) {
	t.Run("negative amount", func(t *testing.T) {
		uc := NewBillUseCase(nil, nil, nil, nil, nil)
		in := validBillInput()
		in.Amount = -1
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidBillAmount) {
			t.Fatalf("expected ErrInvalidBillAmount, got %v", err)
		}
	})

	t.Run("paid status rejected on create", func(t *testing.T) {
		uc := NewBillUseCase(nil, nil, nil, nil, nil)
		in := validBillInput()
		in.PaymentStatus = entities.PaymentStatusPaid
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidBillStatus) {
			t.Fatalf("expected ErrInvalidBillStatus, got %v", err)
		}
	})

	t.Run("unknown client key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		shipmentRepo := mock_interfaces.NewMockIShipmentRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewBillUseCase(repo, clientRepo, shipmentRepo, seq, nil)

		clientRepo.EXPECT().GetByKey(gomock.Any(), "c-1").Return(entities.Client{}, nil)

		_, err := uc.Create(context.Background(), validBillInput())
		if !errors.Is(err, ErrInvalidBillClient) {
			t.Fatalf("expected ErrInvalidBillClient, got %v", err)
		}
	})

	t.Run("unknown shipment key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		shipmentRepo := mock_interfaces.NewMockIShipmentRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewBillUseCase(repo, clientRepo, shipmentRepo, seq, nil)

		clientRepo.EXPECT().GetByKey(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1"}, nil)
		shipmentRepo.EXPECT().GetByKey(gomock.Any(), "s-1").Return(entities.Shipment{}, nil)

		_, err := uc.Create(context.Background(), validBillInput())
		if !errors.Is(err, ErrInvalidBillShipment) {
			t.Fatalf("expected ErrInvalidBillShipment, got %v", err)
		}
	})

	t.Run("create success defaults to pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		shipmentRepo := mock_interfaces.NewMockIShipmentRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewBillUseCase(repo, clientRepo, shipmentRepo, seq, nil)

		clientRepo.EXPECT().GetByKey(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1"}, nil)
		shipmentRepo.EXPECT().GetByKey(gomock.Any(), "s-1").Return(entities.Shipment{ID: "s-1"}, nil)
		seq.EXPECT().Next(gomock.Any(), interfaces.SequenceBill).Return(11, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Bill{})).DoAndReturn(
			func(_ context.Context, b entities.Bill) (entities.Bill, error) {
				if b.ID == "" || b.BillID != 11 {
					t.Fatalf("unexpected ids: %+v", b)
				}
				if b.PaymentStatus != entities.PaymentStatusPending {
					t.Fatalf("expected pending status, got %s", b.PaymentStatus)
				}
				if b.CreatedAt.IsZero() || b.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return b, nil
			},
		)

		res, err := uc.Create(context.Background(), validBillInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.BillID != 11 {
			t.Fatalf("expected bill id 11, got %d", res.BillID)
		}
	})

	t.Run("create keeps overdue status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		shipmentRepo := mock_interfaces.NewMockIShipmentRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewBillUseCase(repo, clientRepo, shipmentRepo, seq, nil)

		clientRepo.EXPECT().GetByKey(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1"}, nil)
		shipmentRepo.EXPECT().GetByKey(gomock.Any(), "s-1").Return(entities.Shipment{ID: "s-1"}, nil)
		seq.EXPECT().Next(gomock.Any(), interfaces.SequenceBill).Return(12, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b entities.Bill) (entities.Bill, error) {
				return b, nil
			},
		)

		in := validBillInput()
		in.PaymentStatus = entities.PaymentStatusOverdue
		res, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PaymentStatus != entities.PaymentStatusOverdue {
			t.Fatalf("expected overdue status, got %s", res.PaymentStatus)
		}
	})
}

func TestBillUseCase_Pay(t *testing.T) {
	t.Run("missing payment method", func(t *testing.T) {
		uc := NewBillUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Pay(context.Background(), 11, "   ", nil)
		if !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewBillUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByBillID(gomock.Any(), 99).Return(entities.Bill{}, nil)

		_, err := uc.Pay(context.Background(), 99, "pix", nil)
		if !errors.Is(err, ErrBillNotFound) {
			t.Fatalf("expected ErrBillNotFound, got %v", err)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewBillUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByBillID(gomock.Any(), 11).Return(entities.Bill{ID: "b-1", BillID: 11, PaymentStatus: entities.PaymentStatusPaid}, nil)

		_, err := uc.Pay(context.Background(), 11, "pix", nil)
		if !errors.Is(err, ErrBillAlreadyPaid) {
			t.Fatalf("expected ErrBillAlreadyPaid, got %v", err)
		}
	})

	t.Run("gateway declined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillUseCase(repo, nil, nil, nil, gateway)

		payload := json.RawMessage(`{"token":"abc"}`)
		repo.EXPECT().GetByBillID(gomock.Any(), 11).Return(entities.Bill{ID: "b-1", BillID: 11, PaymentStatus: entities.PaymentStatusPending}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), payload).Return("mp-1", "rejected", nil, nil)

		_, err := uc.Pay(context.Background(), 11, "credit_card", payload)
		if !errors.Is(err, ErrPaymentGatewayDeclined) {
			t.Fatalf("expected ErrPaymentGatewayDeclined, got %v", err)
		}
	})

	t.Run("gateway approved marks paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillUseCase(repo, nil, nil, nil, gateway)

		payload := json.RawMessage(`{"token":"abc"}`)
		providerResp := json.RawMessage(`{"id":"mp-1","status":"approved"}`)
		repo.EXPECT().GetByBillID(gomock.Any(), 11).Return(entities.Bill{ID: "b-1", BillID: 11, PaymentStatus: entities.PaymentStatusPending}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), payload).Return("mp-1", "approved", providerResp, nil)
		repo.EXPECT().MarkPaidByBillID(gomock.Any(), 11, gomock.AssignableToTypeOf(interfaces.BillPayment{})).DoAndReturn(
			func(_ context.Context, _ int, p interfaces.BillPayment) (entities.Bill, error) {
				if p.PaymentMethod != "credit_card" || p.PaymentDate.IsZero() {
					t.Fatalf("unexpected payment: %+v", p)
				}
				if p.ProviderPaymentID != "mp-1" || string(p.ProviderResponse) != string(providerResp) {
					t.Fatalf("expected provider charge recorded, got %+v", p)
				}
				return entities.Bill{ID: "b-1", BillID: 11, PaymentStatus: entities.PaymentStatusPaid, PaymentMethod: p.PaymentMethod, ProviderPaymentID: p.ProviderPaymentID, ProviderResponse: p.ProviderResponse}, nil
			},
		)

		res, err := uc.Pay(context.Background(), 11, "credit_card", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PaymentStatus != entities.PaymentStatusPaid {
			t.Fatalf("expected paid status, got %s", res.PaymentStatus)
		}
		if res.ProviderPaymentID != "mp-1" {
			t.Fatalf("expected provider payment id kept, got %q", res.ProviderPaymentID)
		}
	})

	t.Run("no gateway payload skips provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillUseCase(repo, nil, nil, nil, gateway)

		repo.EXPECT().GetByBillID(gomock.Any(), 11).Return(entities.Bill{ID: "b-1", BillID: 11, PaymentStatus: entities.PaymentStatusPending}, nil)
		repo.EXPECT().MarkPaidByBillID(gomock.Any(), 11, gomock.Any()).Return(entities.Bill{ID: "b-1", BillID: 11, PaymentStatus: entities.PaymentStatusPaid}, nil)

		if _, err := uc.Pay(context.Background(), 11, "cash", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBillUseCase_Update(t *testing.T) {
	t.Run("negative amount", func(t *testing.T) {
		uc := NewBillUseCase(nil, nil, nil, nil, nil)
		v := -10.0
		_, err := uc.Update(context.Background(), 11, interfaces.BillUpdate{Amount: &v})
		if !errors.Is(err, ErrInvalidBillAmount) {
			t.Fatalf("expected ErrInvalidBillAmount, got %v", err)
		}
	})

	t.Run("paid status rejected", func(t *testing.T) {
		uc := NewBillUseCase(nil, nil, nil, nil, nil)
		s := entities.PaymentStatusPaid
		_, err := uc.Update(context.Background(), 11, interfaces.BillUpdate{PaymentStatus: &s})
		if !errors.Is(err, ErrInvalidBillStatus) {
			t.Fatalf("expected ErrInvalidBillStatus, got %v", err)
		}
	})

	t.Run("overdue status accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewBillUseCase(repo, nil, nil, nil, nil)

		s := entities.PaymentStatusOverdue
		repo.EXPECT().UpdateByBillID(gomock.Any(), 11, interfaces.BillUpdate{PaymentStatus: &s}).Return(entities.Bill{ID: "b-1", BillID: 11, PaymentStatus: s}, nil)

		res, err := uc.Update(context.Background(), 11, interfaces.BillUpdate{PaymentStatus: &s})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PaymentStatus != entities.PaymentStatusOverdue {
			t.Fatalf("expected overdue status, got %s", res.PaymentStatus)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillRepository(ctrl)
		uc := NewBillUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().UpdateByBillID(gomock.Any(), 99, gomock.Any()).Return(entities.Bill{}, nil)

		_, err := uc.Update(context.Background(), 99, interfaces.BillUpdate{})
		if !errors.Is(err, ErrBillNotFound) {
			t.Fatalf("expected ErrBillNotFound, got %v", err)
		}
	})
}
