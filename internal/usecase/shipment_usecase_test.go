package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"logistica_xpto/internal/domain/entities"
	"logistica_xpto/internal/usecase/interfaces"
	mock_interfaces "logistica_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func intPtr(v int) *int { return &v }

func validShipmentInput() entities.Shipment {
	return entities.Shipment{
		Name:             "Steel coils SP-RJ",
		ClientID:         7,
		PickupLocation:   "Sao Paulo",
		DeliveryLocation: "Rio de Janeiro",
		CargoType:        "steel",
		CargoWeight:      1200.5,
		DepartureDate:    time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
		ArrivalDate:      time.Date(2026, 9, 2, 18, 0, 0, 0, time.UTC),
	}
}

func newShipmentMocks(t *testing.T) (*gomock.Controller, *mock_interfaces.MockIShipmentRepository, *mock_interfaces.MockITruckRepository, *mock_interfaces.MockIDriverRepository, *mock_interfaces.MockIClientRepository, *mock_interfaces.MockISequenceRepository) {
	ctrl := gomock.NewController(t)
	return ctrl,
		mock_interfaces.NewMockIShipmentRepository(ctrl),
		mock_interfaces.NewMockITruckRepository(ctrl),
		mock_interfaces.NewMockIDriverRepository(ctrl),
		mock_interfaces.NewMockIClientRepository(ctrl),
		mock_interfaces.NewMockISequenceRepository(ctrl)
}

func TestShipmentUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewShipmentUseCase(nil, nil, nil, nil, nil)
		in := validShipmentInput()
		in.Name = "   "
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidShipmentInput) {
			t.Fatalf("expected ErrInvalidShipmentInput, got %v", err)
		}
	})

	t.Run("non-positive cargo weight", func(t *testing.T) {
		uc := NewShipmentUseCase(nil, nil, nil, nil, nil)
		in := validShipmentInput()
		in.CargoWeight = 0
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidShipmentInput) {
			t.Fatalf("expected ErrInvalidShipmentInput, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := NewShipmentUseCase(nil, nil, nil, nil, nil)
		in := validShipmentInput()
		in.Status = "in transit"
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidShipmentInput) {
			t.Fatalf("expected ErrInvalidShipmentInput, got %v", err)
		}
	})

	t.Run("unknown truck", func(t *testing.T) {
		ctrl, repo, truckRepo, driverRepo, clientRepo, seq := newShipmentMocks(t)
		defer ctrl.Finish()
		uc := NewShipmentUseCase(repo, truckRepo, driverRepo, clientRepo, seq)

		truckRepo.EXPECT().GetByTruckID(gomock.Any(), 3).Return(entities.Truck{}, nil)

		in := validShipmentInput()
		in.TruckID = intPtr(3)
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrShipmentTruckMissing) {
			t.Fatalf("expected ErrShipmentTruckMissing, got %v", err)
		}
	})

	t.Run("truck not available", func(t *testing.T) {
		ctrl, repo, truckRepo, driverRepo, clientRepo, seq := newShipmentMocks(t)
		defer ctrl.Finish()
		uc := NewShipmentUseCase(repo, truckRepo, driverRepo, clientRepo, seq)

		truckRepo.EXPECT().GetByTruckID(gomock.Any(), 3).Return(entities.Truck{ID: "t-1", TruckID: 3, Status: entities.AvailabilityNotAvailable}, nil)

		in := validShipmentInput()
		in.TruckID = intPtr(3)
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrTruckNotAvailable) {
			t.Fatalf("expected ErrTruckNotAvailable, got %v", err)
		}
	})

	t.Run("truck check precedes driver check", func(t *testing.T) {
		ctrl, repo, truckRepo, driverRepo, clientRepo, seq := newShipmentMocks(t)
		defer ctrl.Finish()
		uc := NewShipmentUseCase(repo, truckRepo, driverRepo, clientRepo, seq)

		truckRepo.EXPECT().GetByTruckID(gomock.Any(), 3).Return(entities.Truck{}, nil)

		in := validShipmentInput()
		in.TruckID = intPtr(3)
		in.DriverID = intPtr(9)
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrShipmentTruckMissing) {
			t.Fatalf("expected ErrShipmentTruckMissing, got %v", err)
		}
	})

	t.Run("driver not available", func(t *testing.T) {
		ctrl, repo, truckRepo, driverRepo, clientRepo, seq := newShipmentMocks(t)
		defer ctrl.Finish()
		uc := NewShipmentUseCase(repo, truckRepo, driverRepo, clientRepo, seq)

		driverRepo.EXPECT().GetByDriverID(gomock.Any(), 9).Return(entities.Driver{ID: "d-1", DriverID: 9, Status: entities.AvailabilityNotAvailable}, nil)

		in := validShipmentInput()
		in.DriverID = intPtr(9)
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrDriverNotAvailable) {
			t.Fatalf("expected ErrDriverNotAvailable, got %v", err)
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		ctrl, repo, truckRepo, driverRepo, clientRepo, seq := newShipmentMocks(t)
		defer ctrl.Finish()
		uc := NewShipmentUseCase(repo, truckRepo, driverRepo, clientRepo, seq)

		clientRepo.EXPECT().GetByClientID(gomock.Any(), 7).Return(entities.Client{}, nil)

		_, err := uc.Create(context.Background(), validShipmentInput())
		if !errors.Is(err, ErrShipmentClientMissing) {
			t.Fatalf("expected ErrShipmentClientMissing, got %v", err)
		}
	})

	t.Run("create without assignment defaults to pending", func(t *testing.T) {
		ctrl, repo, truckRepo, driverRepo, clientRepo, seq := newShipmentMocks(t)
		defer ctrl.Finish()
		uc := NewShipmentUseCase(repo, truckRepo, driverRepo, clientRepo, seq)

		clientRepo.EXPECT().GetByClientID(gomock.Any(), 7).Return(entities.Client{ID: "c-1", ClientID: 7, Name: "Acme"}, nil)
		seq.EXPECT().Next(gomock.Any(), interfaces.SequenceShipment).Return(41, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Shipment{})).DoAndReturn(
			func(_ context.Context, s entities.Shipment) (entities.Shipment, error) {
				if s.ID == "" || s.ShipmentID != 41 {
					t.Fatalf("unexpected ids: %+v", s)
				}
				if s.Status != entities.ShipmentStatusPending {
					t.Fatalf("expected pending status, got %s", s.Status)
				}
				if s.CreatedAt.IsZero() || s.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return s, nil
			},
		)

		detail, err := uc.Create(context.Background(), validShipmentInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.Truck != nil || detail.Driver != nil {
			t.Fatalf("expected no assignment, got %+v", detail)
		}
		if detail.Client == nil || detail.Client.ClientID != 7 {
			t.Fatalf("expected resolved client, got %+v", detail.Client)
		}
	})

	t.Run("create with truck and driver flips availability", func(t *testing.T) {
		ctrl, repo, truckRepo, driverRepo, clientRepo, seq := newShipmentMocks(t)
		defer ctrl.Finish()
		uc := NewShipmentUseCase(repo, truckRepo, driverRepo, clientRepo, seq)

		truckRepo.EXPECT().GetByTruckID(gomock.Any(), 3).Return(entities.Truck{ID: "t-1", TruckID: 3, Status: entities.AvailabilityAvailable}, nil)
		driverRepo.EXPECT().GetByDriverID(gomock.Any(), 9).Return(entities.Driver{ID: "d-1", DriverID: 9, Status: entities.AvailabilityAvailable}, nil)
		clientRepo.EXPECT().GetByClientID(gomock.Any(), 7).Return(entities.Client{ID: "c-1", ClientID: 7}, nil)
		seq.EXPECT().Next(gomock.Any(), interfaces.SequenceShipment).Return(42, nil)
		repo.EXPECT().CreateAssigned(gomock.Any(), gomock.AssignableToTypeOf(entities.Shipment{}), interfaces.ShipmentAssignment{TruckKey: "t-1", TruckID: 3, DriverKey: "d-1"}).DoAndReturn(
			func(_ context.Context, s entities.Shipment, _ interfaces.ShipmentAssignment) (entities.Shipment, error) {
				return s, nil
			},
		)

		in := validShipmentInput()
		in.TruckID = intPtr(3)
		in.DriverID = intPtr(9)
		detail, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.Truck == nil || detail.Truck.Status != entities.AvailabilityNotAvailable {
			t.Fatalf("expected truck flipped to not available, got %+v", detail.Truck)
		}
		if detail.Driver == nil || detail.Driver.Status != entities.AvailabilityNotAvailable {
			t.Fatalf("expected driver flipped to not available, got %+v", detail.Driver)
		}
		if detail.Driver.AssignedTruck == nil || *detail.Driver.AssignedTruck != 3 {
			t.Fatalf("expected driver assigned to truck 3, got %+v", detail.Driver.AssignedTruck)
		}
		if detail.Shipment.ShipmentID != 42 {
			t.Fatalf("expected shipment id 42, got %d", detail.Shipment.ShipmentID)
		}
	})

	t.Run("lost truck race maps to not available", func(t *testing.T) {
		ctrl, repo, truckRepo, driverRepo, clientRepo, seq := newShipmentMocks(t)
		defer ctrl.Finish()
		uc := NewShipmentUseCase(repo, truckRepo, driverRepo, clientRepo, seq)

		truckRepo.EXPECT().GetByTruckID(gomock.Any(), 3).Return(entities.Truck{ID: "t-1", TruckID: 3, Status: entities.AvailabilityAvailable}, nil)
		clientRepo.EXPECT().GetByClientID(gomock.Any(), 7).Return(entities.Client{ID: "c-1", ClientID: 7}, nil)
		seq.EXPECT().Next(gomock.Any(), interfaces.SequenceShipment).Return(43, nil)
		repo.EXPECT().CreateAssigned(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Shipment{}, interfaces.ErrTruckAssignmentConflict)

		in := validShipmentInput()
		in.TruckID = intPtr(3)
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrTruckNotAvailable) {
			t.Fatalf("expected ErrTruckNotAvailable, got %v", err)
		}
	})

	t.Run("lost driver race maps to not available", func(t *testing.T) {
		ctrl, repo, truckRepo, driverRepo, clientRepo, seq := newShipmentMocks(t)
		defer ctrl.Finish()
		uc := NewShipmentUseCase(repo, truckRepo, driverRepo, clientRepo, seq)

		driverRepo.EXPECT().GetByDriverID(gomock.Any(), 9).Return(entities.Driver{ID: "d-1", DriverID: 9, Status: entities.AvailabilityAvailable}, nil)
		clientRepo.EXPECT().GetByClientID(gomock.Any(), 7).Return(entities.Client{ID: "c-1", ClientID: 7}, nil)
		seq.EXPECT().Next(gomock.Any(), interfaces.SequenceShipment).Return(44, nil)
		repo.EXPECT().CreateAssigned(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Shipment{}, interfaces.ErrDriverAssignmentConflict)

		in := validShipmentInput()
		in.DriverID = intPtr(9)
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrDriverNotAvailable) {
			t.Fatalf("expected ErrDriverNotAvailable, got %v", err)
		}
	})

	t.Run("sequence error aborts", func(t *testing.T) {
		ctrl, repo, truckRepo, driverRepo, clientRepo, seq := newShipmentMocks(t)
		defer ctrl.Finish()
		uc := NewShipmentUseCase(repo, truckRepo, driverRepo, clientRepo, seq)

		clientRepo.EXPECT().GetByClientID(gomock.Any(), 7).Return(entities.Client{ID: "c-1", ClientID: 7}, nil)
		seq.EXPECT().Next(gomock.Any(), interfaces.SequenceShipment).Return(0, errors.New("db"))

		_, err := uc.Create(context.Background(), validShipmentInput())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestShipmentUseCase_GetByShipmentID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl, repo, truckRepo, driverRepo, clientRepo, seq := newShipmentMocks(t)
		defer ctrl.Finish()
		uc := NewShipmentUseCase(repo, truckRepo, driverRepo, clientRepo, seq)

		repo.EXPECT().GetByShipmentID(gomock.Any(), 99).Return(entities.Shipment{}, nil)

		_, err := uc.GetByShipmentID(context.Background(), 99)
		if !errors.Is(err, ErrShipmentNotFound) {
			t.Fatalf("expected ErrShipmentNotFound, got %v", err)
		}
	})

	t.Run("dangling client leaves field nil", func(t *testing.T) {
		ctrl, repo, truckRepo, driverRepo, clientRepo, seq := newShipmentMocks(t)
		defer ctrl.Finish()
		uc := NewShipmentUseCase(repo, truckRepo, driverRepo, clientRepo, seq)

		repo.EXPECT().GetByShipmentID(gomock.Any(), 41).Return(entities.Shipment{ID: "s-1", ShipmentID: 41, ClientID: 7}, nil)
		clientRepo.EXPECT().GetByClientID(gomock.Any(), 7).Return(entities.Client{}, nil)

		detail, err := uc.GetByShipmentID(context.Background(), 41)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.Client != nil {
			t.Fatalf("expected nil client, got %+v", detail.Client)
		}
	})

	t.Run("resolves references", func(t *testing.T) {
		ctrl, repo, truckRepo, driverRepo, clientRepo, seq := newShipmentMocks(t)
		defer ctrl.Finish()
		uc := NewShipmentUseCase(repo, truckRepo, driverRepo, clientRepo, seq)

		repo.EXPECT().GetByShipmentID(gomock.Any(), 42).Return(entities.Shipment{ID: "s-1", ShipmentID: 42, ClientID: 7, TruckID: intPtr(3), DriverID: intPtr(9)}, nil)
		truckRepo.EXPECT().GetByTruckID(gomock.Any(), 3).Return(entities.Truck{ID: "t-1", TruckID: 3}, nil)
		driverRepo.EXPECT().GetByDriverID(gomock.Any(), 9).Return(entities.Driver{ID: "d-1", DriverID: 9}, nil)
		clientRepo.EXPECT().GetByClientID(gomock.Any(), 7).Return(entities.Client{ID: "c-1", ClientID: 7}, nil)

		detail, err := uc.GetByShipmentID(context.Background(), 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.Truck == nil || detail.Driver == nil || detail.Client == nil {
			t.Fatalf("expected all references resolved, got %+v", detail)
		}
	})
}

func TestShipmentUseCase_Update(t *testing.T) {
	t.Run("non-positive cargo weight", func(t *testing.T) {
		uc := NewShipmentUseCase(nil, nil, nil, nil, nil)
		w := -1.0
		_, err := uc.Update(context.Background(), 41, interfaces.ShipmentUpdate{CargoWeight: &w})
		if !errors.Is(err, ErrInvalidShipmentInput) {
			t.Fatalf("expected ErrInvalidShipmentInput, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, repo, truckRepo, driverRepo, clientRepo, seq := newShipmentMocks(t)
		defer ctrl.Finish()
		uc := NewShipmentUseCase(repo, truckRepo, driverRepo, clientRepo, seq)

		repo.EXPECT().UpdateByShipmentID(gomock.Any(), 99, gomock.Any()).Return(entities.Shipment{}, nil)

		_, err := uc.Update(context.Background(), 99, interfaces.ShipmentUpdate{})
		if !errors.Is(err, ErrShipmentNotFound) {
			t.Fatalf("expected ErrShipmentNotFound, got %v", err)
		}
	})
}

func TestShipmentUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl, repo, truckRepo, driverRepo, clientRepo, seq := newShipmentMocks(t)
		defer ctrl.Finish()
		uc := NewShipmentUseCase(repo, truckRepo, driverRepo, clientRepo, seq)

		repo.EXPECT().DeleteByShipmentID(gomock.Any(), 99).Return(false, nil)

		if err := uc.Delete(context.Background(), 99); !errors.Is(err, ErrShipmentNotFound) {
			t.Fatalf("expected ErrShipmentNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl, repo, truckRepo, driverRepo, clientRepo, seq := newShipmentMocks(t)
		defer ctrl.Finish()
		uc := NewShipmentUseCase(repo, truckRepo, driverRepo, clientRepo, seq)

		repo.EXPECT().DeleteByShipmentID(gomock.Any(), 41).Return(true, nil)

		if err := uc.Delete(context.Background(), 41); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
