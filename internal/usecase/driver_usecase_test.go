package usecase

import (
	"context"
	"errors"
	"testing"

	"logistica_xpto/internal/domain/entities"
	"logistica_xpto/internal/usecase/interfaces"
	mock_interfaces "logistica_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDriverUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewDriverUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Driver{Name: "  ", LicenseNumber: "CNH-1", Salary: 3000})
		if !errors.Is(err, ErrInvalidDriverName) {
			t.Fatalf("expected ErrInvalidDriverName, got %v", err)
		}
	})

	t.Run("missing license", func(t *testing.T) {
		uc := NewDriverUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Driver{Name: "Ana", Salary: 3000})
		if !errors.Is(err, ErrInvalidLicense) {
			t.Fatalf("expected ErrInvalidLicense, got %v", err)
		}
	})

	t.Run("non-positive salary", func(t *testing.T) {
		uc := NewDriverUseCase(nil, nil)
		_, err := uc.Create(context.Background(), entities.Driver{Name: "Ana", LicenseNumber: "CNH-1"})
		if !errors.Is(err, ErrInvalidDriverSalary) {
			t.Fatalf("expected ErrInvalidDriverSalary, got %v", err)
		}
	})

	t.Run("license already registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDriverRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewDriverUseCase(repo, seq)

		repo.EXPECT().GetByLicenseNumber(gomock.Any(), "CNH-1").Return(entities.Driver{ID: "d-1"}, nil)

		_, err := uc.Create(context.Background(), entities.Driver{Name: "Ana", LicenseNumber: "CNH-1", Salary: 3000})
		if !errors.Is(err, ErrLicenseNumberTaken) {
			t.Fatalf("expected ErrLicenseNumberTaken, got %v", err)
		}
	})

	t.Run("create success starts available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDriverRepository(ctrl)
		seq := mock_interfaces.NewMockISequenceRepository(ctrl)
		uc := NewDriverUseCase(repo, seq)

		repo.EXPECT().GetByLicenseNumber(gomock.Any(), "CNH-1").Return(entities.Driver{}, nil)
		seq.EXPECT().Next(gomock.Any(), interfaces.SequenceDriver).Return(9, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Driver{})).DoAndReturn(
			func(_ context.Context, d entities.Driver) (entities.Driver, error) {
				if d.ID == "" || d.DriverID != 9 {
					t.Fatalf("unexpected ids: %+v", d)
				}
				if d.Status != entities.AvailabilityAvailable {
					t.Fatalf("expected available status, got %s", d.Status)
				}
				if d.AssignedTruck != nil {
					t.Fatalf("expected no assigned truck, got %v", *d.AssignedTruck)
				}
				return d, nil
			},
		)

		res, err := uc.Create(context.Background(), entities.Driver{Name: " Ana ", LicenseNumber: " CNH-1 ", Salary: 3000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Ana" || res.LicenseNumber != "CNH-1" {
			t.Fatalf("expected trimmed fields, got %+v", res)
		}
	})
}

func TestDriverUseCase_Update(t *testing.T) {
	t.Run("non-positive salary", func(t *testing.T) {
		uc := NewDriverUseCase(nil, nil)
		v := 0.0
		_, err := uc.Update(context.Background(), 9, interfaces.DriverUpdate{Salary: &v})
		if !errors.Is(err, ErrInvalidDriverSalary) {
			t.Fatalf("expected ErrInvalidDriverSalary, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDriverRepository(ctrl)
		uc := NewDriverUseCase(repo, nil)

		repo.EXPECT().UpdateByDriverID(gomock.Any(), 99, gomock.Any()).Return(entities.Driver{}, nil)

		_, err := uc.Update(context.Background(), 99, interfaces.DriverUpdate{})
		if !errors.Is(err, ErrDriverNotFound) {
			t.Fatalf("expected ErrDriverNotFound, got %v", err)
		}
	})
}

func TestDriverUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDriverRepository(ctrl)
		uc := NewDriverUseCase(repo, nil)

		repo.EXPECT().DeleteByDriverID(gomock.Any(), 99).Return(false, nil)

		if err := uc.Delete(context.Background(), 99); !errors.Is(err, ErrDriverNotFound) {
			t.Fatalf("expected ErrDriverNotFound, got %v", err)
		}
	})
}
