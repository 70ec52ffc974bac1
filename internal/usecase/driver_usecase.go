package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"logistica_xpto/internal/domain/entities"
	"logistica_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrDriverNotFound      = errors.New("driver not found")
	ErrInvalidDriverName   = errors.New("invalid driver name")
	ErrInvalidLicense      = errors.New("invalid license number")
	ErrLicenseNumberTaken  = errors.New("license number already registered")
	ErrInvalidDriverSalary = errors.New("invalid driver salary")
)

// IDriverUseCase exposes driver operations. Availability and assigned-truck
// are owned by the shipment workflow; creation always starts Available.

type IDriverUseCase interface {
	Create(ctx context.Context, d entities.Driver) (entities.Driver, error)
	List(ctx context.Context) ([]entities.Driver, error)
	GetByDriverID(ctx context.Context, driverID int) (entities.Driver, error)
	Update(ctx context.Context, driverID int, upd interfaces.DriverUpdate) (entities.Driver, error)
	Delete(ctx context.Context, driverID int) error
}

type DriverUseCase struct {
	repo interfaces.IDriverRepository
	seq  interfaces.ISequenceRepository
}

var _ IDriverUseCase = (*DriverUseCase)(nil)

func NewDriverUseCase(repo interfaces.IDriverRepository, seq interfaces.ISequenceRepository) *DriverUseCase {
	return &DriverUseCase{repo: repo, seq: seq}
}

func (u *DriverUseCase) Create(ctx context.Context, d entities.Driver) (entities.Driver, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.LicenseNumber = strings.TrimSpace(d.LicenseNumber)
	if d.Name == "" {
		return entities.Driver{}, ErrInvalidDriverName
	}
	if d.LicenseNumber == "" {
		return entities.Driver{}, ErrInvalidLicense
	}
	if d.Salary <= 0 {
		return entities.Driver{}, ErrInvalidDriverSalary
	}

	if existing, err := u.repo.GetByLicenseNumber(ctx, d.LicenseNumber); err != nil {
		return entities.Driver{}, err
	} else if existing.ID != "" {
		return entities.Driver{}, ErrLicenseNumberTaken
	}

	driverID, err := u.seq.Next(ctx, interfaces.SequenceDriver)
	if err != nil {
		return entities.Driver{}, err
	}

	now := time.Now().UTC()
	d.ID = uuid.NewString()
	d.DriverID = driverID
	d.Status = entities.AvailabilityAvailable
	d.AssignedTruck = nil
	d.CreatedAt = now
	d.UpdatedAt = now
	return u.repo.Create(ctx, d)
}

func (u *DriverUseCase) List(ctx context.Context) ([]entities.Driver, error) {
	return u.repo.List(ctx)
}

func (u *DriverUseCase) GetByDriverID(ctx context.Context, driverID int) (entities.Driver, error) {
	d, err := u.repo.GetByDriverID(ctx, driverID)
	if err != nil {
		return entities.Driver{}, err
	}
	if d.ID == "" {
		return entities.Driver{}, ErrDriverNotFound
	}
	return d, nil
}

func (u *DriverUseCase) Update(ctx context.Context, driverID int, upd interfaces.DriverUpdate) (entities.Driver, error) {
	if upd.Salary != nil && *upd.Salary <= 0 {
		return entities.Driver{}, ErrInvalidDriverSalary
	}

	updated, err := u.repo.UpdateByDriverID(ctx, driverID, upd)
	if err != nil {
		return entities.Driver{}, err
	}
	if updated.ID == "" {
		return entities.Driver{}, ErrDriverNotFound
	}
	return updated, nil
}

func (u *DriverUseCase) Delete(ctx context.Context, driverID int) error {
	found, err := u.repo.DeleteByDriverID(ctx, driverID)
	if err != nil {
		return err
	}
	if !found {
		return ErrDriverNotFound
	}
	return nil
}
