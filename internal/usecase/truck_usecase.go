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
	ErrTruckNotFound   = errors.New("truck not found")
	ErrInvalidPlate    = errors.New("invalid plate number")
	ErrInvalidCapacity = errors.New("invalid truck capacity")
)

// ITruckUseCase exposes truck operations.

type ITruckUseCase interface {
	Create(ctx context.Context, t entities.Truck) (entities.Truck, error)
	List(ctx context.Context) ([]entities.Truck, error)
	GetByTruckID(ctx context.Context, truckID int) (entities.Truck, error)
	Update(ctx context.Context, truckID int, upd interfaces.TruckUpdate) (entities.Truck, error)
	Delete(ctx context.Context, truckID int) error
}

type TruckUseCase struct {
	repo interfaces.ITruckRepository
	seq  interfaces.ISequenceRepository
}

var _ ITruckUseCase = (*TruckUseCase)(nil)

func NewTruckUseCase(repo interfaces.ITruckRepository, seq interfaces.ISequenceRepository) *TruckUseCase {
	return &TruckUseCase{repo: repo, seq: seq}
}

func (u *TruckUseCase) Create(ctx context.Context, t entities.Truck) (entities.Truck, error) {
	t.PlateNumber = strings.TrimSpace(t.PlateNumber)
	if t.PlateNumber == "" {
		return entities.Truck{}, ErrInvalidPlate
	}
	if t.Capacity < 0 {
		return entities.Truck{}, ErrInvalidCapacity
	}

	truckID, err := u.seq.Next(ctx, interfaces.SequenceTruck)
	if err != nil {
		return entities.Truck{}, err
	}

	now := time.Now().UTC()
	t.ID = uuid.NewString()
	t.TruckID = truckID
	t.Status = entities.AvailabilityAvailable
	t.CreatedAt = now
	t.UpdatedAt = now
	return u.repo.Create(ctx, t)
}

func (u *TruckUseCase) List(ctx context.Context) ([]entities.Truck, error) {
	return u.repo.List(ctx)
}

func (u *TruckUseCase) GetByTruckID(ctx context.Context, truckID int) (entities.Truck, error) {
	t, err := u.repo.GetByTruckID(ctx, truckID)
	if err != nil {
		return entities.Truck{}, err
	}
	if t.ID == "" {
		return entities.Truck{}, ErrTruckNotFound
	}
	return t, nil
}

func (u *TruckUseCase) Update(ctx context.Context, truckID int, upd interfaces.TruckUpdate) (entities.Truck, error) {
	if upd.Capacity != nil && *upd.Capacity < 0 {
		return entities.Truck{}, ErrInvalidCapacity
	}

	updated, err := u.repo.UpdateByTruckID(ctx, truckID, upd)
	if err != nil {
		return entities.Truck{}, err
	}
	if updated.ID == "" {
		return entities.Truck{}, ErrTruckNotFound
	}
	return updated, nil
}

func (u *TruckUseCase) Delete(ctx context.Context, truckID int) error {
	found, err := u.repo.DeleteByTruckID(ctx, truckID)
	if err != nil {
		return err
	}
	if !found {
		return ErrTruckNotFound
	}
	return nil
}
