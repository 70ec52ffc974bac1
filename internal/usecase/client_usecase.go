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
	ErrClientNotFound    = errors.New("client not found")
	ErrInvalidClientName = errors.New("invalid client name")
)

// IClientUseCase exposes client operations.

type IClientUseCase interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	GetByClientID(ctx context.Context, clientID int) (entities.Client, error)
	Update(ctx context.Context, clientID int, upd interfaces.ClientUpdate) (entities.Client, error)
	Delete(ctx context.Context, clientID int) error
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
	seq  interfaces.ISequenceRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository, seq interfaces.ISequenceRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, seq: seq}
}

func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.Client{}, ErrInvalidClientName
	}

	// Numeric id is allocated before the record is constructed; the record
	// never exists with a placeholder id.
	clientID, err := u.seq.Next(ctx, interfaces.SequenceClient)
	if err != nil {
		return entities.Client{}, err
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.ClientID = clientID
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}

func (u *ClientUseCase) GetByClientID(ctx context.Context, clientID int) (entities.Client, error) {
	c, err := u.repo.GetByClientID(ctx, clientID)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) Update(ctx context.Context, clientID int, upd interfaces.ClientUpdate) (entities.Client, error) {
	updated, err := u.repo.UpdateByClientID(ctx, clientID, upd)
	if err != nil {
		return entities.Client{}, err
	}
	if updated.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return updated, nil
}

func (u *ClientUseCase) Delete(ctx context.Context, clientID int) error {
	found, err := u.repo.DeleteByClientID(ctx, clientID)
	if err != nil {
		return err
	}
	if !found {
		return ErrClientNotFound
	}
	return nil
}
