package interfaces

import (
	"context"

	"logistica_xpto/internal/domain/entities"
)

// ClientUpdate is the explicit allow-list of mutable client fields. Nil
// pointers are left untouched; request bodies are never merged wholesale.
type ClientUpdate struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// IClientRepository abstracts DynamoDB persistence for Client.
//
// Not-found reads return a zero-value entity (empty ID) and a nil error.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByKey(ctx context.Context, id string) (entities.Client, error)
	GetByClientID(ctx context.Context, clientID int) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	UpdateByClientID(ctx context.Context, clientID int, upd ClientUpdate) (entities.Client, error)
	DeleteByClientID(ctx context.Context, clientID int) (bool, error)
}
